//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap acquires the backing region as an anonymous, private mapping
// rather than a Go-heap slice, while still handing back the plain
// []byte the allocator requires.
type Mmap struct{}

func (Mmap) Acquire(size uintptr) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("region: size must be > 0")
	}

	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("region: mmap %d bytes: %w", size, err)
	}

	return buf, nil
}

func (Mmap) Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	return unix.Munmap(buf)
}
