//go:build !unix

package region

import "fmt"

// Mmap is unavailable on non-unix build targets; Acquire always fails so
// callers see a clear error instead of a silent fallback to Slice.
type Mmap struct{}

func (Mmap) Acquire(size uintptr) ([]byte, error) {
	return nil, fmt.Errorf("region: Mmap provider is not supported on this platform")
}

func (Mmap) Release(buf []byte) error { return nil }
