// Package allocator implements a fixed-size, contiguous memory region
// manager: a single backing buffer is carved into variable-size blocks
// under a configurable placement policy, with explicit splitting,
// coalescing, and compaction. It is the Go analogue of a user-space
// heap allocator sitting directly on top of a raw byte region, rather
// than delegating to the Go runtime's own allocator for each request.
package allocator

import (
	"math/bits"
	"sync"
	"unsafe"

	mmerrors "github.com/orizon-lang/mmanager/internal/errors"
	"github.com/orizon-lang/mmanager/internal/region"
)

// minSplitRemainder is the largest leftover, in bytes, that is NOT
// carved into its own free block when a request is satisfied by a
// larger free block; only a strictly larger leftover is split off. A
// split that would leave a remainder too small to
// hold a header plus at least one byte of payload is not performed;
// the whole block is handed to the caller instead, per spec.md's split
// threshold (remainder > header size).
const minSplitRemainder = headerSize

// Allocator manages a single contiguous byte region as a heap of
// variable-size blocks. The zero value is not usable; construct one
// with New. All exported methods are safe for concurrent use.
type Allocator struct {
	mu sync.Mutex

	policy   Policy
	provider region.Provider
	buf      []byte
	base     unsafe.Pointer
	size     uintptr

	freeHead  *header
	allocHead *header

	debugW   ioWriter
	torndown bool
}

// ioWriter avoids importing "io" solely for the Writer interface in a
// file that otherwise has no use for the package.
type ioWriter interface {
	Write(p []byte) (n int, err error)
}

// Config collects New's optional parameters. Use the With* functions
// rather than constructing Config directly.
type Config struct {
	provider region.Provider
	debugW   ioWriter
}

// Option mutates a Config during New.
type Option func(*Config)

// WithProvider overrides the backing-region provider. The default is
// region.Slice{}, a plain Go heap allocation.
func WithProvider(p region.Provider) Option {
	return func(c *Config) { c.provider = p }
}

// WithDebugWriter directs diagnostic output (fatal contract violations,
// initialization and teardown messages) to w. The default is nil: no
// output. DumpFreeList/DumpAllocList do not use it; they write to the
// writer passed to them.
func WithDebugWriter(w ioWriter) Option {
	return func(c *Config) { c.debugW = w }
}

// New acquires a region of size bytes from the configured provider and
// initializes it as a single free block spanning the entire region.
// size must be large enough to hold at least one header; New returns
// an error if the provider fails or size is unusable, rather than
// panicking, since acquisition failure is an environmental condition
// the caller can reasonably handle (retry smaller, fall back, exit
// cleanly) rather than a contract bug.
func New(size uintptr, policy Policy, opts ...Option) (*Allocator, error) {
	cfg := Config{provider: region.Slice{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	if size <= headerSize {
		return nil, mmerrors.InvalidSize(size, "allocator.New: must exceed header size")
	}

	buf, err := cfg.provider.Acquire(size)
	if err != nil {
		return nil, mmerrors.RegionAcquisition(size, err)
	}

	a := &Allocator{
		policy:   policy,
		provider: cfg.provider,
		buf:      buf,
		base:     unsafe.Pointer(&buf[0]),
		size:     size,
		debugW:   cfg.debugW,
	}

	root := headerAt(a.base)
	root.size = size - headerSize
	root.next = nil
	a.freeHead = root

	a.logf("allocator: initialized region of %d bytes, policy=%s", size, policy)

	return a, nil
}

// Close releases the backing region. The allocator must not be used
// afterward; any pointers it previously returned become invalid.
func (a *Allocator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.torndown {
		return nil
	}

	a.torndown = true
	a.freeHead = nil
	a.allocHead = nil

	a.logf("allocator: tearing down region of %d bytes", a.size)

	return a.provider.Release(a.buf)
}

func (a *Allocator) checkLive(operation string) {
	if a.torndown {
		a.fatalf(operation, "allocator has been closed")
	}
}

// Allocate reserves n contiguous payload bytes and returns a pointer to
// them, or nil if no free block can satisfy the request under the
// allocator's placement policy - an out-of-memory condition is ordinary
// and recoverable, not a contract violation. Allocate panics if n is
// zero.
func (a *Allocator) Allocate(n uintptr) unsafe.Pointer {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.checkLive("allocate")

	return a.allocateLocked(n)
}

// allocateLocked performs the search/split/insert sequence of Allocate.
// The caller must hold a.mu; this lets Callocate zero the payload under
// the same critical section that created the block, rather than
// releasing the lock between allocation and zeroing - a gap in which a
// concurrent Compact could relocate the block out from under it.
func (a *Allocator) allocateLocked(n uintptr) unsafe.Pointer {
	if n == 0 {
		a.fatalf("allocate", "requested size must be > 0")
	}

	block := a.searchFree(n)
	if block == nil {
		return nil
	}

	removeOrdered(&a.freeHead, block)

	remainder := block.size - n
	if remainder > minSplitRemainder {
		block.size = n

		rest := headerAt(unsafe.Pointer(uintptr(payloadStart(block)) + n))
		rest.size = remainder - headerSize
		rest.next = nil
		insertOrdered(&a.freeHead, rest)
	}

	insertOrdered(&a.allocHead, block)

	a.debugCheckInvariants("allocate")

	return payloadStart(block)
}

// Callocate reserves space for count elements of elemSize bytes each,
// zeroing the payload before returning it. It returns nil without
// touching memory if the underlying allocation fails, and panics if
// count*elemSize overflows - the source leaves this multiplication
// unguarded and then unconditionally memsets, including a NULL
// dereference on failure; both are fixed here (see DESIGN.md).
// Allocation and zeroing happen under one lock acquisition, matching
// every other public operation's single-critical-section contract.
func (a *Allocator) Callocate(count, elemSize uintptr) unsafe.Pointer {
	hi, lo := bits.Mul64(uint64(count), uint64(elemSize))
	if hi != 0 || lo > uint64(^uintptr(0)) {
		a.fatalf("callocate", "count*elemSize overflows (count=%d, elemSize=%d)", count, elemSize)
	}

	n := uintptr(lo)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.checkLive("callocate")

	ptr := a.allocateLocked(n)
	if ptr == nil {
		return nil
	}

	zeroPayload(headerFromPayload(ptr))

	return ptr
}

// Deallocate returns the block at ptr to the free list, coalescing it
// with any physically adjacent free blocks. ptr must have been
// returned by a prior Allocate/Callocate call on this allocator and
// must not have been deallocated already; violating either panics.
func (a *Allocator) Deallocate(ptr unsafe.Pointer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.checkLive("deallocate")

	if ptr == nil {
		a.fatalf("deallocate", "nil pointer")
	}

	block := headerFromPayload(ptr)
	if !removeOrdered(&a.allocHead, block) {
		a.fatalf("deallocate", "pointer %p is not a live allocation (double free or foreign pointer)", ptr)
	}

	insertOrdered(&a.freeHead, block)
	a.coalesce()

	a.debugCheckInvariants("deallocate")
}

// AvailableMemory returns the sum of every free block's payload size
// (header overhead excluded), i.e. the largest amount of additional
// data the region could hold across all its free blocks combined - not
// necessarily allocatable in one request, since no single free block
// may be that large.
func (a *Allocator) AvailableMemory() uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total uintptr
	for cur := a.freeHead; cur != nil; cur = headerNext(cur) {
		total += cur.size
	}

	return total
}
