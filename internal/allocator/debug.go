package allocator

import (
	"fmt"
	"io"
)

// DumpFreeList writes one line per free block, in address order, to w.
// It is a debugging aid; the allocator does not call it internally.
func (a *Allocator) DumpFreeList(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for cur := a.freeHead; cur != nil; cur = headerNext(cur) {
		fmt.Fprintf(w, "free  addr=%p size=%d\n", cur, cur.size)
	}
}

// DumpAllocList writes one line per allocated block, in address order,
// to w.
func (a *Allocator) DumpAllocList(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for cur := a.allocHead; cur != nil; cur = headerNext(cur) {
		fmt.Fprintf(w, "alloc addr=%p size=%d\n", cur, cur.size)
	}
}
