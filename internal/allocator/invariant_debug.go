//go:build debug

package allocator

import "fmt"

// In debug builds, every mutating operation re-validates the ordering
// and non-adjacency invariants (spec.md invariants 4 and 5) before
// releasing the lock. This is expensive enough that it is never
// compiled into a normal build.

func (a *Allocator) debugCheckInvariants(operation string) {
	checkOrdered(a, operation, "free", a.freeHead)
	checkOrdered(a, operation, "alloc", a.allocHead)
	checkNoAdjacentFree(a, operation)
}

func checkOrdered(a *Allocator, operation, listName string, head *header) {
	var prev *header
	for cur := head; cur != nil; cur = headerNext(cur) {
		if prev != nil && addrOf(prev) >= addrOf(cur) {
			panic(fmt.Sprintf("debug: %s list not strictly address-ordered after %s", listName, operation))
		}

		prev = cur
	}
}

func checkNoAdjacentFree(a *Allocator, operation string) {
	for cur := a.freeHead; cur != nil; cur = headerNext(cur) {
		next := headerNext(cur)
		if next != nil && adjacentEnd(cur) == addrOf(next) {
			panic(fmt.Sprintf("debug: adjacent free blocks survived coalesce after %s", operation))
		}
	}
}
