package allocator

import "unsafe"

// insertOrdered splices node into the address-ordered chain rooted at
// *head, preserving strict ascending order (spec.md invariant 4). Four
// cases apply: an empty list, a new lowest address (prepend), a splice
// before the first successor with a greater address, or - when node's
// address exceeds every existing block's - append at the tail.
//
// The source allocator's free-list insertion omits this last branch,
// which only manifests when the freed block has the highest address of
// any free block; it is included here deliberately (see DESIGN.md and
// spec.md S9) and used for both the free and allocated lists.
func insertOrdered(head **header, node *header) {
	if *head == nil {
		*head = node
		node.next = nil

		return
	}

	if addrOf(node) < addrOf(*head) {
		node.next = unsafe.Pointer(*head)
		*head = node

		return
	}

	cur := *head
	for {
		next := headerNext(cur)
		if next == nil {
			cur.next = unsafe.Pointer(node)
			node.next = nil

			return
		}

		if addrOf(next) > addrOf(node) {
			node.next = unsafe.Pointer(next)
			cur.next = unsafe.Pointer(node)

			return
		}

		cur = next
	}
}

// removeOrdered unlinks node from the chain rooted at *head and reports
// whether node was actually found there. Allocate and Compact always
// remove a block they just found by traversal, so they can ignore the
// result; Deallocate uses it to detect a double-free (ptr no longer in
// allocHead) rather than silently no-oping.
func removeOrdered(head **header, node *header) bool {
	if *head == node {
		*head = headerNext(node)

		return true
	}

	cur := *head
	for cur != nil && headerNext(cur) != node {
		cur = headerNext(cur)
	}

	if cur == nil {
		return false
	}

	cur.next = node.next

	return true
}
