// Package addrlist implements a singly linked list of opaque addresses
// with sentinel head and tail nodes. It is independent of the block
// allocator but exercises the same intrusive-pointer and node-surgery
// patterns the allocator relies on internally, so it lives alongside it
// as a teaching companion.
//
// A valid List always has a head and a tail sentinel, both carrying a nil
// Address; user nodes live strictly between them. Size and traversal
// helpers exclude the sentinels.
package addrlist

import "unsafe"

// Node is one element of the list, or one of its two sentinels.
type Node struct {
	Address unsafe.Pointer
	next    *Node
}

// List is a singly linked chain of Nodes bounded by head/tail sentinels.
type List struct {
	head *Node
	tail *Node
}

func isSentinel(n *Node) bool { return n.Address == nil }

// New creates an empty list: two sentinels linked head -> tail.
func New() *List {
	head := MakeNode(nil)
	tail := MakeNode(nil)
	head.next = tail

	return &List{head: head, tail: tail}
}

// MakeNode allocates a free-standing node carrying addr. It is not yet
// part of any list until passed to Insert.
func MakeNode(addr unsafe.Pointer) *Node {
	return &Node{Address: addr}
}

// Insert splices node immediately after the head sentinel. Nil nodes and
// nodes with a nil Address are silently ignored, matching the contract
// that sentinels are the only nodes allowed to carry a nil address.
func (l *List) Insert(node *Node) {
	if node == nil || node.Address == nil {
		return
	}

	node.next = l.head.next
	l.head.next = node
}

// Size returns the count of non-sentinel nodes.
func (l *List) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}

	return count - 2
}

// Search returns the first node whose Address equals addr, or nil.
// Sentinels never match since they carry a nil Address and callers are
// not expected to search for nil.
func (l *List) Search(addr unsafe.Pointer) *Node {
	for n := l.head; n != nil; n = n.next {
		if n.Address == addr {
			return n
		}
	}

	return nil
}

// Predecessor returns the node whose successor is node, or nil if node is
// the head sentinel (which has no predecessor) or is not in the list.
func (l *List) Predecessor(node *Node) *Node {
	if l.head == node {
		return nil
	}

	for n := l.head; n != nil; n = n.next {
		if n.next == node {
			return n
		}
	}

	return nil
}

func (l *List) contains(node *Node) bool {
	for n := l.head; n != nil; n = n.next {
		if n == node {
			return true
		}
	}

	return false
}

// Remove unlinks node from the list without releasing it. Returns node,
// or nil if node was not found in the list.
func (l *List) Remove(node *Node) *Node {
	if !l.contains(node) {
		return nil
	}

	pred := l.Predecessor(node)
	pred.next = node.next

	return node
}

// Delete removes node from the list and discards it. A no-op if node is
// not in the list.
func (l *List) Delete(node *Node) {
	l.Remove(node)
}

// swap exchanges the positions of left and right in the list by relinking
// predecessors and successors, never by copying Address values - sort
// relies on this to keep node identity stable across a resort.
func (l *List) swap(left, right *Node) {
	if left == right {
		return
	}

	leftPred := l.Predecessor(left)
	rightPred := l.Predecessor(right)
	rightSucc := right.next

	leftPred.next = right

	if left.next == right {
		right.next = left
	} else {
		right.next = left.next
		rightPred.next = left
	}

	left.next = rightSucc
}

// Sort orders the list ascending by Address using in-place selection
// sort: for each position, left to right, find the minimum-address
// non-sentinel node at or after it and move it into that position by
// swapping it with its predecessor (predecessor surgery, never copying
// Address values) until it arrives. Ties are broken by encounter order,
// and the selected node only ever passes nodes with a strictly greater
// address, so equal addresses keep their relative order (stable).
func (l *List) Sort() {
	left := l.head.next

	for left != nil && !isSentinel(left) {
		min := left
		next := left.next

		for next != nil {
			if !isSentinel(next) && uintptr(next.Address) < uintptr(min.Address) {
				min = next
			}

			next = next.next
		}

		for min != left {
			prev := l.Predecessor(min)
			l.swap(prev, min)

			if prev == left {
				left = min
			}
		}

		left = left.next
	}
}

// ToArray returns the addresses in traversal order, excluding sentinels.
// The returned slice has length Size().
func (l *List) ToArray() []unsafe.Pointer {
	out := make([]unsafe.Pointer, 0, l.Size())

	for n := l.head.next; n != nil && !isSentinel(n); n = n.next {
		out = append(out, n.Address)
	}

	return out
}

// Destroy drops the list's references to every node, including the
// sentinels. Go's garbage collector reclaims them; there is no explicit
// free step to mirror the source's manual deallocation.
func (l *List) Destroy() {
	l.head = nil
	l.tail = nil
}
