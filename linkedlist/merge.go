package linkedlist

import "golang.org/x/exp/constraints"

// A Chain owns a run of nodes that belongs to no List, such as the nodes
// released by Detach or the result of MergeTwoSorted. Passing a Chain to
// MergeTwoSorted or FromChain spends it. A nil *Chain is an empty chain.
type Chain[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
	spent  bool
}

func (c *Chain[T]) check() {
	if c != nil && c.spent {
		violation(ErrConsumed)
	}
}

// First node of the chain, or nil.
func (c *Chain[T]) Head() *Node[T] {
	c.check()
	if c == nil {
		return nil
	}
	return c.head
}

func (c *Chain[T]) Len() int {
	c.check()
	if c == nil {
		return 0
	}
	return c.length
}

func (c *Chain[T]) take() (head, tail *Node[T], n int) {
	c.check()
	if c == nil {
		return nil, nil, 0
	}

	head, tail, n = c.head, c.tail, c.length
	c.head, c.tail, c.length = nil, nil, 0
	c.spent = true
	return
}

// Find the node that terminates the first half of the chain starting at head:
// for a chain of n nodes, the node at index ceil(n/2)-1. Panics with
// ErrEmptyChain if head is nil.
func FindMiddle[T any](head *Node[T]) *Node[T] {
	if head == nil {
		violation(ErrEmptyChain)
	}

	slow, fast := head, head
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// Merge two sorted chains given with their tails. A node of b is taken only
// when it orders strictly before the current node of a, so ties favour a.
// Every input node is relinked into the result; none is allocated or dropped.
func merge[T any](a, aTail, b, bTail *Node[T], less func(x, y T) bool) (head, tail *Node[T]) {
	var sentinel Node[T]
	tail = &sentinel
	for a != nil && b != nil {
		if less(b.Value, a.Value) {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}

	switch {
	case a != nil:
		tail.next = a
		tail = aTail
	case b != nil:
		tail.next = b
		tail = bTail
	}

	head = sentinel.next
	if head == nil {
		tail = nil
	}
	return
}

func less[T constraints.Ordered](x, y T) bool {
	return x < y
}

// Merge two disjoint sorted halves of the same list.
func sortedMerge[T constraints.Ordered](a, aTail, b, bTail *Node[T]) (head, tail *Node[T]) {
	return merge(a, aTail, b, bTail, less[T])
}

// Top-down merge sort. Splits are balanced, so recursion depth is bounded by
// ceil(log2 n); the merge itself is iterative.
func mergeSort[T constraints.Ordered](head *Node[T]) (*Node[T], *Node[T]) {
	if head == nil || head.next == nil {
		return head, head
	}

	middle := FindMiddle(head)
	second := middle.next
	middle.next = nil

	a, aTail := mergeSort(head)
	b, bTail := mergeSort(second)
	return sortedMerge(a, aTail, b, bTail)
}

// Merge two chains whose values are each in non-decreasing order into one
// sorted chain holding every node of both. Ties place nodes of a before nodes
// of b. Both inputs are spent; passing the same chain twice panics with
// ErrAliased. Both inputs are checked before either is spent.
func MergeTwoSorted[T constraints.Ordered](a, b *Chain[T]) *Chain[T] {
	if a != nil && a == b {
		violation(ErrAliased)
	}
	a.check()
	b.check()

	ah, at, an := a.take()
	bh, bt, bn := b.take()

	c := &Chain[T]{length: an + bn}
	c.head, c.tail = sortedMerge(ah, at, bh, bt)

	log.Debugf("merged chains of %d and %d nodes", an, bn)
	cMerges.Inc()
	return c
}

// Merge two sorted lists into a new list. Every node of a and b moves into
// the result and both a and b are consumed; Copy them first to keep them. A
// nil list is merged as an empty one.
func Merge[T constraints.Ordered](a, b *List[T]) *List[T] {
	if a != nil && a == b {
		violation(ErrAliased)
	}
	if a != nil {
		a.check()
	}
	if b != nil {
		b.check()
	}

	return FromChain(MergeTwoSorted(a.Detach(), b.Detach()))
}
