// Package linkedlist provides a singly linked list over ordered values with
// in-place reversal, merge sort, and merging of two sorted lists.
//
// Nodes are never copied by the list operations. Reverse and Sort permute the
// nodes a list already owns; Merge and MergeTwoSorted move every node of their
// inputs into the result. A list whose nodes were moved out is consumed: any
// further use of it panics with ErrConsumed, so the donor of a merge can never
// observe a node that now belongs to another list.
//
// A List is not safe for concurrent use.
package linkedlist

import "fmt"
import "strings"
import "golang.org/x/exp/constraints"

// A List owns a chain of nodes. The zero value is an empty list.
type List[T constraints.Ordered] struct {
	head   *Node[T]
	tail   *Node[T]
	length int

	consumed bool
}

// Create an empty list.
func New[T constraints.Ordered]() *List[T] {
	return &List[T]{}
}

// Create a list holding vs in order.
func FromSlice[T constraints.Ordered](vs []T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.Append(v)
	}
	return l
}

// Create a list taking ownership of the nodes of c. c is consumed.
func FromChain[T constraints.Ordered](c *Chain[T]) *List[T] {
	head, tail, n := c.take()
	return &List[T]{
		head:   head,
		tail:   tail,
		length: n,
	}
}

func (l *List[T]) check() {
	if l.consumed {
		violation(ErrConsumed)
	}
}

// Number of nodes in the list.
func (l *List[T]) Len() int {
	l.check()
	return l.length
}

func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// First node of the list, or nil. The node stays owned by the list.
func (l *List[T]) Head() *Node[T] {
	l.check()
	return l.head
}

// Append a node holding v at the tail.
func (l *List[T]) Append(v T) {
	l.check()

	n := NewNode(v)
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
	cNodesAppended.Inc()
}

// Values from head to tail. The returned slice is freshly allocated.
func (l *List[T]) Values() []T {
	l.check()

	vs := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		vs = append(vs, n.Value)
	}
	return vs
}

// Reverse the list in place. Only link directions change.
func (l *List[T]) Reverse() {
	l.check()

	var prev *Node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}

	l.head, l.tail = prev, l.head
	cReversals.Inc()
}

// Sort the list into non-decreasing order by merge sort, splitting at
// FindMiddle. Equal values keep their relative order.
func (l *List[T]) Sort() {
	l.check()

	if l.length > 1 {
		l.head, l.tail = mergeSort(l.head)
	}
	cSorts.Inc()
}

// Sort the list using less, which must return true iff a orders strictly
// before b. The sort is stable and iterative.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.check()

	if l.length > 1 {
		l.head, l.tail = sortRuns(l.head, less)
	}
	cSorts.Inc()
}

// Reports whether the values are in non-decreasing order.
func (l *List[T]) IsSorted() bool {
	l.check()

	for n := l.head; n != nil && n.next != nil; n = n.next {
		if n.next.Value < n.Value {
			return false
		}
	}
	return true
}

// Create an independent list holding the same values. Use this before Merge
// when the source must stay usable.
func (l *List[T]) Copy() *List[T] {
	l.check()

	c := New[T]()
	for n := l.head; n != nil; n = n.next {
		c.Append(n.Value)
	}
	return c
}

// Transfer all nodes to a new Chain. The list is consumed and must not be used
// again. Detaching a nil list yields a nil (empty) chain.
func (l *List[T]) Detach() *Chain[T] {
	if l == nil {
		return nil
	}
	l.check()

	c := &Chain[T]{
		head:   l.head,
		tail:   l.tail,
		length: l.length,
	}
	l.head, l.tail, l.length = nil, nil, 0
	l.consumed = true

	log.Debugf("detached %d nodes", c.length)
	cNodesTransferred.Add(int64(c.length))
	return c
}

// Renders the list as "1 -> 3 -> 5 -> None".
func (l *List[T]) String() string {
	if l.consumed {
		return "<consumed>"
	}

	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "%v -> ", n.Value)
	}
	b.WriteString("None")
	return b.String()
}
