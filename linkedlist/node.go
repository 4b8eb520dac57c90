package linkedlist

// A Node holds one value and the link to the node after it. Only this package
// rewires links, so a node reachable from a List or Chain cannot be made part
// of a cycle or a second chain from outside.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Create an unlinked node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Returns the following node, or nil if n terminates its chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
