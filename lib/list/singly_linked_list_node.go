package list

// Node is one link of a singly linked chain. The next pointer is the only
// ownership link, a node without a predecessor is owned by the list head.
type Node[T comparable] struct {
	next  *Node[T]
	Value T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

func (e *Node[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil
}

func (e *Node[T]) Next() *Node[T] {
	if e == nil {
		return nil
	}
	return e.next
}
