package list

// Iterator is a forward only cursor over a singly linked chain. It wraps a
// raw node reference and never owns it. The one past the tail position is a
// cursor holding no node. Two cursors are equal when they reference the
// same node. Mutating the chain invalidates cursors positioned at or after
// the mutated region, there is no detection of that.
type Iterator[T comparable] struct {
	current *Node[T]
}

func (it *Iterator[T]) IsValid() bool {
	return it != nil && it.current != nil
}

// Next advances the cursor to the successor node. Advancing the one past
// the tail cursor keeps it there.
func (it *Iterator[T]) Next() {
	if it == nil || it.current == nil {
		return
	}
	it.current = it.current.next
}

func (it *Iterator[T]) Value() (v T) {
	if it == nil || it.current == nil {
		// return empty value by default
		return
	}
	return it.current.Value
}

func (it *Iterator[T]) SetValue(v T) {
	if it == nil || it.current == nil {
		return
	}
	it.current.Value = v
}

// Node exposes the referenced node, e.g. as a splice position.
func (it *Iterator[T]) Node() *Node[T] {
	if it == nil {
		return nil
	}
	return it.current
}

func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if it == nil || other == nil {
		return false
	}
	return it.current == other.current
}

// ConstIterator is the read only twin of Iterator. It neither rewrites the
// referenced value nor hands out the node.
type ConstIterator[T comparable] struct {
	current *Node[T]
}

func (it *ConstIterator[T]) IsValid() bool {
	return it != nil && it.current != nil
}

func (it *ConstIterator[T]) Next() {
	if it == nil || it.current == nil {
		return
	}
	it.current = it.current.next
}

func (it *ConstIterator[T]) Value() (v T) {
	if it == nil || it.current == nil {
		// return empty value by default
		return
	}
	return it.current.Value
}

func (it *ConstIterator[T]) Equal(other *ConstIterator[T]) bool {
	if it == nil || other == nil {
		return false
	}
	return it.current == other.current
}

func (l *singlyLinkedList[T]) Begin() *Iterator[T] {
	return &Iterator[T]{current: l.Head()}
}

func (l *singlyLinkedList[T]) End() *Iterator[T] {
	return &Iterator[T]{}
}

func (l *singlyLinkedList[T]) ConstBegin() *ConstIterator[T] {
	return &ConstIterator[T]{current: l.Head()}
}

func (l *singlyLinkedList[T]) ConstEnd() *ConstIterator[T] {
	return &ConstIterator[T]{}
}
