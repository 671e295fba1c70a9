package list

import (
	"errors"

	"go.uber.org/multierr"
)

var (
	ErrListEmpty            = errors.New("[singly-linked-list] there is no element")
	ErrListIndexOutOfRange  = errors.New("[singly-linked-list] index out of range")
	ErrListPositionNotFound = errors.New("[singly-linked-list] position not found in chain")
	ErrListInvalidOperation = errors.New("[singly-linked-list] nothing precedes the first element")
	ErrListInvalidArraySize = errors.New("[singly-linked-list] array size must be positive")
	ErrListArrayOverflow    = errors.New("[singly-linked-list] too many elements for the array size")
	ErrListArrayUnderflow   = errors.New("[singly-linked-list] too few elements for the array size")
	ErrListIncompatible     = errors.New("[singly-linked-list] incompatible list implementation")

	errSinglyRootMismatch    = errors.New("[singly-linked-list] head and tail emptiness mismatch")
	errSinglyLenMismatch     = errors.New("[singly-linked-list] len mismatches the chain walk")
	errSinglyTailUnreachable = errors.New("[singly-linked-list] tail is not the last reachable node")
	errSinglyTailDangling    = errors.New("[singly-linked-list] tail next is not none")
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyLinkedList[T comparable] struct {
	head *Node[T] // owns the whole chain through the next links
	tail *Node[T] // non-owning shortcut, kept in sync on every mutation of the last node
	len  int64
}

func NewSinglyLinkedList[T comparable](values ...T) SinglyLinkedList[T] {
	l := &singlyLinkedList[T]{}
	l.AppendValue(values...)
	return l
}

func (l *singlyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *singlyLinkedList[T]) PushFront(v T) *Node[T] {
	if l == nil {
		return nil
	}

	newE := NewNode(v)
	newE.next = l.head
	l.head = newE
	if l.tail == nil {
		l.tail = newE
	}
	l.len++
	return newE
}

func (l *singlyLinkedList[T]) PushBack(v T) *Node[T] {
	if l == nil {
		return nil
	}

	newE := NewNode(v)
	if l.tail == nil {
		l.head, l.tail = newE, newE
	} else {
		l.tail.next = newE
		l.tail = newE
	}
	l.len++
	return newE
}

func (l *singlyLinkedList[T]) AppendValue(values ...T) []*Node[T] {
	if l == nil || len(values) <= 0 {
		return nil
	}

	newElements := make([]*Node[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.PushBack(v))
	}
	return newElements
}

func (l *singlyLinkedList[T]) PopFront() (v T, err error) {
	if l == nil || l.len == 0 {
		return v, ErrListEmpty
	}

	first := l.head
	l.head = first.next
	if l.head == nil {
		l.tail = nil
	}
	// avoid memory leaks
	first.next = nil
	l.len--
	return first.Value, nil
}

func (l *singlyLinkedList[T]) PopBack() (v T, err error) {
	if l == nil || l.len == 0 {
		return v, ErrListEmpty
	}

	last := l.tail
	if l.head == last {
		l.head, l.tail = nil, nil
	} else {
		// no backward links, walk from the head to the new tail
		prev := l.head
		for prev.next != last {
			prev = prev.next
		}
		prev.next = nil
		l.tail = prev
	}
	l.len--
	return last.Value, nil
}

func (l *singlyLinkedList[T]) InsertBefore(v T, dstE *Node[T]) (*Node[T], error) {
	if l == nil {
		return nil, ErrListPositionNotFound
	}

	if dstE == l.head {
		// covers the empty list, a nil position equals the nil head
		return l.PushFront(v), nil
	}

	current := l.head
	for current != nil && current.next != dstE {
		current = current.next
	}
	if current == nil {
		// the new node is only allocated once the position is proven,
		// a failed insert must not mutate anything
		return nil, ErrListPositionNotFound
	}

	newE := NewNode(v)
	newE.next = current.next
	current.next = newE
	if newE.next == nil {
		// a nil dstE addressed the one past the tail position
		l.tail = newE
	}
	l.len++
	return newE, nil
}

func (l *singlyLinkedList[T]) EraseBefore(dstE *Node[T]) (v T, err error) {
	if l == nil || l.len == 0 || dstE == l.head {
		return v, ErrListInvalidOperation
	}

	var prev *Node[T]
	for current := l.head; current != nil; prev, current = current, current.next {
		if current.next != dstE {
			continue
		}
		// current is the node right before dstE
		if prev == nil {
			l.head = current.next
		} else {
			prev.next = current.next
		}
		if current == l.tail {
			// a nil dstE addressed the one past the tail position
			l.tail = prev
		}
		// avoid memory leaks
		current.next = nil
		l.len--
		return current.Value, nil
	}
	return v, ErrListPositionNotFound
}

func (l *singlyLinkedList[T]) Clear() {
	if l == nil {
		return
	}

	// avoid memory leaks
	for current := l.head; current != nil; {
		next := current.next
		current.next = nil
		current = next
	}
	l.head, l.tail = nil, nil
	l.len = 0
}

func (l *singlyLinkedList[T]) Front() (v T, err error) {
	if l == nil || l.len == 0 {
		return v, ErrListEmpty
	}
	return l.head.Value, nil
}

func (l *singlyLinkedList[T]) Back() (v T, err error) {
	if l == nil || l.len == 0 {
		return v, ErrListEmpty
	}
	return l.tail.Value, nil
}

func (l *singlyLinkedList[T]) Head() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *singlyLinkedList[T]) Tail() *Node[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

func (l *singlyLinkedList[T]) Get(idx int64) (v T, err error) {
	if l == nil || idx < 0 || idx >= l.len {
		return v, ErrListIndexOutOfRange
	}

	current := l.head
	for i := int64(0); i < idx; i++ {
		current = current.next
	}
	return current.Value, nil
}

func (l *singlyLinkedList[T]) Equal(other SinglyLinkedList[T]) bool {
	if l == nil || other == nil || l.len != other.Len() {
		return false
	}

	b := other.Head()
	for a := l.head; a != nil; a = a.next {
		if b == nil || a.Value != b.Value {
			return false
		}
		b = b.next
	}
	return true
}

func (l *singlyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *Node[T]) bool) (*Node[T], bool) {
	if l == nil || l.len == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 {
		compareFn = []func(e *Node[T]) bool{
			func(e *Node[T]) bool {
				return e.Value == targetV
			},
		}
	}

	for current := l.head; current != nil; current = current.next {
		if compareFn[0](current) {
			return current, true
		}
	}
	return nil, false
}

func (l *singlyLinkedList[T]) ForEach(fn func(idx int64, e *Node[T])) {
	if l == nil || fn == nil || l.len == 0 {
		return
	}

	var idx int64
	// The successor is loaded before fn runs, so fn may unlink the node
	// it currently visits without derailing the traversal.
	for current := l.head; current != nil; {
		next := current.next
		fn(idx, current)
		current = next
		idx++
	}
}

func (l *singlyLinkedList[T]) Clone() SinglyLinkedList[T] {
	copied := &singlyLinkedList[T]{}
	if l == nil {
		return copied
	}

	// node by node walk instead of recursion, the chain length is unbounded
	for current := l.head; current != nil; current = current.next {
		copied.PushBack(current.Value)
	}
	return copied
}

func (l *singlyLinkedList[T]) MoveFrom(src SinglyLinkedList[T]) error {
	donor, ok := src.(*singlyLinkedList[T])
	if !ok || donor == nil || l == nil {
		return ErrListIncompatible
	}
	if donor == l {
		return nil
	}

	l.Clear()
	l.head, l.tail, l.len = donor.head, donor.tail, donor.len
	donor.head, donor.tail, donor.len = nil, nil, 0
	return nil
}

func (l *singlyLinkedList[T]) Swap(other SinglyLinkedList[T]) error {
	rhs, ok := other.(*singlyLinkedList[T])
	if !ok || rhs == nil || l == nil {
		return ErrListIncompatible
	}
	if rhs == l {
		return nil
	}

	l.head, rhs.head = rhs.head, l.head
	l.tail, rhs.tail = rhs.tail, l.tail
	l.len, rhs.len = rhs.len, l.len
	return nil
}

func (l *singlyLinkedList[T]) Assign(values ...T) {
	if l == nil {
		return
	}
	l.Clear()
	l.AppendValue(values...)
}

// checkChain revalidates the head, tail and len bookkeeping against a full
// walk. The walk is len bounded, a corrupted chain cannot loop it forever.
func (l *singlyLinkedList[T]) checkChain() error {
	var merr error
	if (l.head == nil) != (l.tail == nil) {
		merr = multierr.Append(merr, errSinglyRootMismatch)
	}

	var (
		count int64
		last  *Node[T]
	)
	for current := l.head; current != nil && count <= l.len; current = current.next {
		last = current
		count++
	}
	if count != l.len {
		merr = multierr.Append(merr, errSinglyLenMismatch)
	}
	if last != l.tail {
		merr = multierr.Append(merr, errSinglyTailUnreachable)
	}
	if l.tail != nil && l.tail.next != nil {
		merr = multierr.Append(merr, errSinglyTailDangling)
	}
	return merr
}
