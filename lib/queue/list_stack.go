package queue

import (
	"errors"

	"github.com/benz9527/xlist/lib/list"
)

var ErrStackEmpty = errors.New("[stack] there is no element to pop")

var _ Stack[struct{}] = (*listStack[struct{}])(nil) // Type check assertion

// listStack adapts the singly linked list as LIFO backing storage. Only
// the head of a singly linked chain supports O(1) insert and remove, so
// the head is the top of the stack.
type listStack[E comparable] struct {
	items list.SinglyLinkedList[E]
}

func NewListStack[E comparable]() Stack[E] {
	return &listStack[E]{
		items: list.NewSinglyLinkedList[E](),
	}
}

func (s *listStack[E]) Len() int64 {
	return s.items.Len()
}

func (s *listStack[E]) IsEmpty() bool {
	return s.items.IsEmpty()
}

func (s *listStack[E]) Push(v E) {
	s.items.PushFront(v)
}

func (s *listStack[E]) Pop() (v E, err error) {
	if s.items.IsEmpty() {
		return v, ErrStackEmpty
	}
	return s.items.PopFront()
}

func (s *listStack[E]) Top() (v E, err error) {
	if s.items.IsEmpty() {
		return v, ErrStackEmpty
	}
	return s.items.Front()
}
