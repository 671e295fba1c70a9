package queue

import (
	"errors"

	"github.com/benz9527/xlist/lib/list"
)

var ErrQueueEmpty = errors.New("[queue] there is no element to dequeue")

var _ Queue[struct{}] = (*listQueue[struct{}])(nil) // Type check assertion

// listQueue adapts the singly linked list as FIFO backing storage, the
// enqueue end is the chain tail and the dequeue end is the chain head.
type listQueue[E comparable] struct {
	items list.SinglyLinkedList[E]
}

func NewListQueue[E comparable]() Queue[E] {
	return &listQueue[E]{
		items: list.NewSinglyLinkedList[E](),
	}
}

func (q *listQueue[E]) Len() int64 {
	return q.items.Len()
}

func (q *listQueue[E]) IsEmpty() bool {
	return q.items.IsEmpty()
}

func (q *listQueue[E]) Enqueue(v E) {
	q.items.PushBack(v)
}

func (q *listQueue[E]) Dequeue() (v E, err error) {
	if q.items.IsEmpty() {
		return v, ErrQueueEmpty
	}
	return q.items.PopFront()
}

func (q *listQueue[E]) Front() (v E, err error) {
	if q.items.IsEmpty() {
		return v, ErrQueueEmpty
	}
	return q.items.Front()
}

func (q *listQueue[E]) Back() (v E, err error) {
	if q.items.IsEmpty() {
		return v, ErrQueueEmpty
	}
	return q.items.Back()
}
