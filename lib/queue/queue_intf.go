package queue

// The adapters in this package borrow their backing containers from
// lib/list and stay as single threaded as the containers themselves.

// Queue is a first in first out adapter. It only relies on the O(1) end
// operations of its backing container.
type Queue[E comparable] interface {
	Len() int64
	IsEmpty() bool
	// Enqueue appends the value v at the back of queue q.
	Enqueue(v E)
	// Dequeue removes the front value of queue q and returns it.
	Dequeue() (E, error)
	// Front returns a copy of the front value of queue q.
	Front() (E, error)
	// Back returns a copy of the back value of queue q.
	Back() (E, error)
}

// Stack is a last in first out adapter.
type Stack[E comparable] interface {
	Len() int64
	IsEmpty() bool
	// Push places the value v on top of stack s.
	Push(v E)
	// Pop removes the top value of stack s and returns it.
	Pop() (E, error)
	// Top returns a copy of the top value of stack s.
	Top() (E, error)
}
