package queue

var _ Stack[struct{}] = (*arrayStack[struct{}])(nil) // Type check assertion

// arrayStack keeps the values in a growable slice instead of a chain, the
// slice end is the top of the stack.
type arrayStack[E comparable] struct {
	arr []E
}

type ArrayStackOption[E comparable] func(*arrayStack[E])

func NewArrayStack[E comparable](opts ...ArrayStackOption[E]) Stack[E] {
	s := &arrayStack[E]{}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	if s.arr == nil {
		s.arr = make([]E, 0, 64)
	}
	return s
}

func WithArrayStackCapacity[E comparable](capacity int) ArrayStackOption[E] {
	return func(s *arrayStack[E]) {
		if capacity <= 0 {
			capacity = 64
		}
		s.arr = make([]E, 0, capacity)
	}
}

func (s *arrayStack[E]) Len() int64 { return int64(len(s.arr)) }

func (s *arrayStack[E]) IsEmpty() bool { return len(s.arr) == 0 }

func (s *arrayStack[E]) Push(v E) {
	s.arr = append(s.arr, v)
}

func (s *arrayStack[E]) Pop() (v E, err error) {
	prev := s.arr
	n := len(prev)
	if n <= 0 {
		return v, ErrStackEmpty
	}

	item := prev[n-1]
	prev[n-1] = *new(E) // nil object
	s.arr = prev[:n-1]
	return item, nil
}

func (s *arrayStack[E]) Top() (v E, err error) {
	if len(s.arr) == 0 {
		return v, ErrStackEmpty
	}
	return s.arr[len(s.arr)-1], nil
}
