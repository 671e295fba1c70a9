package list

func (l *singlyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.Len())
	for current := l.Head(); current != nil; current = current.next {
		values = append(values, current.Value)
	}
	return values
}

func (l *singlyLinkedList[T]) ToLinkedList() LinkedList[T] {
	dst := NewLinkedList[T]()
	for current := l.Head(); current != nil; current = current.next {
		dst.PushBack(current.Value)
	}
	return dst
}

func (l *singlyLinkedList[T]) AssignLinkedList(src LinkedList[T]) {
	if l == nil {
		return
	}

	l.Clear()
	if src == nil {
		return
	}
	src.ForEach(func(idx int64, e *NodeElement[T]) {
		l.PushBack(e.Value)
	})
}

// ToArrayPad enforces the upper bound only, the short side is padded.
func (l *singlyLinkedList[T]) ToArrayPad(n int) ([]T, error) {
	if n < 1 {
		return nil, ErrListInvalidArraySize
	}
	if l.Len() > int64(n) {
		return nil, ErrListArrayOverflow
	}

	arr := make([]T, n) // the slots beyond the chain keep the zero value
	i := 0
	for current := l.Head(); current != nil; current = current.next {
		arr[i] = current.Value
		i++
	}
	return arr, nil
}

// ToArrayCut enforces the lower bound only, the long side is truncated.
func (l *singlyLinkedList[T]) ToArrayCut(n int) ([]T, error) {
	if n < 1 {
		return nil, ErrListInvalidArraySize
	}
	if l.Len() < int64(n) {
		return nil, ErrListArrayUnderflow
	}

	arr := make([]T, n)
	current := l.Head()
	for i := 0; i < n; i++ {
		arr[i] = current.Value
		current = current.next
	}
	return arr, nil
}

// ToArrayAuto pads and truncates as needed. The three array conversions
// stay split on purpose, each one trades permissiveness differently and
// callers pick the bound they want enforced.
func (l *singlyLinkedList[T]) ToArrayAuto(n int) ([]T, error) {
	if n < 1 {
		return nil, ErrListInvalidArraySize
	}

	arr := make([]T, n)
	current := l.Head()
	for i := 0; i < n && current != nil; i++ {
		arr[i] = current.Value
		current = current.next
	}
	return arr, nil
}
