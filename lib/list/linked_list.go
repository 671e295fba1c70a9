package list

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// NodeElement is one element of a doubly linked list. It remembers the list
// it belongs to, element membership is verified through that reference
// before any splice runs.
type NodeElement[T comparable] struct {
	prev, next *NodeElement[T]
	listRef    *doublyLinkedList[T]
	Value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func NewNodeElement[T comparable](v T) *NodeElement[T] {
	return newNodeElement[T](v, nil)
}

func newNodeElement[T comparable](v T, list *doublyLinkedList[T]) *NodeElement[T] {
	return &NodeElement[T]{
		Value:   v,
		listRef: list,
	}
}

func (e *NodeElement[T]) HasNext() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.next != nil && e.next != e.listRef.getRoot()
}

func (e *NodeElement[T]) HasPrev() bool {
	if e == nil || e.listRef == nil {
		return false
	}
	return e.prev != nil && e.prev != e.listRef.getRoot()
}

func (e *NodeElement[T]) Next() *NodeElement[T] {
	if e == nil {
		return nil
	}
	return e.next
}

func (e *NodeElement[T]) Prev() *NodeElement[T] {
	if e == nil {
		return nil
	}
	return e.prev
}

type nodeElementInListStatus uint8

const (
	notInList nodeElementInListStatus = iota
	emptyList
	theOnlyOne
	theFirstButNotTheLast
	theLastButNotTheFirst
	inMiddle
)

// The chain is circular through one root sentinel: root.next is the head
// and root.prev is the tail, an empty list links the root to itself.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) getRoot() *NodeElement[T] {
	return l.root
}

func (l *doublyLinkedList[T]) getRootHead() *NodeElement[T] {
	return l.root.next
}

func (l *doublyLinkedList[T]) setRootHead(targetE *NodeElement[T]) {
	l.root.next = targetE
	targetE.prev = l.root
}

func (l *doublyLinkedList[T]) getRootTail() *NodeElement[T] {
	return l.root.prev
}

func (l *doublyLinkedList[T]) setRootTail(targetE *NodeElement[T]) {
	l.root.prev = targetE
	targetE.next = l.root
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.setRootHead(l.root)
	l.setRootTail(l.root)
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}
	return l.len
}

func (l *doublyLinkedList[T]) checkElement(targetE *NodeElement[T]) (*NodeElement[T], nodeElementInListStatus) {
	if l.len == 0 {
		return l.getRoot(), emptyList
	}

	if targetE == nil || targetE.listRef != l || targetE.prev == nil || targetE.next == nil {
		return nil, notInList
	}

	// mem address compare
	switch {
	case targetE.Prev() == l.getRoot() && targetE.Next() == l.getRoot():
		// targetE is the first one and the last one
		if l.getRootHead() != targetE || l.getRootTail() != targetE {
			return nil, notInList
		}
		return targetE, theOnlyOne
	case targetE.Prev() == l.getRoot() && targetE.Next() != l.getRoot():
		// targetE is the first one but not the last one
		if targetE.Next().Prev() != targetE {
			return nil, notInList
		}
		return targetE, theFirstButNotTheLast
	case targetE.Prev() != l.getRoot() && targetE.Next() == l.getRoot():
		// targetE is the last one but not the first one
		if targetE.Prev().Next() != targetE {
			return nil, notInList
		}
		return targetE, theLastButNotTheFirst
	case targetE.Prev() != l.getRoot() && targetE.Next() != l.getRoot():
		// targetE is neither the first one nor the last one
		if targetE.Prev().Next() != targetE && targetE.Next().Prev() != targetE {
			return nil, notInList
		}
		return targetE, inMiddle
	}
	return nil, notInList
}

func (l *doublyLinkedList[T]) append(e *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.next, e.prev = nil, nil

	if l.len == 0 {
		// empty list, the new append element is the first one
		l.setRootHead(e)
		l.setRootTail(e)
		l.len++
		return e
	}

	lastOne := l.getRootTail()
	lastOne.next = e
	e.prev, e.next = lastOne, nil
	l.setRootTail(e)

	l.len++
	return e
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if l == nil || l.root == nil || len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.append(newNodeElement(v, l)))
	}
	return newElements
}

func (l *doublyLinkedList[T]) insertAfter(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.prev = at

	if l.len == 0 {
		l.setRootHead(newE)
		l.setRootTail(newE)
	} else {
		newE.next = at.Next()
		at.next = newE
		if newE.Next() != nil {
			newE.Next().prev = newE
		}
	}
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}

	at, status := l.checkElement(dstE)
	if status == notInList {
		return nil
	}

	newE := l.insertAfter(newNodeElement(v, l), at)
	switch status {
	case theOnlyOne, theLastButNotTheFirst:
		l.setRootTail(newE)
	default:

	}
	return newE
}

func (l *doublyLinkedList[T]) insertBefore(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.next = at

	if l.len == 0 {
		l.setRootHead(newE)
		l.setRootTail(newE)
	} else {
		newE.prev = at.prev
		at.prev = newE
		if newE.Prev() != nil {
			newE.Prev().next = newE
		}
	}
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}

	at, status := l.checkElement(dstE)
	if status == notInList {
		return nil
	}

	newE := l.insertBefore(newNodeElement(v, l), at)
	switch status {
	case theOnlyOne, theFirstButNotTheLast:
		l.setRootHead(newE)
	default:

	}
	return newE
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}

	var (
		at     *NodeElement[T]
		status nodeElementInListStatus
	)

	switch at, status = l.checkElement(targetE); status {
	case theOnlyOne:
		l.setRootHead(l.getRoot())
		l.setRootTail(l.getRoot())
	case theFirstButNotTheLast:
		l.setRootHead(at.Next())
		at.Next().prev = l.getRoot()
	case theLastButNotTheFirst:
		l.setRootTail(at.Prev())
		at.Prev().next = l.getRoot()
	case inMiddle:
		at.Prev().next = at.next
		at.Next().prev = at.prev
	default:
		return nil
	}

	// avoid memory leaks
	at.listRef = nil
	at.next = nil
	at.prev = nil

	l.len--
	return at
}

func (l *doublyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if l == nil || l.root == nil || l.len == 0 {
		return nil, false
	}

	if len(compareFn) <= 0 {
		compareFn = []func(e *NodeElement[T]) bool{
			func(e *NodeElement[T]) bool {
				return e.Value == targetV
			},
		}
	}

	iterator := l.getRoot()
	for iterator.HasNext() {
		if compareFn[0](iterator.Next()) {
			return iterator.Next(), true
		}
		iterator = iterator.Next()
	}
	return nil, false
}

func (l *doublyLinkedList[T]) ForEach(fn func(idx int64, e *NodeElement[T])) {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return
	}

	var (
		iterator       = l.getRoot().Next()
		idx      int64 = 0
	)
	// Load the successor before fn runs, fn is allowed to remove the
	// element it currently visits.
	for iterator != l.getRoot() {
		n := iterator.Next()
		fn(idx, iterator)
		iterator = n
		idx++
	}
}

func (l *doublyLinkedList[T]) ReverseForEach(fn func(idx int64, e *NodeElement[T])) {
	if l == nil || l.root == nil || fn == nil || l.len == 0 {
		return
	}

	var (
		iterator       = l.getRoot().Prev()
		idx      int64 = 0
	)
	for iterator != l.getRoot() {
		p := iterator.Prev()
		fn(idx, iterator)
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}

	return l.root.Next()
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l == nil || l.root == nil || l.len == 0 {
		return nil
	}

	return l.root.Prev()
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}

	return l.InsertBefore(v, l.getRootHead())
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	if l == nil || l.root == nil {
		return nil
	}

	return l.InsertAfter(v, l.getRootTail())
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.Len())
	l.ForEach(func(idx int64, e *NodeElement[T]) {
		values = append(values, e.Value)
	})
	return values
}
