package list

// Note that all of the containers in this package are not thread safe.
// Each list instance assumes one exclusive owner: no operation locks, and
// mutating a chain while a cursor derived from it is still in use leaves
// that cursor dangling. It is a caller obligation, not a detected error.

// SinglyLinkedList is a generic sequence container backed by a chain of
// singly linked nodes. The head node owns the chain transitively, the tail
// reference is a non-owning O(1) shortcut to the last node and the length
// is tracked eagerly. Walk-based operations (PopBack, InsertBefore,
// EraseBefore, Get) are O(n) since the nodes carry no backward links.
type SinglyLinkedList[T comparable] interface {
	Len() int64
	IsEmpty() bool
	// PushFront inserts a new node with value v before the current head
	// and returns the new node. O(1).
	PushFront(v T) *Node[T]
	// PushBack appends a new node with value v after the current tail
	// and returns the new node. O(1).
	PushBack(v T) *Node[T]
	// AppendValue appends the values to the list l in order and returns
	// the new nodes.
	AppendValue(values ...T) []*Node[T]
	// PopFront removes the head node and returns its value.
	PopFront() (T, error)
	// PopBack removes the tail node and returns its value. It has to walk
	// the chain from the head to find the new tail. O(n).
	PopBack() (T, error)
	// InsertBefore inserts a value v as a new node immediately before the
	// node dstE and returns the new node. A nil dstE addresses the one
	// past the tail position, so the value is appended. The position must
	// come from this chain, otherwise no node is created.
	InsertBefore(v T, dstE *Node[T]) (*Node[T], error)
	// EraseBefore removes the node immediately before the node dstE and
	// returns the removed value. A nil dstE addresses the one past the
	// tail position, so the tail is removed. Erasing before the head is
	// rejected, there is nothing in front of it.
	EraseBefore(dstE *Node[T]) (T, error)
	// Clear severs and discards the whole chain.
	Clear()
	// Front returns a copy of the first value of list l.
	Front() (T, error)
	// Back returns a copy of the last value of list l.
	Back() (T, error)
	// Head returns the first node of list l or nil if the list is empty.
	Head() *Node[T]
	// Tail returns the last node of list l or nil if the list is empty.
	Tail() *Node[T]
	// Get returns a copy of the value at the zero based index idx. O(n).
	Get(idx int64) (T, error)
	// Equal reports whether both lists hold pairwise equal values in the
	// same order. It walks both chains in lockstep. O(n).
	Equal(other SinglyLinkedList[T]) bool
	// FindFirst finds the first node that satisfies the compareFn and returns
	// the node and true if found. If compareFn is not provided, it will use
	// the default compare function that compares the value of the node.
	FindFirst(v T, compareFn ...func(e *Node[T]) bool) (*Node[T], bool)
	// ForEach traverses the list l and executes function fn for each node.
	ForEach(fn func(idx int64, e *Node[T]))
	// Clone duplicates the chain node by node into an independent list.
	// The copy is iterative, a long chain must not grow the call stack.
	Clone() SinglyLinkedList[T]
	// MoveFrom discards the receiver's chain and takes over the chain of
	// src in O(1), leaving src empty. Moving from itself is a no-op.
	// Cursors issued by src keep pointing into the transferred chain.
	MoveFrom(src SinglyLinkedList[T]) error
	// Swap exchanges the chains of both lists in O(1).
	Swap(other SinglyLinkedList[T]) error
	// Assign replaces the list content with the given values in order.
	Assign(values ...T)
	// AssignLinkedList replaces the list content with the values of the
	// doubly linked list src in order.
	AssignLinkedList(src LinkedList[T])
	// Values collects all values of list l in chain order.
	Values() []T
	// ToLinkedList copies the values of list l in order into a new doubly
	// linked list.
	ToLinkedList() LinkedList[T]
	// ToArrayPad copies the values of list l into a new slice of exactly n
	// elements. A list shorter than n leaves zero values in the remaining
	// slots. A list longer than n is rejected.
	ToArrayPad(n int) ([]T, error)
	// ToArrayCut copies the first n values of list l into a new slice of
	// exactly n elements. A list shorter than n is rejected.
	ToArrayCut(n int) ([]T, error)
	// ToArrayAuto copies the values of list l into a new slice of exactly
	// n elements, padding with zero values or truncating as needed.
	ToArrayAuto(n int) ([]T, error)
	// Begin returns a cursor positioned at the head node.
	Begin() *Iterator[T]
	// End returns the one past the tail cursor.
	End() *Iterator[T]
	// ConstBegin returns a read only cursor positioned at the head node.
	ConstBegin() *ConstIterator[T]
	// ConstEnd returns the one past the tail read only cursor.
	ConstEnd() *ConstIterator[T]
}

// LinkedList is the doubly linked list interface. It is the interop target
// of SinglyLinkedList.ToLinkedList and AssignLinkedList. Unlike the singly
// linked list it reports failures by returning nil elements instead of
// errors.
type LinkedList[T comparable] interface {
	Len() int64
	// AppendValue appends the values to the list l and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// InsertAfter inserts a value v as a new element immediately after element dstE
	// and returns the new element. If dstE is not an element of list l, the value v
	// will not be inserted.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertBefore inserts a value v as a new element immediately before element dstE
	// and returns the new element. If dstE is not an element of list l, the value v
	// will not be inserted.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// Remove removes targetE from l if targetE is an element of list l and returns
	// targetE or nil if the list is empty.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// FindFirst finds the first element that satisfies the compareFn and returns
	// the element and true if found. If compareFn is not provided, it will use
	// the default compare function that compares the value of element.
	FindFirst(v T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool)
	// ForEach traverses the list l and executes function fn for each element.
	ForEach(fn func(idx int64, e *NodeElement[T]))
	// ReverseForEach iterates the list in reverse order, calling fn for each
	// element, until either all elements have been visited.
	ReverseForEach(fn func(idx int64, e *NodeElement[T]))
	// Front returns the first element of doubly linked list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of doubly linked list l or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element e with value v at the front of list l and returns e.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element e with value v at the back of list l and returns e.
	PushBack(v T) *NodeElement[T]
	// Values collects all values of list l in chain order.
	Values() []T
}
