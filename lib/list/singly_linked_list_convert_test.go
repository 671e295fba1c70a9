package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinglyLinkedList_Values(t *testing.T) {
	slist := NewSinglyLinkedList[int](1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, slist.Values())
	require.Equal(t, []int{}, NewSinglyLinkedList[int]().Values())

	t.Log("rebuilding from the exported values reproduces the list")
	rebuilt := NewSinglyLinkedList[int](slist.Values()...)
	require.True(t, slist.Equal(rebuilt))

	t.Log("the exported slice is a copy, not a view")
	values := slist.Values()
	values[0] = 42
	front, err := slist.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
}

func TestSinglyLinkedList_ToLinkedList(t *testing.T) {
	slist := NewSinglyLinkedList[string]("a", "b", "c")
	dlist := slist.ToLinkedList()
	require.Equal(t, slist.Len(), dlist.Len())
	require.Equal(t, []string{"a", "b", "c"}, dlist.Values())

	t.Log("the doubly list holds copies, mutating it leaves the source alone")
	dlist.PushBack("d")
	require.Equal(t, []string{"a", "b", "c"}, slist.Values())

	empty := NewSinglyLinkedList[string]().ToLinkedList()
	require.Equal(t, int64(0), empty.Len())
}

func TestSinglyLinkedList_AssignLinkedList(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist.AppendValue(4, 5, 6)

	slist := NewSinglyLinkedList[int](1, 2, 3)
	slist.AssignLinkedList(dlist)
	require.Equal(t, []int{4, 5, 6}, slist.Values())
	requireChainConsistent[int](t, slist)

	t.Log("round trip through the doubly list reproduces the original")
	rebuilt := NewSinglyLinkedList[int]()
	rebuilt.AssignLinkedList(slist.ToLinkedList())
	require.True(t, slist.Equal(rebuilt))

	t.Log("assigning from nil or empty clears the destination")
	slist.AssignLinkedList(nil)
	require.True(t, slist.IsEmpty())
	slist.AppendValue(7)
	slist.AssignLinkedList(NewLinkedList[int]())
	require.True(t, slist.IsEmpty())
	requireChainConsistent[int](t, slist)
}

func TestSinglyLinkedList_ToArrayPad(t *testing.T) {
	slist := NewSinglyLinkedList[int](1, 2, 3)

	arr, err := slist.ToArrayPad(5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 0, 0}, arr)

	arr, err = slist.ToArrayPad(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, arr)

	_, err = slist.ToArrayPad(2)
	require.ErrorIs(t, err, ErrListArrayOverflow)
	_, err = slist.ToArrayPad(0)
	require.ErrorIs(t, err, ErrListInvalidArraySize)
	_, err = slist.ToArrayPad(-3)
	require.ErrorIs(t, err, ErrListInvalidArraySize)

	arr, err = NewSinglyLinkedList[int]().ToArrayPad(3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, arr)

	t.Log("padding uses the element type nil object")
	strArr, err := NewSinglyLinkedList[string]("x").ToArrayPad(3)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "", ""}, strArr)
}

func TestSinglyLinkedList_ToArrayCut(t *testing.T) {
	slist := NewSinglyLinkedList[int](1, 2, 3, 4, 5)

	arr, err := slist.ToArrayCut(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, arr)

	arr, err = slist.ToArrayCut(5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, arr)

	_, err = slist.ToArrayCut(6)
	require.ErrorIs(t, err, ErrListArrayUnderflow)
	_, err = slist.ToArrayCut(0)
	require.ErrorIs(t, err, ErrListInvalidArraySize)

	_, err = NewSinglyLinkedList[int]().ToArrayCut(1)
	require.ErrorIs(t, err, ErrListArrayUnderflow)
}

func TestSinglyLinkedList_ToArrayAuto(t *testing.T) {
	slist := NewSinglyLinkedList[int](1, 2, 3, 4, 5)

	t.Log("a short array truncates")
	arr, err := slist.ToArrayAuto(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, arr)

	t.Log("a long array pads with the nil object")
	arr, err = slist.ToArrayAuto(7)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 0, 0}, arr)

	t.Log("the exact size reproduces the list")
	arr, err = slist.ToArrayAuto(int(slist.Len()))
	require.NoError(t, err)
	require.True(t, slist.Equal(NewSinglyLinkedList[int](arr...)))

	_, err = slist.ToArrayAuto(0)
	require.ErrorIs(t, err, ErrListInvalidArraySize)
	_, err = NewSinglyLinkedList[int]().ToArrayAuto(-1)
	require.ErrorIs(t, err, ErrListInvalidArraySize)

	arr, err = NewSinglyLinkedList[int]().ToArrayAuto(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, arr)
}
