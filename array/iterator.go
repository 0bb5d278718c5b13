package array

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
)

// Iterator is a random-access iterator over an Array.
//
// An iterator remembers the structural generation of its array. Any
// structural modification (Add, Insert, Remove, PopBack, Resize, Clear,
// re-allocation, move) invalidates all iterators of the array; using one
// afterwards panics with containers.ErrIteratorInvalidated. Writing through
// Ref or Set does not invalidate iterators.
type Iterator[T any] struct {
	arr *Array[T]
	pos int
	gen uint64
}

var _ iterator.RandomAccess[int] = &Iterator[int]{}

// Begin returns an iterator positioned at the first element.
func (a *Array[T]) Begin() *Iterator[T] {
	return &Iterator[T]{arr: a, pos: 0, gen: a.gen}
}

// End returns an iterator positioned one past the last element.
func (a *Array[T]) End() *Iterator[T] {
	return &Iterator[T]{arr: a, pos: a.num, gen: a.gen}
}

func (it *Iterator[T]) check() {
	if it.arr == nil || it.gen != it.arr.gen {
		panic(containers.ErrIteratorInvalidated)
	}
}

// Category returns iterator.RandomAccessTag.
func (it *Iterator[T]) Category() iterator.Category {
	return iterator.RandomAccessTag
}

// Valid reports whether it points at a live element.
func (it *Iterator[T]) Valid() bool {
	it.check()
	return it.pos >= 0 && it.pos < it.arr.num
}

// Value returns the element it points at.
func (it *Iterator[T]) Value() T {
	return *it.Ref()
}

// Ref returns a reference to the element it points at.
func (it *Iterator[T]) Ref() *T {
	it.check()
	if it.pos < 0 || it.pos >= it.arr.num {
		panic(fmt.Sprintf("%s: iterator at %d, array length %d",
			containers.ErrIndexOutOfBounds, it.pos, it.arr.num))
	}
	return &it.arr.buf[it.pos]
}

// Next steps to the following element.
func (it *Iterator[T]) Next() {
	it.Advance(1)
}

// Prev steps to the preceding element.
func (it *Iterator[T]) Prev() {
	it.Advance(-1)
}

// Advance moves it by n positions. Positions outside of [-1, Num()] are
// clipped to these limits.
func (it *Iterator[T]) Advance(n int) {
	it.check()
	it.pos = max(-1, min(it.pos+n, it.arr.num))
}

// Index returns the position of it.
func (it *Iterator[T]) Index() int {
	return it.pos
}

// Equal reports whether it and other point at the same position of the
// same array.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.arr == other.arr && it.pos == other.pos
}

// Distance returns the number of steps from it to other.
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	assert(it.arr == other.arr, "distance between iterators of different arrays")
	return other.pos - it.pos
}
