package uptr

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/array"
)

// Array is a sequence of owned pointers.
//
// Storage management is delegated to an array.Array of UniquePtrs: it moves
// the owners when it re-allocates and destroys them when it drops them.
// Array adds the ownership-transferring copy and accepts raw pointers.
// A zero Array is ready to use.
type Array[T any] struct {
	ptrs array.Array[UniquePtr[T]]
}

// NewArray creates an empty Array drawing its buffer from a. A nil
// allocator selects alloc.Heap.
func NewArray[T any](a alloc.Allocator) (*Array[T], error) {
	arr := &Array[T]{}
	if err := arr.ptrs.Init(array.Config[UniquePtr[T]]{Allocator: a}); err != nil {
		return nil, err
	}
	return arr, nil
}

// NewCopy creates an Array holding all elements of src.
//
// This is not a copy in the usual sense: owned pointers cannot be
// duplicated, so ownership of every element is transferred and src is left
// empty.
func NewCopy[T any](src *Array[T]) *Array[T] {
	arr := &Array[T]{}
	arr.CopyFrom(src)
	return arr
}

// CopyFrom destroys the elements of a and transfers all elements of src to
// a. src is left empty. See NewCopy.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if src == a {
		return
	}
	tracer().Debugf("uptr: transferring %d owned pointers", src.ptrs.Num())
	a.ptrs.MoveFrom(&src.ptrs)
}

// Num returns the number of elements.
func (a *Array[T]) Num() int {
	return a.ptrs.Num()
}

// IsEmpty reports whether a has no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.ptrs.IsEmpty()
}

// Add appends raw and takes ownership of it. If the allocation fails, a
// does not take ownership and the caller remains responsible for raw.
func (a *Array[T]) Add(raw *T) error {
	return a.ptrs.Add(New(raw))
}

// AddPtr appends the object owned by u, which is left nil. On failure u
// keeps ownership.
func (a *Array[T]) AddPtr(u *UniquePtr[T]) error {
	if err := a.ptrs.Add(UniquePtr[T]{p: u.p}); err != nil {
		return err
	}
	u.p = nil
	return nil
}

// Insert places raw at position pos, which must be a position of a live
// element, and takes ownership of it. On failure the caller keeps
// ownership.
func (a *Array[T]) Insert(pos int, raw *T) error {
	return a.ptrs.Insert(pos, New(raw))
}

// Remove destroys the element at pos.
func (a *Array[T]) Remove(pos int) error {
	return a.ptrs.Remove(pos)
}

// PopBack destroys the last element. It panics on an empty array.
func (a *Array[T]) PopBack() {
	a.ptrs.PopBack()
}

// At returns the pointer at i, keeping ownership. It panics if i is out of
// range.
func (a *Array[T]) At(i int) *T {
	return a.ptrs.At(i).Get()
}

// Get returns the pointer at i, keeping ownership.
func (a *Array[T]) Get(i int) (*T, error) {
	if i < 0 || i >= a.ptrs.Num() {
		return nil, fmt.Errorf("%w: get %d from array of length %d",
			containers.ErrIndexOutOfBounds, i, a.ptrs.Num())
	}
	return a.At(i), nil
}

// Release removes the element at i from a without destroying it and hands
// ownership to the caller.
func (a *Array[T]) Release(i int) (*T, error) {
	if i < 0 || i >= a.ptrs.Num() {
		return nil, fmt.Errorf("%w: release %d from array of length %d",
			containers.ErrIndexOutOfBounds, i, a.ptrs.Num())
	}
	u, err := a.ptrs.Take(i)
	return u.Release(), err
}

// Take moves the owner at i out of a, like Release but keeping the result
// owned.
func (a *Array[T]) Take(i int) (UniquePtr[T], error) {
	p, err := a.Release(i)
	return New(p), err
}

// Clear destroys all elements.
func (a *Array[T]) Clear() {
	a.ptrs.Clear()
}

// Destroy makes Arrays nest.
func (a *Array[T]) Destroy() {
	a.ptrs.Clear()
}

// All returns an iterator over positions and owned pointers. Structural
// modification during iteration panics.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i, u := range a.ptrs.All() {
			if !yield(i, u.p) {
				return
			}
		}
	}
}
