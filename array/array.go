package array

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
)

// Array is a growable sequence of elements of type T.
//
// An Array created by
//
//	Array[T]{}
//
// is a valid, empty, heap-backed array. Arrays must not be copied by
// assignment, as copies would share the backing buffer; use Clone, Assign,
// Move or MoveFrom instead.
type Array[T any] struct {
	buf   []T // len(buf) is the reserved capacity
	num   int // live elements are buf[:num]
	alloc alloc.Allocator
	ctor  func() T
	gen   uint64 // structural generation, checked by iterators
}

// Num returns the number of live elements.
func (a *Array[T]) Num() int {
	return a.num
}

// Reserved returns the capacity of the backing buffer.
func (a *Array[T]) Reserved() int {
	return len(a.buf)
}

// IsEmpty reports whether a has no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.num == 0
}

// Address returns the live elements as a slice backed by the array's buffer,
// or nil if a does not hold a buffer. The slice is invalidated by the next
// structural modification of a.
func (a *Array[T]) Address() []T {
	if a.buf == nil {
		return nil
	}
	return a.buf[:a.num:a.num]
}

// Add appends v at position Num().
func (a *Array[T]) Add(v T) error {
	if err := a.reserveFor(a.num + 1); err != nil {
		return err
	}
	a.buf[a.num] = v
	a.num++
	a.gen++
	return nil
}

// Insert places v at position pos, shifting the elements at [pos, Num())
// one slot to the right. pos must be a position of a live element;
// for appending use Add.
func (a *Array[T]) Insert(pos int, v T) error {
	if pos < 0 || pos >= a.num {
		return fmt.Errorf("%w: insert at %d into array of length %d",
			containers.ErrIndexOutOfBounds, pos, a.num)
	}
	if err := a.reserveFor(a.num + 1); err != nil {
		return err
	}
	for i := a.num; i > pos; i-- { // back to front
		a.buf[i] = a.buf[i-1]
	}
	a.buf[pos] = v
	a.num++
	a.gen++
	return nil
}

// Remove destroys the element at pos and shifts the elements behind it one
// slot to the left. An invalid pos leaves a unchanged and returns
// ErrIndexOutOfBounds, which callers may ignore.
func (a *Array[T]) Remove(pos int) error {
	if pos < 0 || pos >= a.num {
		return fmt.Errorf("%w: remove at %d from array of length %d",
			containers.ErrIndexOutOfBounds, pos, a.num)
	}
	a.destroy(pos)
	for i := pos; i < a.num-1; i++ { // front to back
		a.buf[i] = a.buf[i+1]
	}
	a.num--
	a.vacate(a.num)
	a.gen++
	a.shrink()
	return nil
}

// Take moves the element at pos out of a and shifts the elements behind it
// one slot to the left. Unlike Remove, the element is not destroyed; the
// caller owns it.
func (a *Array[T]) Take(pos int) (T, error) {
	if pos < 0 || pos >= a.num {
		var zero T
		return zero, fmt.Errorf("%w: take at %d from array of length %d",
			containers.ErrIndexOutOfBounds, pos, a.num)
	}
	v := a.buf[pos]
	for i := pos; i < a.num-1; i++ {
		a.buf[i] = a.buf[i+1]
	}
	a.num--
	a.vacate(a.num)
	a.gen++
	a.shrink()
	return v, nil
}

// PopBack destroys the last element. Calling PopBack on an empty array is
// a programming error and panics.
func (a *Array[T]) PopBack() {
	assert(a.num > 0, "PopBack called on empty array")
	a.num--
	a.destroy(a.num)
	a.gen++
	a.shrink()
}

// Resize sets the number of elements to n. New slots are filled by the
// configured constructor, excess elements are destroyed. If the allocator
// refuses a larger buffer, a is left unchanged.
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", containers.ErrIllegalArguments, n)
	}
	if n >= a.num {
		if err := a.reserveFor(n); err != nil {
			return err
		}
		for i := a.num; i < n; i++ {
			a.buf[i] = a.construct()
		}
		a.num = n
		a.gen++
		return nil
	}
	for i := n; i < a.num; i++ {
		a.destroy(i)
	}
	a.num = n
	a.gen++
	a.shrink()
	return nil
}

// Clear destroys all elements and drops the backing buffer.
func (a *Array[T]) Clear() {
	a.release()
}

// Destroy makes arrays nest: an array element which is an Array is cleared
// when its container drops it.
func (a *Array[T]) Destroy() {
	a.release()
}

// At returns a reference to the element at i. It panics if i is not in
// [0, Num()). The reference is invalidated by structural modifications.
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= a.num {
		panic(fmt.Sprintf("%s: At(%d) on array of length %d", containers.ErrIndexOutOfBounds, i, a.num))
	}
	return &a.buf[i]
}

// Clamp returns a reference to the element at i, clamping i to the valid
// range: positions past the end address the last element, negative ones the
// first. This is the lenient indexing older array implementations
// used. It silently hides indexing bugs; prefer At or Get.
// Clamp panics on an empty array.
func (a *Array[T]) Clamp(i int) *T {
	assert(a.num > 0, "Clamp called on empty array")
	return &a.buf[max(0, min(i, a.num-1))]
}

// Get returns the element at i.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.num {
		var zero T
		return zero, fmt.Errorf("%w: get %d from array of length %d",
			containers.ErrIndexOutOfBounds, i, a.num)
	}
	return a.buf[i], nil
}

// Set replaces the element at i, destroying the previous one.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.num {
		return fmt.Errorf("%w: set %d in array of length %d",
			containers.ErrIndexOutOfBounds, i, a.num)
	}
	a.destroy(i)
	a.buf[i] = v
	return nil
}

// Last returns the last element.
func (a *Array[T]) Last() (T, error) {
	if a.num == 0 {
		var zero T
		return zero, containers.ErrEmpty
	}
	return a.buf[a.num-1], nil
}

// IndexFunc returns the position of the first element satisfying f, or -1.
func (a *Array[T]) IndexFunc(f func(T) bool) int {
	for i := 0; i < a.num; i++ {
		if f(a.buf[i]) {
			return i
		}
	}
	return -1
}

// All returns an iterator over positions and elements. Structural
// modification of a during iteration panics.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := a.gen
		for i := 0; i < a.num; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
			if gen != a.gen {
				panic(containers.ErrIteratorInvalidated)
			}
		}
	}
}

// Values returns an iterator over the elements.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// --- Copy and move ---------------------------------------------------------

// Clone returns an element-wise copy of a, using the same configuration.
// Elements implementing containers.Cloner are copied with Clone, thus
// arrays of arrays are copied deeply. Arrays of move-only elements cannot
// be cloned.
//
// The returned array is a fresh value; it shares nothing with a.
func (a *Array[T]) Clone() (Array[T], error) {
	c := Array[T]{alloc: a.alloc, ctor: a.ctor}
	if err := c.copyFrom(a); err != nil {
		return Array[T]{}, err
	}
	return c, nil
}

// Assign replaces the contents of a by a copy of src. On failure a is
// unchanged.
func (a *Array[T]) Assign(src *Array[T]) error {
	if src == a {
		return nil
	}
	tmp := &Array[T]{alloc: a.alloc, ctor: a.ctor}
	if err := tmp.copyFrom(src); err != nil {
		return err
	}
	a.release()
	a.steal(tmp)
	return nil
}

// Move transfers the contents of a to a new array value and leaves a
// empty, without a buffer.
func (a *Array[T]) Move() Array[T] {
	m := Array[T]{ctor: a.ctor}
	m.steal(a)
	return m
}

// MoveFrom destroys the contents of a and takes over buffer and allocator of
// src. src is left empty, without a buffer.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if src == a {
		return
	}
	a.release()
	a.steal(src)
}

// copyFrom fills the empty array a with copies of the elements of src.
// On failure a is empty again.
func (a *Array[T]) copyFrom(src *Array[T]) error {
	assert(a.num == 0, "copyFrom into non-empty array")
	if containers.IsMoveOnly[T]() {
		return fmt.Errorf("%w: %T", containers.ErrMoveOnly, a)
	}
	if src.num == 0 {
		return nil
	}
	if err := a.reserveFor(src.num); err != nil {
		return err
	}
	for i := 0; i < src.num; i++ {
		v, err := containers.CloneOf(&src.buf[i])
		if err != nil {
			a.release()
			return err
		}
		a.buf[i] = v
		a.num++
	}
	a.gen++
	return nil
}
