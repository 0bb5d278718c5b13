package array

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
)

func (a *Array[T]) allocator() alloc.Allocator {
	return alloc.Default(a.alloc)
}

// construct creates the element for a fresh slot.
func (a *Array[T]) construct() T {
	if a.ctor != nil {
		return a.ctor()
	}
	var zero T
	return zero
}

// destroy drops the live element in slot i and leaves the slot vacant.
func (a *Array[T]) destroy(i int) {
	containers.Destroy(&a.buf[i])
	a.vacate(i)
}

// vacate zeroes slot i after its element has been moved elsewhere.
func (a *Array[T]) vacate(i int) {
	var zero T
	a.buf[i] = zero
}

// realloc moves all live elements to a new buffer of capacity reserve.
// If the allocator refuses the new buffer, a is left untouched.
func (a *Array[T]) realloc(reserve int) error {
	assert(reserve >= a.num, "realloc would drop live elements")
	if reserve == len(a.buf) {
		return nil
	}
	size := alloc.SizeOf[T]()
	if reserve > 0 {
		if err := a.allocator().Alloc(reserve * size); err != nil {
			if !errors.Is(err, containers.ErrAllocation) {
				err = fmt.Errorf("%w: %w", containers.ErrAllocation, err)
			}
			return err
		}
	}
	var buf []T
	if reserve > 0 {
		buf = make([]T, reserve)
		for i := 0; i < a.num; i++ {
			buf[i] = a.buf[i]
			a.vacate(i)
		}
	}
	if len(a.buf) > 0 {
		a.allocator().Free(len(a.buf) * size)
	}
	tracer().Debugf("array: re-allocated %d -> %d slots for %d elements", len(a.buf), reserve, a.num)
	a.buf = buf
	a.gen++
	return nil
}

// reserveFor makes room for n live elements.
func (a *Array[T]) reserveFor(n int) error {
	if n <= len(a.buf) {
		return nil
	}
	if n > math.MaxInt/(2*max(1, alloc.SizeOf[T]())) {
		return fmt.Errorf("%w: %d elements exceed the addressable size",
			containers.ErrAllocation, n)
	}
	return a.realloc(2 * n)
}

// shrink re-tightens the buffer to twice the live count if at most a quarter
// of it is in use. A refused allocation keeps the current buffer.
func (a *Array[T]) shrink() {
	if len(a.buf) == 0 || a.num > len(a.buf)/4 {
		return
	}
	if err := a.realloc(2 * a.num); err != nil {
		tracer().Debugf("array: keeping %d slots, shrinking refused: %v", len(a.buf), err)
	}
}

// release drops all live elements and the buffer.
func (a *Array[T]) release() {
	for i := 0; i < a.num; i++ {
		a.destroy(i)
	}
	a.num = 0
	err := a.realloc(0)
	assert(err == nil, "release cannot fail")
	a.gen++
}

// steal takes over buffer and allocator of src and leaves src empty.
// a must not hold a buffer.
func (a *Array[T]) steal(src *Array[T]) {
	assert(a.buf == nil && a.num == 0, "steal into non-empty array")
	a.buf, a.num, a.alloc = src.buf, src.num, src.alloc
	src.buf, src.num = nil, 0
	src.gen++
	a.gen++
}
