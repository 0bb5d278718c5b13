/*
Package iterator defines the iterator categories and the minimal iterator
interfaces implemented by the containers of this module.

Iterators are cursors: they point at an element (Valid), expose it (Value)
and step (Next, Prev, Advance). A container's End iterator is not Valid.
Iterators are invalidated by structural modifications of their container;
using an invalidated iterator panics instead of reading stale storage.

For range loops, Values adapts any Forward iterator to iter.Seq.
*/
package iterator

import "iter"

// Category tags the traversal capabilities of an iterator.
type Category uint8

// Iterator categories, ordered by capability.
const (
	ForwardTag Category = iota
	BidirectionalTag
	RandomAccessTag
)

func (c Category) String() string {
	switch c {
	case ForwardTag:
		return "forward"
	case BidirectionalTag:
		return "bidirectional"
	case RandomAccessTag:
		return "random-access"
	}
	return "unknown"
}

// Forward is an iterator which can step forward only.
type Forward[T any] interface {
	Category() Category
	Valid() bool
	Value() T
	Next()
}

// Bidirectional iterators can step backwards as well.
type Bidirectional[T any] interface {
	Forward[T]
	Prev()
}

// RandomAccess iterators can jump by arbitrary offsets and know their
// position.
type RandomAccess[T any] interface {
	Bidirectional[T]
	Advance(n int)
	Index() int
}

// Values returns a sequence of the values from it onwards. it is consumed.
func Values[T any](it Forward[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Count steps it to the end and returns the number of steps.
func Count[T any](it Forward[T]) int {
	n := 0
	for ; it.Valid(); it.Next() {
		n++
	}
	return n
}

// Collect steps it to the end and returns the values seen.
func Collect[T any](it Forward[T]) []T {
	var values []T
	for v := range Values(it) {
		values = append(values, v)
	}
	return values
}

// Backwards returns a sequence of values from it towards the front.
func Backwards[T any](it Bidirectional[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; it.Valid(); it.Prev() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
