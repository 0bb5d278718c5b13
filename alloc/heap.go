package alloc

type heap struct{}

func (heap) Alloc(int) error { return nil }
func (heap) Free(int)        {}

// Heap is the allocator used whenever a container is not configured
// otherwise. It grants every request.
var Heap Allocator = heap{}

// Default returns a if it is non-nil, and Heap otherwise.
func Default(a Allocator) Allocator {
	if a == nil {
		return Heap
	}
	return a
}
