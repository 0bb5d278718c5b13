/*
Package alloc accounts for the backing storage of containers.

Go allocation does not fail gracefully, a failing make() terminates the
program. Containers of this module therefore ask an Allocator for permission
before they obtain a new buffer, and report back when they drop one. The
default allocator, Heap, always grants. A Budget grants until a byte limit
would be exceeded, which makes allocation failure a regular, testable error
condition:

	budget := alloc.NewBudget(1 << 10)
	var a array.Array[int]
	a.Init(array.Config[int]{Allocator: budget})

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package alloc

import (
	"unsafe"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

// Allocator grants and accounts for buffer memory.
//
// Alloc is called before a buffer of the given size is created and may
// refuse with an error wrapping containers.ErrAllocation. Free is called
// after a buffer granted earlier has been dropped.
type Allocator interface {
	Alloc(bytes int) error
	Free(bytes int)
}

// SizeOf returns the number of bytes a single element of type T occupies
// in a buffer.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
