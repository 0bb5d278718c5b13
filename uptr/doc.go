/*
Package uptr implements single-owner pointers.

A UniquePtr owns the object it points to. It cannot be copied, only moved;
moving transfers ownership and leaves the source nil. Destroying a
UniquePtr destroys the pointee (if it implements containers.Destroyer)
exactly once.

Array is the container for owned pointers. Generic arrays copy their
elements, which is impossible for move-only elements, so Array "copies"
by transferring ownership: NewCopy and CopyFrom take every element out of
the source array and leave it empty.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package uptr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'containers'.
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
