/*
Package array implements Array, a contiguous, growable sequence container
with explicit element lifecycle.

Storage

An Array owns a single backing buffer. Slots [0, Num()) hold live elements,
slots [Num(), Reserved()) are vacant and always hold the zero value.
Capacity grows geometrically: whenever the live count exceeds the reserved
capacity, the buffer is re-allocated to twice the live count. It shrinks
when the live count falls to a quarter of the reserved capacity or below,
again to twice the live count. The gap between the two thresholds keeps an
array from thrashing when pushes and pops alternate near a boundary.

	Operation      |  Cost
	---------------+----------------
	Add, PopBack   |  amortized O(1)
	Insert, Remove |  O(n)
	At, Set        |  O(1)

Elements are never copied byte-wise when they change slots. They are moved
(assigned to the new slot, the old slot is zeroed) and they are destroyed
(containers.Destroyer) only when the array drops them. A moved element is
not destroyed.

Failure

The backing buffer is granted by an alloc.Allocator. If the allocator
refuses, the operation returns an error wrapping containers.ErrAllocation
and the array is exactly as before the call. This holds for Resize as well.

Indexed access with At panics for positions outside [0, Num()), like Go
slices do. Code which relies on the out-of-range clamping found in older
array implementations has to call Clamp explicitly.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package array

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
