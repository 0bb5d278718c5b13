/*
Package containers offers the value-type building blocks underneath a larger
document and rendering code base: a growable array with explicit element
lifecycle, a small-string-optimized string, a parent-indexed tree and a
single-owner pointer.

Containers

The containers in the sub-packages own their storage exclusively. They decide
when a slot is constructed, when it is destroyed and when elements are moved
to a new backing buffer. Go's garbage collector frees memory eventually, but
it does not know about resources an element may hold besides memory. Element
types may therefore implement Destroyer; a container calls Destroy exactly
once for every element it drops, and never for an element it merely moves.

	Package     |  Content
	------------+---------------------------------------------------
	alloc       |  allocation accounting and byte budgets
	iterator    |  iterator category tags and interfaces
	array       |  Array[T], amortized doubling, quarter-fill shrink
	sstring     |  Basic[C], null-terminated with 16 inline chars
	tree        |  Node[T], children owned by an array.Array
	uptr        |  UniquePtr[T] and the ownership-transferring Array[T]

Failure handling

Fallible operations return an error wrapping one of the error kinds of this
package (ErrAllocation, ErrIndexOutOfBounds, …); test with errors.Is.
Allocation failure never leaves a container half-modified: the operation is
rolled back to the state before the call. Violated preconditions, like
popping from an empty array or dereferencing an invalidated iterator, are
programming errors and panic.

None of the containers is synchronized. Clients sharing a container between
goroutines have to guard it, see package textfile for an example.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
