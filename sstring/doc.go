/*
Package sstring implements a null-terminated string type with small-string
optimization.

A string of up to InlineSize characters, terminator included, is stored
inline in the string value itself. Longer strings move to a heap buffer,
an array.Array of characters. The storage mode depends solely on the
length: every mutating operation switches modes transparently and copies
the existing characters across the transition at most once. The buffer
returned by Address is always terminated by a zero character and is exactly
Length()+1 characters long.

Strings are generic over the character width:

	String  = Basic[byte]     // UTF-8 code units
	WString = Basic[uint16]   // UTF-16 code units
	UString = Basic[rune]     // code points

Go strings are converted with Chars, which encodes to the character width
of the target type.

Like arrays, string values must not be copied by assignment once they may
have moved to the heap; use Clone, Assign or MoveFrom.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package sstring

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
