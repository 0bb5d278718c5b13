package sstring

import (
	"fmt"
	"slices"
	"unicode/utf16"
	"unsafe"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/alloc"
	"github.com/npillmayer/containers/array"
)

// InlineSize is the number of characters, terminator included, a string
// stores without a heap buffer.
const InlineSize = 16

// Char is the set of character types a string may hold.
type Char interface {
	~uint8 | ~uint16 | ~int32
}

// Basic is a null-terminated string of characters of type C.
//
// A string created by
//
//	Basic[C]{}
//
// is valid and behaves like the empty string.
type Basic[C Char] struct {
	length int // characters including the terminator; 0 in a zero value
	inline [InlineSize]C
	heap   array.Array[C] // holds exactly length characters in heap mode
}

// String is a string of bytes, usually UTF-8.
type String = Basic[byte]

// WString is a string of UTF-16 code units.
type WString = Basic[uint16]

// UString is a string of Unicode code points.
type UString = Basic[rune]

// Empty creates an empty string whose heap buffer is granted by a.
func Empty[C Char](a alloc.Allocator) *Basic[C] {
	s := &Basic[C]{}
	err := s.heap.Init(array.Config[C]{Allocator: a})
	assert(err == nil, "Empty: cannot configure heap buffer")
	return s
}

// New creates a string holding a copy of cs, with its heap buffer granted
// by a (nil for the Go heap).
func New[C Char](cs []C, a alloc.Allocator) (*Basic[C], error) {
	s := Empty[C](a)
	if err := s.AssignChars(cs); err != nil {
		return nil, err
	}
	return s, nil
}

// FromChars creates a heap-backed string holding a copy of cs.
func FromChars[C Char](cs []C) *Basic[C] {
	s, err := New(cs, nil)
	assert(err == nil, "FromChars: heap allocation refused")
	return s
}

// FromString creates a byte string from a Go string.
func FromString(str string) *String {
	return FromChars([]byte(str))
}

// Repeat creates a heap-backed string of n copies of c.
func Repeat[C Char](n int, c C) *Basic[C] {
	assert(n >= 0, "Repeat: negative count")
	cs := make([]C, n)
	for i := range cs {
		cs[i] = c
	}
	return FromChars(cs)
}

// Chars encodes a Go string to characters of type C: bytes for 1-byte
// characters, UTF-16 for 2-byte characters and code points otherwise.
func Chars[C Char](str string) []C {
	var zero C
	switch unsafe.Sizeof(zero) {
	case 1:
		cs := make([]C, len(str))
		for i := 0; i < len(str); i++ {
			cs[i] = C(str[i])
		}
		return cs
	case 2:
		units := utf16.Encode([]rune(str))
		cs := make([]C, len(units))
		for i, u := range units {
			cs[i] = C(u)
		}
		return cs
	}
	cs := make([]C, 0, len(str))
	for _, r := range str {
		cs = append(cs, C(r))
	}
	return cs
}

func decode[C Char](cs []C) string {
	var zero C
	switch unsafe.Sizeof(zero) {
	case 1:
		b := make([]byte, len(cs))
		for i, c := range cs {
			b[i] = byte(c)
		}
		return string(b)
	case 2:
		units := make([]uint16, len(cs))
		for i, c := range cs {
			units[i] = uint16(c)
		}
		return string(utf16.Decode(units))
	}
	runes := make([]rune, len(cs))
	for i, c := range cs {
		runes[i] = rune(c)
	}
	return string(runes)
}

// --- Storage ---------------------------------------------------------------

// size is the number of characters including the terminator.
func (s *Basic[C]) size() int {
	if s.length == 0 {
		return 1
	}
	return s.length
}

// buf returns the active buffer, terminator included.
func (s *Basic[C]) buf() []C {
	n := s.size()
	if n <= InlineSize {
		return s.inline[:n]
	}
	return s.heap.Address()[:n]
}

// reshape sets the size of the string to n characters, terminator included,
// switching storage modes as necessary. The first min(n, size) characters
// are preserved. On failure s is unchanged.
func (s *Basic[C]) reshape(n int) error {
	assert(n >= 1, "reshape below terminator size")
	old := s.size()
	switch {
	case n <= InlineSize && old <= InlineSize:
		// stays inline
	case n <= InlineSize: // heap → inline
		copy(s.inline[:n], s.heap.Address()[:n])
		s.heap.Clear()
		tracer().Debugf("sstring: %d chars moved inline", n-1)
	case old <= InlineSize: // inline → heap
		if err := s.heap.Resize(n); err != nil {
			return err
		}
		copy(s.heap.Address(), s.inline[:old])
		tracer().Debugf("sstring: %d chars moved to heap", n-1)
	default:
		if err := s.heap.Resize(n); err != nil {
			return err
		}
	}
	s.length = n
	return nil
}

// --- Basic accessors -------------------------------------------------------

// Length returns the number of characters, not counting the terminator.
func (s *Basic[C]) Length() int {
	return s.size() - 1
}

// IsEmpty reports whether s has no characters.
func (s *Basic[C]) IsEmpty() bool {
	return s.size() == 1
}

// IsInline reports whether s is stored without a heap buffer.
func (s *Basic[C]) IsInline() bool {
	return s.size() <= InlineSize
}

// Address returns the null-terminated character buffer of s, which is
// exactly Length()+1 characters long. The slice aliases the storage of s
// and is invalidated by the next modification.
func (s *Basic[C]) Address() []C {
	return s.buf()
}

// Chars returns the characters of s without terminator. The slice aliases
// the storage of s and is invalidated by the next modification.
func (s *Basic[C]) Chars() []C {
	b := s.buf()
	return b[:len(b)-1]
}

// At returns the character at i. It panics if i is not in [0, Length()).
func (s *Basic[C]) At(i int) C {
	if i < 0 || i >= s.Length() {
		panic(fmt.Sprintf("%s: At(%d) on string of length %d", containers.ErrIndexOutOfBounds, i, s.Length()))
	}
	return s.buf()[i]
}

// String returns s as a Go string, decoding according to the character width.
func (s *Basic[C]) String() string {
	return decode(s.Chars())
}

// --- Copy and move ---------------------------------------------------------

// Clone returns a copy of s which shares nothing with s.
func (s *Basic[C]) Clone() (Basic[C], error) {
	c := Basic[C]{}
	if err := c.heap.Init(s.heap.Config()); err != nil {
		return Basic[C]{}, err
	}
	if err := c.AssignChars(s.Chars()); err != nil {
		return Basic[C]{}, err
	}
	return c, nil
}

// Assign replaces the content of s by a copy of other.
func (s *Basic[C]) Assign(other *Basic[C]) error {
	if other == s {
		return nil
	}
	return s.AssignChars(other.Chars())
}

// AssignChars replaces the content of s by a copy of cs. On failure s is
// unchanged.
func (s *Basic[C]) AssignChars(cs []C) error {
	cs = slices.Clone(cs)
	if err := s.reshape(len(cs) + 1); err != nil {
		return err
	}
	b := s.buf()
	copy(b, cs)
	b[len(b)-1] = 0
	return nil
}

// AssignString replaces the content of s by the encoding of str.
func (s *Basic[C]) AssignString(str string) error {
	return s.AssignChars(Chars[C](str))
}

// Move transfers the content of s to a new string value and resets s to
// the empty string.
func (s *Basic[C]) Move() Basic[C] {
	var m Basic[C]
	m.MoveFrom(s)
	return m
}

// MoveFrom replaces the content of s by the content of src, without
// copying heap buffers. src is reset to the empty string and stays usable.
func (s *Basic[C]) MoveFrom(src *Basic[C]) {
	if src == s {
		return
	}
	s.length, s.inline = src.length, src.inline
	s.heap.MoveFrom(&src.heap)
	src.length = 0
	src.inline[0] = 0
}

// Clear resets s to the empty string and drops a heap buffer.
func (s *Basic[C]) Clear() {
	err := s.reshape(1)
	assert(err == nil, "shrinking a string cannot fail")
	s.inline[0] = 0
}

// Destroy makes strings well-behaved container elements: a string is
// cleared when its container drops it.
func (s *Basic[C]) Destroy() {
	s.Clear()
}

// Check validates the storage invariants of s. It is intended for tests.
func (s *Basic[C]) Check() error {
	b := s.Address()
	if len(b) != s.Length()+1 {
		return fmt.Errorf("%w: buffer of %d chars for length %d",
			containers.ErrIllegalArguments, len(b), s.Length())
	}
	if b[len(b)-1] != 0 {
		return fmt.Errorf("%w: buffer not terminated", containers.ErrIllegalArguments)
	}
	if s.IsInline() && s.heap.Address() != nil {
		return fmt.Errorf("%w: inline string holds a heap buffer", containers.ErrIllegalArguments)
	}
	if !s.IsInline() && s.heap.Num() != s.size() {
		return fmt.Errorf("%w: heap holds %d chars for size %d",
			containers.ErrIllegalArguments, s.heap.Num(), s.size())
	}
	return nil
}
