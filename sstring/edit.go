package sstring

import (
	"fmt"
	"slices"

	"github.com/npillmayer/containers"
)

// Append appends a copy of other to s.
func (s *Basic[C]) Append(other *Basic[C]) error {
	return s.AppendChars(other.Chars())
}

// AppendChar appends a single character to s.
func (s *Basic[C]) AppendChar(c C) error {
	return s.AppendChars([]C{c})
}

// AppendString appends the encoding of str to s.
func (s *Basic[C]) AppendString(str string) error {
	return s.AppendChars(Chars[C](str))
}

// AppendChars appends a copy of cs to s. cs may alias s. On failure s is
// unchanged.
func (s *Basic[C]) AppendChars(cs []C) error {
	if len(cs) == 0 {
		return nil
	}
	cs = slices.Clone(cs)
	old := s.size()
	if err := s.reshape(old + len(cs)); err != nil {
		return err
	}
	b := s.buf()
	copy(b[old-1:], cs)
	b[len(b)-1] = 0
	return nil
}

// Insert inserts c at position pos, shifting the characters at
// [pos, Length()) to the right. pos == Length() appends.
func (s *Basic[C]) Insert(pos int, c C) error {
	return s.InsertChars(pos, []C{c})
}

// InsertChars inserts a copy of cs at position pos.
func (s *Basic[C]) InsertChars(pos int, cs []C) error {
	if pos < 0 || pos > s.Length() {
		return fmt.Errorf("%w: insert at %d into string of length %d",
			containers.ErrIndexOutOfBounds, pos, s.Length())
	}
	if len(cs) == 0 {
		return nil
	}
	cs = slices.Clone(cs)
	old := s.size()
	if err := s.reshape(old + len(cs)); err != nil {
		return err
	}
	b := s.buf()
	copy(b[pos+len(cs):], b[pos:old]) // includes the terminator
	copy(b[pos:], cs)
	return nil
}

// Remove deletes count characters starting at pos. A count reaching past
// the end is clipped. Removing characters never fails for valid positions.
func (s *Basic[C]) Remove(pos, count int) error {
	if pos < 0 || pos >= s.Length() || count < 0 {
		return fmt.Errorf("%w: remove %d at %d from string of length %d",
			containers.ErrIndexOutOfBounds, count, pos, s.Length())
	}
	count = min(count, s.Length()-pos)
	if count == 0 {
		return nil
	}
	old := s.size()
	b := s.buf()
	copy(b[pos:], b[pos+count:old]) // includes the terminator
	err := s.reshape(old - count)
	assert(err == nil, "shrinking a string cannot fail")
	return nil
}
