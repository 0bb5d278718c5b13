package sstring

import (
	"fmt"
	"slices"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/array"
)

// Find returns the position of the first occurrence of sub at or after
// position from, or -1.
func (s *Basic[C]) Find(sub []C, from int) int {
	cs := s.Chars()
	if from < 0 || from > len(cs) {
		return -1
	}
	if len(sub) == 0 {
		return from
	}
	for i := from; i+len(sub) <= len(cs); i++ {
		if cs[i] == sub[0] && slices.Equal(cs[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// FindChar returns the position of the first occurrence of c at or after
// position from, or -1.
func (s *Basic[C]) FindChar(c C, from int) int {
	return s.Find([]C{c}, from)
}

// Compare compares s and other with C string semantics: character by
// character, stopping at the first mismatch or terminator. The result is
// -1, 0 or +1.
func (s *Basic[C]) Compare(other *Basic[C]) int {
	a, b := s.Address(), other.Address()
	for i := 0; ; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		case a[i] == 0:
			return 0
		}
	}
}

// Equal reports whether s and other hold the same characters. Unlike
// Compare it does not stop at embedded zero characters.
func (s *Basic[C]) Equal(other *Basic[C]) bool {
	return slices.Equal(s.Chars(), other.Chars())
}

// StartsWith reports whether s begins with prefix.
func (s *Basic[C]) StartsWith(prefix []C) bool {
	cs := s.Chars()
	return len(prefix) <= len(cs) && slices.Equal(cs[:len(prefix)], prefix)
}

// EndsWith reports whether s ends with suffix.
func (s *Basic[C]) EndsWith(suffix []C) bool {
	cs := s.Chars()
	return len(suffix) <= len(cs) && slices.Equal(cs[len(cs)-len(suffix):], suffix)
}

// SubStr returns a new string holding n characters of s, starting at pos.
// A negative n or one reaching past the end selects the rest of s.
func (s *Basic[C]) SubStr(pos, n int) (*Basic[C], error) {
	if pos < 0 || pos > s.Length() {
		return nil, fmt.Errorf("%w: substring at %d of string of length %d",
			containers.ErrIndexOutOfBounds, pos, s.Length())
	}
	if n < 0 || pos+n > s.Length() {
		n = s.Length() - pos
	}
	return New(s.Chars()[pos:pos+n], s.heap.Config().Allocator)
}

// Split cuts s into the substrings separated by delim. The result holds
// at least one string; if s ends with delim, the last one is empty.
func (s *Basic[C]) Split(delim []C) (*array.Array[Basic[C]], error) {
	if len(delim) == 0 {
		return nil, fmt.Errorf("%w: empty delimiter", containers.ErrIllegalArguments)
	}
	parts, err := array.New(array.Config[Basic[C]]{Allocator: s.heap.Config().Allocator})
	if err != nil {
		return nil, err
	}
	start := 0
	for {
		end := s.Find(delim, start)
		if end < 0 {
			end = s.Length()
		}
		part, err := s.SubStr(start, end-start)
		if err != nil {
			parts.Clear()
			return nil, err
		}
		if err = parts.Add(part.Move()); err != nil {
			parts.Clear()
			return nil, err
		}
		if end == s.Length() {
			return parts, nil
		}
		start = end + len(delim)
	}
}

// SplitChar cuts s into the substrings separated by c.
func (s *Basic[C]) SplitChar(c C) (*array.Array[Basic[C]], error) {
	return s.Split([]C{c})
}

// Join concatenates parts, separated by delim.
func Join[C Char](parts *array.Array[Basic[C]], delim []C) (*Basic[C], error) {
	s := Empty[C](parts.Config().Allocator)
	for i := 0; i < parts.Num(); i++ {
		if i > 0 {
			if err := s.AppendChars(delim); err != nil {
				return nil, err
			}
		}
		if err := s.Append(parts.At(i)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Replace replaces occurrences of src by dst, searching from position
// first. At most count occurrences are replaced; count == 0 replaces all.
// Each replacement rebuilds s as prefix + dst + suffix, and searching
// resumes behind the inserted dst. Replace returns the number of
// replacements; on failure the replacements done so far remain.
func (s *Basic[C]) Replace(src, dst []C, first, count int) (int, error) {
	if len(src) == 0 || count < 0 {
		return 0, fmt.Errorf("%w: replace %d occurrences of empty or invalid pattern",
			containers.ErrIllegalArguments, count)
	}
	if first < 0 || first > s.Length() {
		return 0, fmt.Errorf("%w: replace from %d in string of length %d",
			containers.ErrIndexOutOfBounds, first, s.Length())
	}
	n := 0
	for pos := s.Find(src, first); pos >= 0 && (count == 0 || n < count); pos = s.Find(src, pos+len(dst)) {
		cs := s.Chars()
		rebuilt := make([]C, 0, len(cs)-len(src)+len(dst))
		rebuilt = append(rebuilt, cs[:pos]...)
		rebuilt = append(rebuilt, dst...)
		rebuilt = append(rebuilt, cs[pos+len(src):]...)
		if err := s.AssignChars(rebuilt); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
