package sstring

import (
	"fmt"
)

// Print replaces the content of s by the formatted output of fmt.Sprintf.
// It returns the number of characters written, or -1 if the string could
// not hold the output; s is unchanged in that case. Formatting is
// locale-independent.
func (s *Basic[C]) Print(format string, args ...any) int {
	cs := Chars[C](fmt.Sprintf(format, args...))
	if err := s.AssignChars(cs); err != nil {
		tracer().Errorf("sstring: print of %d chars failed: %v", len(cs), err)
		return -1
	}
	return len(cs)
}

// Scan parses the content of s according to format, like fmt.Sscanf.
// It returns the number of successfully scanned arguments.
func (s *Basic[C]) Scan(format string, args ...any) (int, error) {
	return fmt.Sscanf(s.String(), format, args...)
}
