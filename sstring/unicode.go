package sstring

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

func graphemes(s *String) grapheme.String {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(s.String())
}

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters) of a UTF-8 string.
func GraphemeCount(s *String) int {
	if s.IsEmpty() {
		return 0
	}
	return graphemes(s).Len()
}

// DisplayWidth returns the width of a UTF-8 string on a fixed-width
// output device, measured in en. A nil context selects uax11.LatinContext.
func DisplayWidth(s *String, context *uax11.Context) int {
	if s.IsEmpty() {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(graphemes(s), context)
}

// TruncateWidth shortens a UTF-8 string from the end, a code point at a
// time, until its display width is at most width. It returns the number of
// bytes removed.
func TruncateWidth(s *String, width int, context *uax11.Context) int {
	removed := 0
	for !s.IsEmpty() && DisplayWidth(s, context) > width {
		_, n := utf8.DecodeLastRune(s.Chars())
		err := s.Remove(s.Length()-n, n)
		assert(err == nil, "TruncateWidth: invalid rune position")
		removed += n
	}
	return removed
}
