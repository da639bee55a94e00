package cssattr

import (
	"iter"

	"github.com/coregx/cssattr/simd"
)

// Separators is a byte class used to split an attribute value into tokens.
// It is the split strategy handed to MatchesSplittedBy.
type Separators struct {
	table [256]bool
}

// NewSeparators returns the class containing exactly bs.
func NewSeparators(bs ...byte) *Separators {
	s := &Separators{}
	for _, b := range bs {
		s.table[b] = true
	}
	return s
}

// Whitespace splits on HTML attribute whitespace: space, tab, LF, CR and FF.
// This is the class for `~=` and for class lists.
var Whitespace = NewSeparators(' ', '\t', '\n', '\r', '\f')

// Comma splits on ',' only, for comma-separated token lists.
var Comma = NewSeparators(',')

// IsAttrWhitespace reports whether b is HTML attribute whitespace.
func IsAttrWhitespace(b byte) bool {
	return Whitespace.table[b]
}

// Contains reports whether b is in the class.
func (s *Separators) Contains(b byte) bool {
	return s.table[b]
}

// Tokens yields the non-empty runs of value between separator bytes, in
// order, as sub-slices of value. Leading, trailing and repeated separators
// produce no tokens.
func (s *Separators) Tokens(value []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		rest := value
		for len(rest) > 0 {
			end := simd.MemchrInTable(rest, &s.table)
			if end < 0 {
				yield(rest)
				return
			}
			if end > 0 && !yield(rest[:end]) {
				return
			}
			rest = rest[end+1:]
		}
	}
}

// anyTokenEqual reports whether some token of value equals want under cs.
func (s *Separators) anyTokenEqual(value, want []byte, cs CaseSensitivity) bool {
	rest := value
	for len(rest) > 0 {
		end := simd.MemchrInTable(rest, &s.table)
		if end < 0 {
			return cs.Equal(rest, want)
		}
		if end > 0 && cs.Equal(rest[:end], want) {
			return true
		}
		rest = rest[end+1:]
	}
	return false
}
