package cssattr

import "math"

// Range is a half-open byte range [Start, End) into an input buffer.
//
// Offsets are stored as uint32 to keep an AttributeSpan at 16 bytes.
type Range struct {
	Start uint32
	End   uint32
}

// MakeRange returns the range [start, end).
// Panics with a *SpanError matching ErrSpanMalformed if start < 0,
// end < start, or end does not fit in a uint32.
func MakeRange(start, end int) Range {
	// Compare as uint so 32-bit platforms don't overflow on MaxUint32
	if start < 0 || end < start || uint(end) > math.MaxUint32 {
		panic(&SpanError{Kind: SpanMalformed, Start: start, End: end, InputLen: -1})
	}
	return Range{Start: uint32(start), End: uint32(end)}
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// Slice returns the bytes of input covered by the range, without copying.
// The result has its capacity clipped so appending to it cannot overwrite
// the input.
//
// Panics with a *SpanError matching ErrSpanOutOfBounds if the range does not
// lie within input.
func (r Range) Slice(input []byte) []byte {
	r.mustFit(len(input))
	return input[r.Start:r.End:r.End]
}

// mustFit panics with an out-of-bounds *SpanError unless the range lies
// within an input of length n.
func (r Range) mustFit(n int) {
	if r.Start > r.End || uint64(r.End) > uint64(n) {
		panic(&SpanError{
			Kind:     SpanOutOfBounds,
			Start:    int(r.Start),
			End:      int(r.End),
			InputLen: n,
		})
	}
}

// AttributeSpan locates one attribute's name and value in the input buffer.
// Both are raw: original case, no entity decoding, quotes excluded.
type AttributeSpan struct {
	Name  Range
	Value Range
}

// Attributes is a tag's attribute table in document order.
//
// Implementations must not change while a Matcher holds them. Duplicate
// names are allowed; lookups use the first one.
type Attributes interface {
	// Len returns the number of attributes.
	Len() int

	// At returns the i-th attribute, 0 <= i < Len().
	At(i int) AttributeSpan
}

// AttributeList is the slice-backed Attributes implementation.
type AttributeList []AttributeSpan

// Len implements Attributes.
func (l AttributeList) Len() int { return len(l) }

// At implements Attributes.
func (l AttributeList) At(i int) AttributeSpan { return l[i] }
