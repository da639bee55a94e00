package cssattr

import (
	"errors"
	"strings"
	"testing"
)

func TestMakeRange(t *testing.T) {
	r := MakeRange(3, 8)
	if r.Start != 3 || r.End != 8 || r.Len() != 5 {
		t.Errorf("MakeRange(3, 8) = %+v, len %d", r, r.Len())
	}

	if empty := MakeRange(4, 4); empty.Len() != 0 {
		t.Errorf("empty range has length %d", empty.Len())
	}
}

func TestMakeRangeMalformed(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"negative_start", -1, 3},
		{"reversed", 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverSpanError(t, func() { MakeRange(tt.start, tt.end) })
			if !errors.Is(err, ErrSpanMalformed) {
				t.Errorf("panic value %v is not ErrSpanMalformed", err)
			}
			if errors.Is(err, ErrSpanOutOfBounds) {
				t.Error("malformed span must not match ErrSpanOutOfBounds")
			}
		})
	}
}

func TestRangeSlice(t *testing.T) {
	input := []byte(`<img alt="logo">`)

	got := MakeRange(10, 14).Slice(input)
	if string(got) != "logo" {
		t.Fatalf("Slice = %q, want logo", got)
	}
	if cap(got) != len(got) {
		t.Errorf("Slice capacity %d exceeds length %d", cap(got), len(got))
	}

	if end := MakeRange(16, 16).Slice(input); len(end) != 0 {
		t.Errorf("empty range at end of input = %q", end)
	}
}

func TestRangeSliceOutOfBounds(t *testing.T) {
	input := []byte("abc")

	for _, r := range []Range{
		MakeRange(0, 4),
		MakeRange(4, 4),
		{Start: 3, End: 1},
	} {
		err := recoverSpanError(t, func() { r.Slice(input) })
		if !errors.Is(err, ErrSpanOutOfBounds) {
			t.Errorf("%+v: panic value %v is not ErrSpanOutOfBounds", r, err)
		}
		if !strings.Contains(err.Error(), "length 3") {
			t.Errorf("error %q does not report the input length", err)
		}
	}
}

func TestSpanErrorKindString(t *testing.T) {
	if SpanOutOfBounds.String() != "SpanOutOfBounds" || SpanMalformed.String() != "SpanMalformed" {
		t.Error("unexpected kind names")
	}
	if got := SpanErrorKind(9).String(); got != "UnknownSpanErrorKind(9)" {
		t.Errorf("unknown kind = %q", got)
	}
}

func TestAttributeList(t *testing.T) {
	var attrs Attributes = AttributeList{
		{Name: MakeRange(0, 1), Value: MakeRange(2, 3)},
		{Name: MakeRange(4, 5), Value: MakeRange(6, 7)},
	}

	if attrs.Len() != 2 {
		t.Fatalf("Len = %d, want 2", attrs.Len())
	}
	if got := attrs.At(1).Value; got != MakeRange(6, 7) {
		t.Errorf("At(1).Value = %+v", got)
	}
}
