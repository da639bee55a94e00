package cssattr

import "fmt"

// SpanErrorKind classifies span invariant violations.
type SpanErrorKind uint8

const (
	// SpanOutOfBounds indicates a range that does not lie within the input.
	SpanOutOfBounds SpanErrorKind = iota

	// SpanMalformed indicates a negative, reversed or oversized range.
	SpanMalformed
)

// String returns a human-readable error kind name
func (k SpanErrorKind) String() string {
	switch k {
	case SpanOutOfBounds:
		return "SpanOutOfBounds"
	case SpanMalformed:
		return "SpanMalformed"
	default:
		return fmt.Sprintf("UnknownSpanErrorKind(%d)", k)
	}
}

// ErrSpanOutOfBounds matches (via errors.Is) every out-of-bounds SpanError.
var ErrSpanOutOfBounds = &SpanError{Kind: SpanOutOfBounds}

// ErrSpanMalformed matches (via errors.Is) every malformed-range SpanError.
var ErrSpanMalformed = &SpanError{Kind: SpanMalformed}

// SpanError reports a broken span invariant. It is raised with panic, never
// returned: a bad span means the tokenizer that produced it is broken.
//
// Callers isolating a tokenizer can recover and test the value:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if err, ok := r.(error); ok && errors.Is(err, cssattr.ErrSpanOutOfBounds) {
//	            // report upstream corruption
//	        }
//	    }
//	}()
type SpanError struct {
	Kind  SpanErrorKind
	Start int
	End   int

	// InputLen is the length of the sliced input, or -1 when the range was
	// rejected before any input was involved.
	InputLen int
}

// Error implements the error interface
func (e *SpanError) Error() string {
	switch e.Kind {
	case SpanOutOfBounds:
		return fmt.Sprintf("cssattr: span [%d:%d) out of bounds for input of length %d",
			e.Start, e.End, e.InputLen)
	case SpanMalformed:
		return fmt.Sprintf("cssattr: malformed span [%d:%d)", e.Start, e.End)
	default:
		return "cssattr: " + e.Kind.String()
	}
}

// Is implements error comparison for errors.Is
func (e *SpanError) Is(target error) bool {
	t, ok := target.(*SpanError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "cssattr: invalid config: " + e.Field + ": " + e.Message
}
