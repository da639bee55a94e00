package cssattr

import (
	"bytes"
	"fmt"

	"github.com/coregx/cssattr/simd"
)

// CaseRule is an operand's compile-time case rule. Some rules can only be
// resolved once the element's namespace is known.
type CaseRule uint8

const (
	// CaseSensitive compares values byte for byte (the `s` flag, or
	// attributes HTML defines as case-sensitive).
	CaseSensitive CaseRule = iota

	// ASCIICaseInsensitive folds ASCII letters everywhere (the `i` flag).
	ASCIICaseInsensitive

	// ASCIICaseInsensitiveUnlessForeign folds ASCII letters on HTML
	// elements and compares exactly on foreign elements (SVG, MathML).
	// HTML uses this for attributes such as `type` or `lang`.
	ASCIICaseInsensitiveUnlessForeign
)

// String returns the rule name.
func (r CaseRule) String() string {
	switch r {
	case CaseSensitive:
		return "CaseSensitive"
	case ASCIICaseInsensitive:
		return "ASCIICaseInsensitive"
	case ASCIICaseInsensitiveUnlessForeign:
		return "ASCIICaseInsensitiveUnlessForeign"
	default:
		return fmt.Sprintf("CaseRule(%d)", r)
	}
}

// Resolve turns the rule into the sensitivity to use for an element.
// isHTML reports whether the element is in the HTML namespace.
func (r CaseRule) Resolve(isHTML bool) CaseSensitivity {
	switch r {
	case ASCIICaseInsensitive:
		return Insensitive
	case ASCIICaseInsensitiveUnlessForeign:
		if isHTML {
			return Insensitive
		}
		return Sensitive
	default:
		return Sensitive
	}
}

// CaseSensitivity is a resolved case rule.
type CaseSensitivity uint8

const (
	// Sensitive compares bytes exactly.
	Sensitive CaseSensitivity = iota

	// Insensitive compares bytes under ASCII case folding.
	Insensitive
)

// String returns the sensitivity name.
func (cs CaseSensitivity) String() string {
	if cs == Insensitive {
		return "Insensitive"
	}
	return "Sensitive"
}

// Equal reports whether a and b are equal under cs.
func (cs CaseSensitivity) Equal(a, b []byte) bool {
	if cs == Insensitive {
		return simd.EqualFoldASCII(a, b)
	}
	return bytes.Equal(a, b)
}

// HasPrefix reports whether s begins with prefix under cs.
func (cs CaseSensitivity) HasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && cs.Equal(s[:len(prefix)], prefix)
}

// HasSuffix reports whether s ends with suffix under cs.
func (cs CaseSensitivity) HasSuffix(s, suffix []byte) bool {
	return len(s) >= len(suffix) && cs.Equal(s[len(s)-len(suffix):], suffix)
}
