package cssattr

import (
	"fmt"

	"github.com/coregx/cssattr/simd"
)

// comparison selects the operator-specific half of a value predicate. The
// lookup half (resolve the attribute, bail out when absent) is shared by
// valueMatches.
type comparison uint8

const (
	compareEqual     comparison = iota // [attr=v]
	compareTokens                      // [attr~=v] and other token lists
	compareDash                        // [attr|=v]
	comparePrefix                      // [attr^=v]
	compareSuffix                      // [attr$=v]
	compareSubstring                   // [attr*=v]
	compareAnyOf                       // several [attr*=v] at once
)

func (c comparison) String() string {
	switch c {
	case compareEqual:
		return "="
	case compareTokens:
		return "~="
	case compareDash:
		return "|="
	case comparePrefix:
		return "^="
	case compareSuffix:
		return "$="
	case compareSubstring:
		return "*="
	case compareAnyOf:
		return "*=(set)"
	default:
		return fmt.Sprintf("comparison(%d)", c)
	}
}

// valueTest is one resolved comparison: the operator, the expected bytes
// and the case sensitivity for this element. sep is set for compareTokens
// and set for compareAnyOf.
type valueTest struct {
	kind comparison
	want []byte
	cs   CaseSensitivity
	sep  *Separators
	set  *SubstringSet
}

// match applies the test to an attribute value.
func (t *valueTest) match(value []byte) bool {
	switch t.kind {
	case compareEqual:
		return t.cs.Equal(value, t.want)
	case compareTokens:
		return t.sep.anyTokenEqual(value, t.want, t.cs)
	case compareDash:
		return dashMatch(value, t.want, t.cs)
	case comparePrefix:
		return t.cs.HasPrefix(value, t.want)
	case compareSuffix:
		return t.cs.HasSuffix(value, t.want)
	case compareSubstring:
		return containsAnchored(value, t.want, t.cs)
	case compareAnyOf:
		return t.set.containedIn(value, t.cs)
	default:
		panic("cssattr: unknown comparison " + t.kind.String())
	}
}

// dashMatch reports whether value is want, or want followed by '-'.
func dashMatch(value, want []byte, cs CaseSensitivity) bool {
	n := len(want)
	switch {
	case len(value) == n:
		return cs.Equal(value, want)
	case len(value) > n:
		return value[n] == '-' && cs.Equal(value[:n], want)
	default:
		return false
	}
}

// containsAnchored reports whether needle occurs in haystack under cs.
// An empty needle is never contained.
//
// The search anchors on the needle's rarest byte and verifies the whole
// needle around each hit, so it never reads past the haystack.
func containsAnchored(haystack, needle []byte, cs CaseSensitivity) bool {
	if len(needle) == 0 {
		return false
	}
	if cs == Insensitive {
		return simd.MemmemFold(haystack, needle) >= 0
	}
	return simd.Memmem(haystack, needle) >= 0
}
