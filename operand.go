package cssattr

import "github.com/coregx/cssattr/simd"

// Operand is a compiled attribute condition: which attribute, what value,
// and how to compare case.
//
// Operands are produced once by the selector compiler and shared read-only
// across every tag the selector is tested against.
type Operand struct {
	// Name is the attribute name, already ASCII lower-cased.
	Name []byte

	// Value is the expected value, exactly as written in the selector.
	Value []byte

	// Case is the compile-time case rule.
	Case CaseRule
}

// NewOperand builds an Operand, lower-casing name.
func NewOperand(name, value string, rule CaseRule) *Operand {
	return &Operand{
		Name:  lowerASCII(name),
		Value: []byte(value),
		Case:  rule,
	}
}

// lowerASCII returns a lower-cased copy of s. Used at compile time only.
func lowerASCII(s string) []byte {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = simd.ToLowerASCII(s[i])
	}
	return b
}
