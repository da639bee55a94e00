package cssattr

import (
	"bytes"

	"github.com/coregx/cssattr/simd"
)

var (
	idAttr    = []byte("id")
	classAttr = []byte("class")
)

// memoizedValue caches one attribute lookup for the lifetime of a Matcher.
type memoizedValue struct {
	resolved bool
	found    bool
	value    []byte
}

// get returns the cached lookup of name, resolving it on first use.
func (v *memoizedValue) get(m *Matcher, name []byte) ([]byte, bool) {
	if !v.resolved {
		v.value, v.found = m.getValue(name)
		v.resolved = true
	}
	return v.value, v.found
}

// Matcher evaluates attribute predicates for one tag.
//
// Create one with NewMatcher immediately before testing a tag and drop it
// afterwards. A Matcher caches the tag's id and class values, so it must
// not be reused for another tag, and it is not safe for concurrent use.
//
// Every predicate returns false when the attribute is absent.
type Matcher struct {
	input  []byte
	attrs  Attributes
	isHTML bool

	id    memoizedValue
	class memoizedValue
}

// NewMatcher binds input and attrs for one tag. isHTML reports whether the
// element is in the HTML namespace; it selects the comparison for operands
// with the ASCIICaseInsensitiveUnlessForeign rule.
//
// input and attrs are borrowed and must not change while the Matcher is in use.
func NewMatcher(input []byte, attrs Attributes, isHTML bool) *Matcher {
	if attrs == nil {
		attrs = AttributeList(nil)
	}
	return &Matcher{
		input:  input,
		attrs:  attrs,
		isHTML: isHTML,
	}
}

// find returns the first attribute whose name, ASCII-folded, equals
// lowerName. Every name span visited is bounds-checked; only names of equal
// length are compared.
func (m *Matcher) find(lowerName []byte) (AttributeSpan, bool) {
	n := m.attrs.Len()
	for i := 0; i < n; i++ {
		attr := m.attrs.At(i)
		attr.Name.mustFit(len(m.input))
		if attr.Name.Len() != len(lowerName) {
			continue
		}
		if simd.EqualLowerASCII(attr.Name.Slice(m.input), lowerName) {
			return attr, true
		}
	}
	return AttributeSpan{}, false
}

// getValue returns the value of the first attribute named lowerName.
func (m *Matcher) getValue(lowerName []byte) ([]byte, bool) {
	attr, ok := m.find(lowerName)
	if !ok {
		return nil, false
	}
	return attr.Value.Slice(m.input), true
}

// caseOf resolves an operand's case rule for this element.
func (m *Matcher) caseOf(op *Operand) CaseSensitivity {
	return op.Case.Resolve(m.isHTML)
}

// valueMatches resolves name and applies t to its value.
func (m *Matcher) valueMatches(name []byte, t valueTest) bool {
	value, ok := m.getValue(name)
	if !ok {
		return false
	}
	return t.match(value)
}

// HasAttribute implements [attr]. lowerName must be lower case.
func (m *Matcher) HasAttribute(lowerName []byte) bool {
	_, ok := m.find(lowerName)
	return ok
}

// IDMatches implements #id. The id attribute is compared byte for byte,
// with no case folding in any namespace.
func (m *Matcher) IDMatches(id []byte) bool {
	value, ok := m.id.get(m, idAttr)
	return ok && bytes.Equal(value, id)
}

// HasClass implements .class: some whitespace-separated token of the class
// attribute equals className byte for byte.
func (m *Matcher) HasClass(className []byte) bool {
	value, ok := m.class.get(m, classAttr)
	return ok && Whitespace.anyTokenEqual(value, className, Sensitive)
}

// AttrEq implements [attr=v].
func (m *Matcher) AttrEq(op *Operand) bool {
	return m.valueMatches(op.Name, valueTest{kind: compareEqual, want: op.Value, cs: m.caseOf(op)})
}

// MatchesSplittedBy implements token-list operators: the value is split on
// sep and some token must equal the operand value. With Whitespace this is
// [attr~=v].
func (m *Matcher) MatchesSplittedBy(op *Operand, sep *Separators) bool {
	return m.valueMatches(op.Name, valueTest{kind: compareTokens, want: op.Value, cs: m.caseOf(op), sep: sep})
}

// DashMatches implements [attr|=v]: the value is v, or starts with v
// immediately followed by '-'.
func (m *Matcher) DashMatches(op *Operand) bool {
	return m.valueMatches(op.Name, valueTest{kind: compareDash, want: op.Value, cs: m.caseOf(op)})
}

// HasAttrWithPrefix implements [attr^=v]. An empty v matches any present
// attribute.
func (m *Matcher) HasAttrWithPrefix(op *Operand) bool {
	return m.valueMatches(op.Name, valueTest{kind: comparePrefix, want: op.Value, cs: m.caseOf(op)})
}

// HasAttrWithSuffix implements [attr$=v]. An empty v matches any present
// attribute.
func (m *Matcher) HasAttrWithSuffix(op *Operand) bool {
	return m.valueMatches(op.Name, valueTest{kind: compareSuffix, want: op.Value, cs: m.caseOf(op)})
}

// HasAttrWithSubstring implements [attr*=v]. Unlike prefix and suffix
// matching, an empty v never matches.
func (m *Matcher) HasAttrWithSubstring(op *Operand) bool {
	return m.valueMatches(op.Name, valueTest{kind: compareSubstring, want: op.Value, cs: m.caseOf(op)})
}

// HasAttrWithAnySubstring reports whether the set's attribute contains any
// of the set's needles. It equals OR-ing HasAttrWithSubstring over the
// needles, evaluated with a single lookup.
func (m *Matcher) HasAttrWithAnySubstring(set *SubstringSet) bool {
	return m.valueMatches(set.name, valueTest{kind: compareAnyOf, cs: set.rule.Resolve(m.isHTML), set: set})
}
