// Package cssattr evaluates single-attribute CSS selector conditions against
// a tag that is still sitting in a streaming parser's input buffer.
//
// A tokenizer hands over the raw input bytes and the tag's attributes as
// byte ranges into that input. A selector compiler hands over compiled
// operands: a lower-cased attribute name, the expected value and a case
// rule. A Matcher binds the two for one tag and answers the predicates a
// selector VM needs:
//
//	[attr]       HasAttribute
//	#id          IDMatches
//	.class       HasClass
//	[attr=v]     AttrEq
//	[attr~=v]    MatchesSplittedBy with Whitespace
//	[attr|=v]    DashMatches
//	[attr^=v]    HasAttrWithPrefix
//	[attr$=v]    HasAttrWithSuffix
//	[attr*=v]    HasAttrWithSubstring, HasAttrWithAnySubstring
//
// Attribute text is never copied: values are sub-slices of the input.
// Attribute names compare with ASCII case folding, and the first attribute
// with a given name wins, as in HTML.
//
// Basic usage:
//
//	input := []byte(`<div id="main" class="nav open">`)
//	attrs := cssattr.AttributeList{
//	    {Name: cssattr.MakeRange(5, 7), Value: cssattr.MakeRange(9, 13)},
//	    {Name: cssattr.MakeRange(15, 20), Value: cssattr.MakeRange(22, 30)},
//	}
//
//	m := cssattr.NewMatcher(input, attrs, true)
//	m.IDMatches([]byte("main")) // true
//	m.HasClass([]byte("open"))  // true
//
// A Matcher is meant for one tag and one goroutine. Operands and substring
// sets are immutable and may be shared by any number of matchers.
//
// Ranges that fall outside the input are an upstream bug; slicing them
// panics with a *SpanError matching ErrSpanOutOfBounds.
package cssattr
