package main

import (
	"fmt"
	"strings"

	"github.com/coregx/cssattr"
)

type conditionKind uint8

const (
	condHas conditionKind = iota
	condID
	condClass
	condEq
	condIncludes
	condDash
	condPrefix
	condSuffix
	condSubstring
)

var operators = map[string]conditionKind{
	"=":  condEq,
	"~=": condIncludes,
	"|=": condDash,
	"^=": condPrefix,
	"$=": condSuffix,
	"*=": condSubstring,
}

// htmlCaseInsensitive lists the attributes whose values HTML matches
// ASCII case-insensitively on HTML elements.
var htmlCaseInsensitive = map[string]bool{
	"accept": true, "accept-charset": true, "align": true, "alink": true,
	"axis": true, "bgcolor": true, "charset": true, "checked": true,
	"clear": true, "codetype": true, "color": true, "compact": true,
	"declare": true, "defer": true, "dir": true, "direction": true,
	"disabled": true, "enctype": true, "face": true, "frame": true,
	"hreflang": true, "http-equiv": true, "lang": true, "language": true,
	"link": true, "media": true, "method": true, "multiple": true,
	"nohref": true, "noresize": true, "noshade": true, "nowrap": true,
	"readonly": true, "rel": true, "rev": true, "rules": true,
	"scope": true, "scrolling": true, "selected": true, "shape": true,
	"target": true, "text": true, "type": true, "valign": true,
	"valuetype": true, "vlink": true,
}

// condition is one parsed attribute condition.
type condition struct {
	kind    conditionKind
	operand *cssattr.Operand
}

// parseCondition parses `#id`, `.class`, `[name]` or `[name OP value flag]`.
func parseCondition(s string) (condition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return condition{}, fmt.Errorf("empty condition")
	}

	switch s[0] {
	case '#':
		if len(s) == 1 {
			return condition{}, fmt.Errorf("%q: missing id", s)
		}
		return condition{kind: condID, operand: cssattr.NewOperand("id", s[1:], cssattr.CaseSensitive)}, nil
	case '.':
		if len(s) == 1 {
			return condition{}, fmt.Errorf("%q: missing class name", s)
		}
		return condition{kind: condClass, operand: cssattr.NewOperand("class", s[1:], cssattr.CaseSensitive)}, nil
	case '[':
		if s[len(s)-1] != ']' {
			return condition{}, fmt.Errorf("%q: missing closing ']'", s)
		}
		return parseAttrCondition(s, s[1:len(s)-1])
	default:
		return condition{}, fmt.Errorf("%q: expected '#', '.' or '['", s)
	}
}

func parseAttrCondition(src, body string) (condition, error) {
	p := strings.TrimSpace(body)

	nameEnd := strings.IndexAny(p, "=~|^$* \t")
	if nameEnd < 0 {
		nameEnd = len(p)
	}
	name := p[:nameEnd]
	if name == "" {
		return condition{}, fmt.Errorf("%q: missing attribute name", src)
	}
	p = strings.TrimSpace(p[nameEnd:])

	if p == "" {
		return condition{kind: condHas, operand: cssattr.NewOperand(name, "", cssattr.CaseSensitive)}, nil
	}

	opLen := 2
	if p[0] == '=' {
		opLen = 1
	}
	if len(p) < opLen {
		return condition{}, fmt.Errorf("%q: bad operator", src)
	}
	kind, ok := operators[p[:opLen]]
	if !ok {
		return condition{}, fmt.Errorf("%q: unknown operator %q", src, p[:opLen])
	}
	p = strings.TrimSpace(p[opLen:])

	value, rest, err := parseValue(p)
	if err != nil {
		return condition{}, fmt.Errorf("%q: %w", src, err)
	}

	rule := defaultRule(name)
	switch strings.TrimSpace(rest) {
	case "":
	case "i", "I":
		rule = cssattr.ASCIICaseInsensitive
	case "s", "S":
		rule = cssattr.CaseSensitive
	default:
		return condition{}, fmt.Errorf("%q: unexpected %q after value", src, strings.TrimSpace(rest))
	}

	return condition{kind: kind, operand: cssattr.NewOperand(name, value, rule)}, nil
}

// parseValue splits a quoted or bare value from what follows it.
func parseValue(p string) (value, rest string, err error) {
	if p == "" {
		return "", "", fmt.Errorf("missing value")
	}

	if q := p[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(p[1:], q)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated string")
		}
		return p[1 : end+1], p[end+2:], nil
	}

	end := strings.IndexAny(p, " \t")
	if end < 0 {
		return p, "", nil
	}
	return p[:end], p[end:], nil
}

// defaultRule returns the case rule HTML applies when no flag is given.
func defaultRule(name string) cssattr.CaseRule {
	if htmlCaseInsensitive[strings.ToLower(name)] {
		return cssattr.ASCIICaseInsensitiveUnlessForeign
	}
	return cssattr.CaseSensitive
}

// eval runs the condition against one tag.
func (c condition) eval(m *cssattr.Matcher) bool {
	switch c.kind {
	case condHas:
		return m.HasAttribute(c.operand.Name)
	case condID:
		return m.IDMatches(c.operand.Value)
	case condClass:
		return m.HasClass(c.operand.Value)
	case condEq:
		return m.AttrEq(c.operand)
	case condIncludes:
		return m.MatchesSplittedBy(c.operand, cssattr.Whitespace)
	case condDash:
		return m.DashMatches(c.operand)
	case condPrefix:
		return m.HasAttrWithPrefix(c.operand)
	case condSuffix:
		return m.HasAttrWithSuffix(c.operand)
	case condSubstring:
		return m.HasAttrWithSubstring(c.operand)
	default:
		return false
	}
}

func (k conditionKind) String() string {
	switch k {
	case condHas:
		return "has"
	case condID:
		return "id"
	case condClass:
		return "class"
	case condEq:
		return "="
	case condIncludes:
		return "~="
	case condDash:
		return "|="
	case condPrefix:
		return "^="
	case condSuffix:
		return "$="
	case condSubstring:
		return "*="
	default:
		return fmt.Sprintf("conditionKind(%d)", k)
	}
}
