package cssattr

import (
	"slices"
	"testing"
)

func TestIsAttrWhitespace(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		want := b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
		if got := IsAttrWhitespace(b); got != want {
			t.Errorf("IsAttrWhitespace(%#x) = %v, want %v", b, got, want)
		}
	}
}

func TestSeparatorsTokens(t *testing.T) {
	tests := []struct {
		name  string
		sep   *Separators
		value string
		want  []string
	}{
		{"empty", Whitespace, "", nil},
		{"only_separators", Whitespace, " \t\n", nil},
		{"single", Whitespace, "a", []string{"a"}},
		{"doubled", Whitespace, "a b  c", []string{"a", "b", "c"}},
		{"leading_trailing", Whitespace, "  a b ", []string{"a", "b"}},
		{"mixed_whitespace", Whitespace, "a\tb\nc\rd\fe", []string{"a", "b", "c", "d", "e"}},
		{"nbsp_is_not_whitespace", Whitespace, "a\xa0b", []string{"a\xa0b"}},
		{"comma", Comma, "a,b,,c", []string{"a", "b", "c"}},
		{"comma_keeps_spaces", Comma, "a, b", []string{"a", " b"}},
		{"custom", NewSeparators(';', '|'), "x;y|z", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for tok := range tt.sep.Tokens([]byte(tt.value)) {
				got = append(got, string(tok))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokens(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSeparatorsTokensEarlyStop(t *testing.T) {
	var seen int
	for range Whitespace.Tokens([]byte("a b c d")) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("iteration continued after break: %d tokens", seen)
	}
}

func TestAnyTokenEqualMatchesTokens(t *testing.T) {
	values := []string{"", "a", " a", "a ", "a  b", "ab b", "\fb\f"}
	wants := []string{"", "a", "b", "ab", "A"}

	for _, v := range values {
		for _, w := range wants {
			for _, cs := range []CaseSensitivity{Sensitive, Insensitive} {
				want := false
				for tok := range Whitespace.Tokens([]byte(v)) {
					if cs.Equal(tok, []byte(w)) {
						want = true
					}
				}
				if got := Whitespace.anyTokenEqual([]byte(v), []byte(w), cs); got != want {
					t.Errorf("anyTokenEqual(%q, %q, %v) = %v, want %v", v, w, cs, got, want)
				}
			}
		}
	}
}

func TestSeparatorsContains(t *testing.T) {
	if !Comma.Contains(',') || Comma.Contains(' ') {
		t.Error("Comma class is wrong")
	}
	if NewSeparators().Contains(0) {
		t.Error("empty class contains a byte")
	}
}
