package cssattr

import (
	"fmt"

	"github.com/coregx/ahocorasick"
)

// SubstringSet batches several [attr*=v] conditions on the same attribute
// and case rule, e.g. `a[href*="tracker"], a[href*="utm_"], ...`.
//
// Sets are immutable after compilation and safe for concurrent use.
type SubstringSet struct {
	name    []byte
	needles [][]byte
	rule    CaseRule

	// automaton covers needles for case-sensitive evaluation; nil when the
	// set is below the configured threshold or always folds case.
	automaton *ahocorasick.Automaton
}

// CompileSubstringSet compiles the needles for attribute name.
//
// Empty needles are dropped: an empty needle never matches [attr*=v], so a
// set of only empty needles matches nothing. Duplicate needles are kept once.
func CompileSubstringSet(name string, needles []string, rule CaseRule, cfg SetConfig) (*SubstringSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	set := &SubstringSet{
		name: lowerASCII(name),
		rule: rule,
	}
	seen := make(map[string]struct{}, len(needles))
	for _, n := range needles {
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		set.needles = append(set.needles, []byte(n))
	}

	if rule == ASCIICaseInsensitive || len(set.needles) < cfg.AhoCorasickThreshold {
		return set, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, n := range set.needles {
		builder.AddPattern(n)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("cssattr: build substring set for %q: %w", name, err)
	}
	set.automaton = automaton

	return set, nil
}

// MustCompileSubstringSet is like CompileSubstringSet with DefaultSetConfig
// but panics on error. Intended for package-level selector tables.
func MustCompileSubstringSet(name string, needles []string, rule CaseRule) *SubstringSet {
	set, err := CompileSubstringSet(name, needles, rule, DefaultSetConfig())
	if err != nil {
		panic(err)
	}
	return set
}

// Name returns the lower-cased attribute name the set tests.
func (s *SubstringSet) Name() string {
	return string(s.name)
}

// Len returns the number of non-empty needles.
func (s *SubstringSet) Len() int {
	return len(s.needles)
}

// UsesAutomaton reports whether case-sensitive evaluation runs through an
// Aho-Corasick automaton.
func (s *SubstringSet) UsesAutomaton() bool {
	return s.automaton != nil
}

// containedIn reports whether any needle occurs in value under cs.
func (s *SubstringSet) containedIn(value []byte, cs CaseSensitivity) bool {
	if cs == Sensitive && s.automaton != nil {
		return s.automaton.IsMatch(value)
	}
	for _, needle := range s.needles {
		if containsAnchored(value, needle, cs) {
			return true
		}
	}
	return false
}
