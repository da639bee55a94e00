package cssattr

// SetConfig controls how substring sets are compiled.
//
// Example:
//
//	cfg := cssattr.DefaultSetConfig()
//	cfg.AhoCorasickThreshold = 8 // scan needles one by one up to 7 needles
//	set, err := cssattr.CompileSubstringSet("href", needles, cssattr.CaseSensitive, cfg)
type SetConfig struct {
	// AhoCorasickThreshold is the needle count from which a set builds an
	// Aho-Corasick automaton for case-sensitive evaluation. Smaller sets
	// run one anchored scan per needle.
	// Default: 4
	AhoCorasickThreshold int
}

// DefaultSetConfig returns the default substring set configuration.
func DefaultSetConfig() SetConfig {
	return SetConfig{
		AhoCorasickThreshold: 4,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - AhoCorasickThreshold: 1 to 1,024
func (c SetConfig) Validate() error {
	if c.AhoCorasickThreshold < 1 || c.AhoCorasickThreshold > 1_024 {
		return &ConfigError{
			Field:   "AhoCorasickThreshold",
			Message: "must be between 1 and 1,024",
		}
	}
	return nil
}
