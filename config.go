package pcrenfa

// WithStats controls whether Compile builds states that track
// shortest-path depth (spec.md §4.A/§5: a process-wide flag that "must
// remain constant across one build"). It is consulted once per Compile
// call, when constructing that build's nfa.StateFactory — flip it only
// between builds, never mid-build, matching the original's lifecycle rule.
//
// Default: false — depth tracking isn't needed for plain matching, and
// skipping it keeps construction on its fast path.
var WithStats = false

// Config controls compilation behavior beyond the pattern and flags
// themselves.
//
// Example:
//
//	cfg := pcrenfa.DefaultConfig()
//	cfg.Stats = true
//	re, err := pcrenfa.CompileWithConfig(`/[0-9]+/`, cfg)
type Config struct {
	// Stats enables depth tracking on the built graph (MaxDepth, per-state
	// Depth). Default: false.
	Stats bool

	// MaxPatternLen bounds the length of the pattern substring accepted by
	// Compile, independent of the external byte-code compiler's own limits.
	// Default: 4096.
	MaxPatternLen int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Stats:         WithStats,
		MaxPatternLen: 4096,
	}
}

// Validate checks that c's fields are within supported ranges.
func (c Config) Validate() error {
	if c.MaxPatternLen < 1 || c.MaxPatternLen > 1_000_000 {
		return &ConfigError{Field: "MaxPatternLen", Message: "must be between 1 and 1,000,000"}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "pcrenfa: invalid config: " + e.Field + ": " + e.Message
}
