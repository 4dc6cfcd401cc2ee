package pcrenfa

import "testing"

func TestDefaultConfig_ReflectsWithStats(t *testing.T) {
	old := WithStats
	defer func() { WithStats = old }()

	WithStats = true
	if !DefaultConfig().Stats {
		t.Errorf("expected DefaultConfig().Stats to mirror WithStats=true")
	}
	WithStats = false
	if DefaultConfig().Stats {
		t.Errorf("expected DefaultConfig().Stats to mirror WithStats=false")
	}
}

func TestConfig_ValidateRejectsOutOfRangeMaxPatternLen(t *testing.T) {
	cfg := Config{MaxPatternLen: 0}
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected an error for MaxPatternLen=0")
	}
	cfg = Config{MaxPatternLen: 2_000_000}
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected an error for MaxPatternLen exceeding 1,000,000")
	}
	cfg = Config{MaxPatternLen: 4096}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected a default-sized MaxPatternLen to validate, got %v", err)
	}
}

func TestConfigError_MentionsField(t *testing.T) {
	err := &ConfigError{Field: "MaxPatternLen", Message: "must be between 1 and 1,000,000"}
	if got := err.Error(); got == "" {
		t.Errorf("expected a non-empty error message")
	}
}
