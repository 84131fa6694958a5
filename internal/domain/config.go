package domain

import (
	"fmt"
	"strings"
)

// Threshold is a pair of multipliers applied to the system averages.
type Threshold struct {
	Loc   float64 `yaml:"loc"   json:"loc"`
	Files float64 `yaml:"files" json:"files"`
}

// Thresholds configures the size-outlier rules.
type Thresholds struct {
	Nano Threshold `yaml:"nano" json:"nano"`
	Mega Threshold `yaml:"mega" json:"mega"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

// ProjectConfig holds project-level configuration loaded from .mars.yaml.
type ProjectConfig struct {
	ToolsDir         string        `yaml:"tools_dir"         json:"tools_dir,omitempty"`
	SourceRoot       string        `yaml:"source_root"       json:"source_root,omitempty"`
	Matcher          string        `yaml:"matcher"           json:"matcher,omitempty"`
	ReferenceMatcher string        `yaml:"reference_matcher" json:"reference_matcher,omitempty"`
	Thresholds       Thresholds    `yaml:"thresholds"        json:"thresholds"`
	DisabledRules    []string      `yaml:"disabled_rules"    json:"disabled_rules,omitempty"`
	Logging          LoggingConfig `yaml:"logging"           json:"logging"`
}

const (
	DefaultToolsDir = "tools"
	NanoThreshold   = 0.5
	MegaThreshold   = 1.5
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	defaultLogLevel = "info"
)

// DefaultConfig returns the configuration used when no .mars.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		ToolsDir:         DefaultToolsDir,
		Matcher:          MatchSubstring,
		ReferenceMatcher: MatchSubstring,
		Thresholds: Thresholds{
			Nano: Threshold{Loc: NanoThreshold, Files: NanoThreshold},
			Mega: Threshold{Loc: MegaThreshold, Files: MegaThreshold},
		},
		Logging: LoggingConfig{Level: defaultLogLevel, Format: LogFormatText},
	}
}

// WithDefaults fills every zero field from DefaultConfig.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	d := DefaultConfig()
	if c.ToolsDir == "" {
		c.ToolsDir = d.ToolsDir
	}
	if c.Matcher == "" {
		c.Matcher = d.Matcher
	}
	if c.ReferenceMatcher == "" {
		c.ReferenceMatcher = d.ReferenceMatcher
	}
	if c.Thresholds.Nano.Loc == 0 {
		c.Thresholds.Nano.Loc = d.Thresholds.Nano.Loc
	}
	if c.Thresholds.Nano.Files == 0 {
		c.Thresholds.Nano.Files = d.Thresholds.Nano.Files
	}
	if c.Thresholds.Mega.Loc == 0 {
		c.Thresholds.Mega.Loc = d.Thresholds.Mega.Loc
	}
	if c.Thresholds.Mega.Files == 0 {
		c.Thresholds.Mega.Files = d.Thresholds.Mega.Files
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	return c
}

// IsDisabled reports whether the rule is listed in disabled_rules.
func (c ProjectConfig) IsDisabled(id RuleID) bool {
	for _, r := range c.DisabledRules {
		if r == string(id) {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// matchers must be known; references only support substring and token
	if c.Matcher != "" && !contains(ValidMatchers, c.Matcher) {
		return fmt.Errorf("%w: unknown matcher %q (valid: %s)", ErrInvalidConfig, c.Matcher, strings.Join(ValidMatchers, ", "))
	}
	if c.ReferenceMatcher != "" && c.ReferenceMatcher != MatchSubstring && c.ReferenceMatcher != MatchToken {
		return fmt.Errorf("%w: unknown reference_matcher %q (valid: substring, token)", ErrInvalidConfig, c.ReferenceMatcher)
	}

	// thresholds must be non-negative and nano below mega
	t := c.Thresholds
	for name, v := range map[string]float64{
		"thresholds.nano.loc": t.Nano.Loc, "thresholds.nano.files": t.Nano.Files,
		"thresholds.mega.loc": t.Mega.Loc, "thresholds.mega.files": t.Mega.Files,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %.2f)", ErrInvalidConfig, name, v)
		}
	}
	if t.Nano.Loc > 0 && t.Mega.Loc > 0 && t.Nano.Loc >= t.Mega.Loc {
		return fmt.Errorf("%w: thresholds.nano.loc (%.2f) must be below thresholds.mega.loc (%.2f)", ErrInvalidConfig, t.Nano.Loc, t.Mega.Loc)
	}
	if t.Nano.Files > 0 && t.Mega.Files > 0 && t.Nano.Files >= t.Mega.Files {
		return fmt.Errorf("%w: thresholds.nano.files (%.2f) must be below thresholds.mega.files (%.2f)", ErrInvalidConfig, t.Nano.Files, t.Mega.Files)
	}

	for _, r := range c.DisabledRules {
		if _, ok := LookupRule(RuleID(r)); !ok {
			return fmt.Errorf("%w: unknown rule %q in disabled_rules", ErrInvalidConfig, r)
		}
	}

	if f := c.Logging.Format; f != "" && f != LogFormatText && f != LogFormatJSON {
		return fmt.Errorf("%w: unknown logging.format %q (valid: text, json)", ErrInvalidConfig, f)
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
