// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration shared by the literate CLI and
// its config file (literate.yaml). Each command reads one section:
//
//	log:     verbosity for all commands
//	extract: single-document code extraction
//	quote:   single-document section quoting
//	walk:    directory tree extraction
package types

import "errors"

// LogConfig holds the verbosity settings. At most one of Verbose, Debug
// and Trace is expected to be set.
type LogConfig struct {
	// Verbose counts -v occurrences: 0 errors only, 1 warnings, 2 info,
	// 3 debug, 4 or more trace.
	Verbose int `json:"verbose" yaml:"verbose" mapstructure:"verbose"`

	// Debug selects debug messages.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`

	// Trace selects per-event trace messages.
	Trace bool `json:"trace" yaml:"trace" mapstructure:"trace"`
}

// LanguageConfig selects which fenced code blocks are extracted.
type LanguageConfig struct {
	// Language is the tag a fenced code block must carry. Empty means any.
	Language string `json:"language,omitempty" yaml:"language,omitempty" mapstructure:"language"`

	// Required excludes fenced code blocks that have no language tag.
	Required bool `json:"required" yaml:"required" mapstructure:"required"`
}

// Validate checks that Required is only used together with Language.
func (c LanguageConfig) Validate() error {
	if c.Required && c.Language == "" {
		return errors.New("--required needs --language")
	}
	return nil
}

// StreamConfig holds the input and output of a single-document command.
type StreamConfig struct {
	// Input is the Markdown file to read. Empty or "-" means stdin.
	Input string `json:"input,omitempty" yaml:"input,omitempty" mapstructure:"input"`

	// Output is the file to write. Empty or "-" means stdout. Its parent
	// directory must already exist.
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Force truncates an existing output file instead of failing.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// ToStdout reports whether output goes to stdout.
func (c StreamConfig) ToStdout() bool {
	return c.Output == "" || c.Output == "-"
}

// Validate checks that Force is only used with an output file.
func (c StreamConfig) Validate() error {
	if c.Force && c.ToStdout() {
		return errors.New("--force needs --output")
	}
	return nil
}

// ExtractConfig holds settings for extracting code from one document.
type ExtractConfig struct {
	StreamConfig   `yaml:",inline" mapstructure:",squash"`
	LanguageConfig `yaml:",inline" mapstructure:",squash"`
}

// Validate checks flag dependencies.
func (c ExtractConfig) Validate() error {
	return errors.Join(c.StreamConfig.Validate(), c.LanguageConfig.Validate())
}

// QuoteConfig holds settings for quoting sections of one document.
type QuoteConfig struct {
	StreamConfig `yaml:",inline" mapstructure:",squash"`

	// Level restricts matching headings to one level ("h2", "2"). Empty
	// means any level.
	Level string `json:"level,omitempty" yaml:"level,omitempty" mapstructure:"level"`

	// Pattern is a regular expression the heading text must match. Empty
	// means any text.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty" mapstructure:"pattern"`
}

// Validate checks flag dependencies.
func (c QuoteConfig) Validate() error {
	return c.StreamConfig.Validate()
}

// WalkConfig holds settings for extracting a directory tree.
type WalkConfig struct {
	// Input is the root directory to walk (default ".").
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// Output is the directory the extracted files are written under.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Force overwrites existing files in Output.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`

	// Extension selects files named "*.<extension>.md".
	Extension string `json:"extension" yaml:"extension" mapstructure:"extension"`

	// Report, when set, is the path of a YAML summary of the walk.
	Report string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`

	LanguageConfig `yaml:",inline" mapstructure:",squash"`
}

// Validate checks required settings and flag dependencies.
func (c WalkConfig) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, errors.New("--output is required"))
	}
	if c.Extension == "" {
		errs = append(errs, errors.New("--extension is required"))
	}
	errs = append(errs, c.LanguageConfig.Validate())
	return errors.Join(errs...)
}

// Config groups all command configurations, mirroring literate.yaml. The
// CLI decodes it from viper, so the mapstructure tags name the same keys
// as the yaml tags.
type Config struct {
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Extract ExtractConfig `json:"extract" yaml:"extract" mapstructure:"extract"`
	Quote   QuoteConfig   `json:"quote" yaml:"quote" mapstructure:"quote"`
	Walk    WalkConfig    `json:"walk" yaml:"walk" mapstructure:"walk"`
}
