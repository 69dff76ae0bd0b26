// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    interface{ Validate() error }
		errMsg string
	}{
		{name: "extract defaults", cfg: ExtractConfig{}},
		{
			name:   "force without output",
			cfg:    ExtractConfig{StreamConfig: StreamConfig{Force: true}},
			errMsg: "--force needs --output",
		},
		{
			name:   "force with stdout dash",
			cfg:    QuoteConfig{StreamConfig: StreamConfig{Output: "-", Force: true}},
			errMsg: "--force needs --output",
		},
		{
			name: "force with output",
			cfg:  ExtractConfig{StreamConfig: StreamConfig{Output: "out.rs", Force: true}},
		},
		{
			name:   "required without language",
			cfg:    ExtractConfig{LanguageConfig: LanguageConfig{Required: true}},
			errMsg: "--required needs --language",
		},
		{
			name:   "walk missing output and extension",
			cfg:    WalkConfig{Input: "."},
			errMsg: "--extension is required",
		},
		{
			name: "walk complete",
			cfg:  WalkConfig{Input: ".", Output: "out", Extension: "rs", LanguageConfig: LanguageConfig{Language: "rust", Required: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWalkValidate_ReportsEveryProblem(t *testing.T) {
	err := WalkConfig{LanguageConfig: LanguageConfig{Required: true}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output is required")
	assert.Contains(t, err.Error(), "--extension is required")
	assert.Contains(t, err.Error(), "--required needs --language")
}

func TestConfigFile(t *testing.T) {
	data := []byte(`
log:
  verbose: 2
walk:
  input: docs
  output: src
  extension: rs
  language: rust
  required: true
quote:
  level: h2
  pattern: ^Usage
`)
	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, 2, cfg.Log.Verbose)
	assert.Equal(t, "docs", cfg.Walk.Input)
	assert.Equal(t, "src", cfg.Walk.Output)
	assert.Equal(t, "rs", cfg.Walk.Extension)
	assert.Equal(t, LanguageConfig{Language: "rust", Required: true}, cfg.Walk.LanguageConfig)
	assert.Equal(t, "h2", cfg.Quote.Level)
	assert.Equal(t, "^Usage", cfg.Quote.Pattern)
	assert.True(t, cfg.Extract.ToStdout())
}
