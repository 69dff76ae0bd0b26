// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/literate/internal/literate"
	"github.com/pdiddy/literate/internal/walk"
	"github.com/pdiddy/literate/pkg/types"
)

const doc = "# Guide\n\n" +
	"```rust\nfn main() {}\n```\n\n" +
	"```\nuntagged\n```\n\n" +
	"## Usage\n\nRun it.\n\n" +
	"## Other\n\nIgnored.\n"

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.LogConfig
		want slog.Level
	}{
		{name: "default", cfg: types.LogConfig{}, want: slog.LevelError},
		{name: "v", cfg: types.LogConfig{Verbose: 1}, want: slog.LevelWarn},
		{name: "vv", cfg: types.LogConfig{Verbose: 2}, want: slog.LevelInfo},
		{name: "vvv", cfg: types.LogConfig{Verbose: 3}, want: slog.LevelDebug},
		{name: "vvvv", cfg: types.LogConfig{Verbose: 4}, want: literate.LevelTrace},
		{name: "debug", cfg: types.LogConfig{Debug: true}, want: slog.LevelDebug},
		{name: "trace", cfg: types.LogConfig{Trace: true}, want: literate.LevelTrace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(tt.cfg))
		})
	}
}

func TestNewLogger_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, types.LogConfig{Trace: true})
	log.Log(t.Context(), literate.LevelTrace, "received event")
	assert.Contains(t, buf.String(), "level=TRACE")
}

func TestExtractDocument_Stdio(t *testing.T) {
	var out bytes.Buffer
	cfg := types.ExtractConfig{LanguageConfig: types.LanguageConfig{Language: "rust"}}
	require.NoError(t, extractDocument(cfg, strings.NewReader(doc), &out))
	assert.Equal(t, "fn main() {}\nuntagged\n", out.String())

	out.Reset()
	cfg.Required = true
	require.NoError(t, extractDocument(cfg, strings.NewReader(doc), &out))
	assert.Equal(t, "fn main() {}\n", out.String())
}

func TestExtractDocument_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "guide.rs.md")
	out := filepath.Join(dir, "guide.rs")
	require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))

	cfg := types.ExtractConfig{
		StreamConfig:   types.StreamConfig{Input: in, Output: out},
		LanguageConfig: types.LanguageConfig{Language: "rust", Required: true},
	}
	require.NoError(t, extractDocument(cfg, nil, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(data))

	// The output now exists; without --force that is an error.
	err = extractDocument(cfg, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)

	cfg.Force = true
	cfg.Required = false
	cfg.Language = ""
	require.NoError(t, extractDocument(cfg, nil, nil))
	data, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\nuntagged\n", string(data))
}

func TestExtractDocument_InvalidConfig(t *testing.T) {
	cfg := types.ExtractConfig{StreamConfig: types.StreamConfig{Force: true}}
	err := extractDocument(cfg, strings.NewReader(doc), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force needs --output")
}

func TestExtractDocument_MissingInput(t *testing.T) {
	cfg := types.ExtractConfig{StreamConfig: types.StreamConfig{Input: filepath.Join(t.TempDir(), "missing.md")}}
	err := extractDocument(cfg, nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, literate.IsKind(err, literate.KindIO))
}

// closedPipe fails every write the way a closed stdout pipe does.
type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) {
	return 0, syscall.EPIPE
}

func TestExtractDocument_BrokenPipe(t *testing.T) {
	err := extractDocument(types.ExtractConfig{}, strings.NewReader(doc), closedPipe{})
	require.Error(t, err)
	assert.True(t, literate.IsKind(err, literate.KindIO))
	assert.True(t, brokenPipe(err), "EPIPE must survive wrapping: %v", err)

	assert.False(t, brokenPipe(errors.New("disk full")))
	assert.False(t, brokenPipe(nil))
}

func TestQuoteDocument(t *testing.T) {
	var out bytes.Buffer
	cfg := types.QuoteConfig{Level: "h2", Pattern: "^Usage$"}
	require.NoError(t, quoteDocument(cfg, strings.NewReader(doc), &out))
	assert.Equal(t, "## Usage\nRun it.\n", out.String())
}

func TestQuoteDocument_BadPattern(t *testing.T) {
	err := quoteDocument(types.QuoteConfig{Pattern: "("}, strings.NewReader(doc), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid heading pattern")
}

func TestWalkTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/src/docs", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/src/docs/readme.rs.md", []byte(doc), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/src/docs/notes.md", []byte(doc), 0o644))

	cfg := types.WalkConfig{
		Input:          "/src",
		Output:         "/out",
		Extension:      "rs",
		Report:         "/report.yaml",
		LanguageConfig: types.LanguageConfig{Language: "rust", Required: true},
	}
	result, err := walkTree(fsys, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Files)

	data, err := afero.ReadFile(fsys, "/out/docs/readme.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(data))

	report, err := walk.ReadReport(fsys, "/report.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/src", report.Root)
	assert.Equal(t, 1, report.Result.Files)
}

func TestWalkTree_InvalidConfig(t *testing.T) {
	_, err := walkTree(afero.NewMemMapFs(), types.WalkConfig{Input: "."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output is required")
}

func TestBindFlags(t *testing.T) {
	v := viper.New()
	v.Set("walk.extension", "go")

	fs := pflag.NewFlagSet("walk", pflag.ContinueOnError)
	fs.String("extension", "", "")
	fs.String("output", "out", "")
	require.NoError(t, bindFlags(v, "walk", fs))

	// An unset flag leaves explicit settings alone and supplies its default.
	assert.Equal(t, "go", v.GetString("walk.extension"))
	assert.Equal(t, "out", v.GetString("walk.output"))

	require.NoError(t, fs.Parse([]string{"--extension", "rs"}))
	v2 := viper.New()
	require.NoError(t, bindFlags(v2, "walk", fs))
	assert.Equal(t, "rs", v2.GetString("walk.extension"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LITERATE_WALK_EXTENSION", "rs")

	v := viper.New()
	v.SetEnvPrefix("LITERATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.Set("log.verbose", 3)
	v.Set("extract.input", "guide.md")
	v.Set("extract.language", "go")

	fs := pflag.NewFlagSet("walk", pflag.ContinueOnError)
	fs.String("extension", "", "")
	fs.String("output", "", "")
	fs.String("language", "", "")
	fs.Bool("required", false, "")
	require.NoError(t, fs.Parse([]string{"--output", "out", "--language", "rust", "--required"}))
	require.NoError(t, bindFlags(v, "walk", fs))

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Log.Verbose)
	assert.Equal(t, "guide.md", cfg.Extract.Input)
	assert.Equal(t, "go", cfg.Extract.Language)
	assert.Equal(t, "out", cfg.Walk.Output)
	assert.Equal(t, "rs", cfg.Walk.Extension)
	assert.Equal(t, types.LanguageConfig{Language: "rust", Required: true}, cfg.Walk.LanguageConfig)
	require.NoError(t, cfg.Walk.Validate())
}
