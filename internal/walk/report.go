// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package walk

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// FileResult records one extracted file.
type FileResult struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Bytes  int    `yaml:"bytes"`
}

// Result is the outcome of a walk: how many files were extracted and how
// many bytes were written across them.
type Result struct {
	Files   int          `yaml:"files"`
	Bytes   int          `yaml:"bytes"`
	Entries []FileResult `yaml:"entries"`
}

func (r *Result) add(f FileResult) {
	r.Files++
	r.Bytes += f.Bytes
	r.Entries = append(r.Entries, f)
}

// Report is the on-disk summary of a walk.
type Report struct {
	Root      string    `yaml:"root"`
	OutputDir string    `yaml:"output_dir"`
	Timestamp time.Time `yaml:"timestamp"`
	Result    Result    `yaml:"result"`
}

// WriteReport saves a YAML summary of r to path on fsys.
func WriteReport(fsys afero.Fs, path, root, outDir string, r Result) error {
	report := Report{
		Root:      root,
		OutputDir: outDir,
		Timestamp: time.Now().UTC(),
		Result:    r,
	}
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling walk report: %w", err)
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}

// ReadReport loads a report written by WriteReport.
func ReadReport(fsys afero.Fs, path string) (*Report, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading walk report: %w", err)
	}
	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing walk report: %w", err)
	}
	return &report, nil
}
