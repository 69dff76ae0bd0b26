// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package walk

import (
	"path/filepath"
	"strings"
)

// PathMapper computes where the output for an input file goes, given the
// input path relative to the walk root.
type PathMapper interface {
	MapPath(rel string) string
}

// MapperFunc adapts a function to PathMapper.
type MapperFunc func(rel string) string

func (f MapperFunc) MapPath(rel string) string {
	return f(rel)
}

// OutputDir places outputs under a root directory, keeping the relative
// layout and dropping only the final extension: "docs/a.rs.md" becomes
// "<root>/docs/a.rs".
type OutputDir string

func (d OutputDir) MapPath(rel string) string {
	return filepath.Join(string(d), strings.TrimSuffix(rel, filepath.Ext(rel)))
}
