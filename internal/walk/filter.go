// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package walk

import (
	"path/filepath"
	"strings"
)

// hiddenMarker prefixes the names of hidden files and directories.
const hiddenMarker = "."

// markdownExt is the extension every literate input file ends with.
const markdownExt = ".md"

// FileFilter decides whether a file found during a walk is extracted.
type FileFilter interface {
	FilterFile(path string) bool
}

// FilterFunc adapts a function to FileFilter.
type FilterFunc func(path string) bool

func (f FilterFunc) FilterFile(path string) bool {
	return f(path)
}

// IsHidden reports whether the last element of path starts with a dot.
// The relative references "." and ".." are not hidden.
func IsHidden(path string) bool {
	name := filepath.Base(path)
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, hiddenMarker)
}

// Extension accepts visible files named "<stem>.<extension>.md".
// Matching is case-sensitive.
type Extension string

func (e Extension) FilterFile(path string) bool {
	if IsHidden(path) || filepath.Ext(path) != markdownExt {
		return false
	}
	stem := strings.TrimSuffix(path, markdownExt)
	return filepath.Ext(stem) == "."+string(e)
}
