// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package walk extracts fenced code from every literate Markdown file in a
// directory tree and mirrors the tree's layout into an output directory.
// Which files are read and where their output goes are decided by a
// FileFilter and a PathMapper, so the traversal itself stays policy free.
package walk

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/literate/internal/literate"
	"github.com/pdiddy/literate/internal/matcher"
)

// Walker runs extractions over a filesystem. The zero value is not usable;
// construct one with New.
type Walker struct {
	Fs  afero.Fs
	Log *slog.Logger
}

// New returns a Walker over fsys. A nil log discards all records.
func New(fsys afero.Fs, log *slog.Logger) *Walker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Walker{Fs: fsys, Log: log}
}

// Extract walks root on the OS filesystem, extracting every visible
// "*.<extension>.md" file into outDir.
func Extract(root, extension, outDir string, m matcher.CodeMatcher, overwrite bool, log *slog.Logger) (Result, error) {
	return New(afero.NewOsFs(), log).Extract(root, Extension(extension), OutputDir(outDir), m, overwrite)
}

// Extract walks root depth-first in lexical order. Hidden directories
// other than root are skipped entirely. Each regular file accepted by
// filter is extracted with m into the path mapper returns for it. Existing
// outputs are an error unless overwrite is set. The first error of any
// kind stops the walk.
func (w *Walker) Extract(root string, filter FileFilter, mapper PathMapper, m matcher.CodeMatcher, overwrite bool) (Result, error) {
	var result Result

	err := afero.Walk(w.Fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return literate.Wrap(literate.KindWalk, path, err)
		}
		if info.IsDir() {
			if path != root && IsHidden(path) {
				w.Log.Debug("skipping hidden directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || !filter.FilterFile(path) {
			return nil
		}

		file, err := w.extractFile(root, path, mapper, m, overwrite)
		if err != nil {
			return err
		}
		result.add(file)
		w.Log.Info("extracted", "input", file.Input, "output", file.Output, "bytes", file.Bytes)
		return nil
	})
	if err != nil {
		return result, err
	}

	w.Log.Info("walk complete", "root", root, "files", result.Files, "bytes", result.Bytes)
	return result, nil
}

// extractFile extracts one input file. Both handles are closed before it
// returns.
func (w *Walker) extractFile(root, path string, mapper PathMapper, m matcher.CodeMatcher, overwrite bool) (FileResult, error) {
	rel, err := relative(root, path)
	if err != nil {
		return FileResult{}, literate.Wrap(literate.KindPrefix, path, err)
	}

	in, err := w.Fs.Open(path)
	if err != nil {
		return FileResult{}, literate.Wrap(literate.KindIO, path, err)
	}
	defer in.Close()

	outPath := mapper.MapPath(rel)
	if err := w.Fs.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return FileResult{}, literate.Wrap(literate.KindIO, outPath, err)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flag |= os.O_EXCL
	}
	out, err := w.Fs.OpenFile(outPath, flag, 0o644)
	if err != nil {
		return FileResult{}, literate.Wrap(literate.KindIO, outPath, err)
	}

	n, err := literate.Extract(in, bufio.NewWriter(out), m, literate.WithLogger(w.Log))
	if cerr := out.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return FileResult{}, literate.Wrap(literate.KindIO, path, err)
	}

	return FileResult{Input: path, Output: outPath, Bytes: n}, nil
}

// relative returns path relative to root, failing when path lies outside it.
func relative(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not under %s", path, root)
	}
	return rel, nil
}
