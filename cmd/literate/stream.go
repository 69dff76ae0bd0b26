// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/pdiddy/literate/internal/literate"
	"github.com/pdiddy/literate/pkg/types"
)

// streams holds the opened input and output of a single-document command.
type streams struct {
	in  io.Reader
	out *bufio.Writer

	closers []io.Closer
}

// openStreams opens cfg.Input (or stdin) and cfg.Output (or stdout). An
// existing output file is an error unless cfg.Force is set.
func openStreams(cfg types.StreamConfig, stdin io.Reader, stdout io.Writer) (*streams, error) {
	s := &streams{in: stdin}

	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, literate.Wrap(literate.KindIO, cfg.Input, err)
		}
		s.in = f
		s.closers = append(s.closers, f)
	}

	if cfg.ToStdout() {
		s.out = bufio.NewWriter(stdout)
		return s, nil
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !cfg.Force {
		flag |= os.O_EXCL
	}
	f, err := os.OpenFile(cfg.Output, flag, 0o644)
	if err != nil {
		s.Close()
		return nil, literate.Wrap(literate.KindIO, cfg.Output, err)
	}
	s.out = bufio.NewWriter(f)
	s.closers = append(s.closers, f)
	return s, nil
}

// Close releases every opened file and reports the first close failure.
func (s *streams) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}
