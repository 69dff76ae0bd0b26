// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/literate/internal/literate"
	"github.com/pdiddy/literate/internal/matcher"
	"github.com/pdiddy/literate/pkg/types"
)

func runExtract(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if err := bindFlags(v, "extract", cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	return extractDocument(cfg.Extract, os.Stdin, os.Stdout)
}

// extractDocument runs a single-document extraction with cfg.
func extractDocument(cfg types.ExtractConfig, stdin io.Reader, stdout io.Writer) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m := matcher.NewCodeMatcher(cfg.Language, cfg.Required)

	s, err := openStreams(cfg.StreamConfig, stdin, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	logger.Debug("extracting", "input", cfg.Input, "output", cfg.Output, "matcher", m)
	n, err := literate.Extract(s.in, s.out, m, literate.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("extraction complete", "bytes", n)
	return nil
}
