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

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the source of sections whose heading matches",
	Long: `Quote prints the raw Markdown of every section whose heading matches
--level and --pattern. A section starts at its heading and runs until the
next heading of the same or a shallower level; deeper headings and their
content are part of it.`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	addStreamFlags(quoteCmd.Flags(), "output stream for quoted sections")
	quoteCmd.Flags().StringP("level", "L", "", "heading level to match, h1-h6 (default any)")
	quoteCmd.Flags().StringP("pattern", "p", "", "regular expression the heading text must match (default any)")

	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if err := bindFlags(v, "quote", cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	return quoteDocument(cfg.Quote, os.Stdin, os.Stdout)
}

// quoteDocument quotes the matching sections of one document.
func quoteDocument(cfg types.QuoteConfig, stdin io.Reader, stdout io.Writer) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m, err := matcher.NewHeadingMatcher(cfg.Level, cfg.Pattern)
	if err != nil {
		return err
	}

	s, err := openStreams(cfg.StreamConfig, stdin, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	logger.Debug("quoting", "input", cfg.Input, "output", cfg.Output, "matcher", m.String())
	n, err := literate.Quote(s.in, s.out, m, literate.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("quote complete", "bytes", n)
	return nil
}
