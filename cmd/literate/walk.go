// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/literate/internal/matcher"
	"github.com/pdiddy/literate/internal/walk"
	"github.com/pdiddy/literate/pkg/types"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Extract every matching file of a directory tree",
	Long: `Walk visits the input directory tree and extracts each file named
*.<extension>.md into the output directory, keeping its relative path and
dropping the .md suffix (docs/lib.rs.md becomes <output>/docs/lib.rs).
Hidden files and directories are skipped. Existing output files are an error
unless --force is given. The first failure stops the walk.`,
	Args: cobra.NoArgs,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().StringP("input", "i", ".", "directory to read Markdown from")
	walkCmd.Flags().StringP("output", "o", "", "directory to write extracted files to")
	walkCmd.Flags().BoolP("force", "f", false, "overwrite existing files in the output directory")
	walkCmd.Flags().StringP("extension", "e", "", "only files matching *.<extension>.md are extracted")
	walkCmd.Flags().String("report", "", "write a YAML summary of the walk to this file")
	addLanguageFlags(walkCmd.Flags())

	rootCmd.AddCommand(walkCmd)
}

func runWalk(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if err := bindFlags(v, "walk", cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	_, err = walkTree(afero.NewOsFs(), cfg.Walk)
	return err
}

// walkTree runs a directory extraction with cfg on fsys.
func walkTree(fsys afero.Fs, cfg types.WalkConfig) (walk.Result, error) {
	if err := cfg.Validate(); err != nil {
		return walk.Result{}, err
	}
	m := matcher.NewCodeMatcher(cfg.Language, cfg.Required)

	w := walk.New(fsys, logger)
	result, err := w.Extract(cfg.Input, walk.Extension(cfg.Extension), walk.OutputDir(cfg.Output), m, cfg.Force)
	if err != nil {
		return result, err
	}

	if cfg.Report != "" {
		if err := walk.WriteReport(fsys, cfg.Report, cfg.Input, cfg.Output, result); err != nil {
			return result, fmt.Errorf("writing report: %w", err)
		}
	}
	return result, nil
}
