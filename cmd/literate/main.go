// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the literate CLI. Without a
// subcommand it extracts fenced code from one Markdown document; quote
// prints heading-scoped sections and walk extracts a whole directory tree.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/literate/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built once in PersistentPreRunE and handed to the core
// packages explicitly.
var logger = slog.New(slog.DiscardHandler)

// rootCmd extracts fenced code blocks from a single document.
var rootCmd = &cobra.Command{
	Use:   "literate",
	Short: "Extract code and sections from literate Markdown",
	Long: `literate extracts the contents of fenced code blocks from Markdown.

Without a subcommand it reads one document (stdin by default) and writes the
bodies of matching fenced code blocks (stdout by default). Use --language to
keep only blocks of one language and --required to drop untagged blocks.

The quote subcommand prints the source of sections whose heading matches, and
the walk subcommand extracts every *.<ext>.md file of a directory tree into a
mirrored output tree.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		if err := bindFlags(v, "log", cmd.Root().PersistentFlags()); err != nil {
			return err
		}
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}
		logger = newLogger(os.Stderr, cfg.Log)
		if used := v.ConfigFileUsed(); used != "" {
			logger.Info("using config file", "path", used)
		}
		return nil
	},
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./literate.yaml or ~/.config/literate/literate.yaml)")
	pf.CountP("verbose", "v", "make the program more talkative (repeatable)")
	pf.BoolP("debug", "d", false, "print debug messages")
	pf.BoolP("trace", "t", false, "print trace messages")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "debug", "trace")

	addStreamFlags(rootCmd.Flags(), "output stream for matching fenced code block contents")
	addLanguageFlags(rootCmd.Flags())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("literate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "literate"))
		}
	}

	viper.SetEnvPrefix("LITERATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

// bindFlags binds every flag in fs to the viper key "<section>.<flag>", so
// a flag set on the command line overrides LITERATE_<SECTION>_<FLAG> and
// the config file.
func bindFlags(v *viper.Viper, section string, fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		errs = append(errs, v.BindPFlag(section+"."+f.Name, f))
	})
	return errors.Join(errs...)
}

// loadConfig decodes every bound flag, LITERATE_* variable and config
// file entry into the command configurations.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func addStreamFlags(fs *pflag.FlagSet, outputUsage string) {
	fs.StringP("input", "i", "", "input Markdown file (default stdin)")
	fs.StringP("output", "o", "", outputUsage+" (default stdout); its directory must exist")
	fs.BoolP("force", "f", false, "overwrite the existing contents of the output file")
}

func addLanguageFlags(fs *pflag.FlagSet) {
	fs.StringP("language", "l", "", "language that fenced code blocks must match to be included")
	fs.BoolP("required", "r", false, "require fenced code blocks to have a language to be included")
}

func main() {
	// Writes to a closed pipe return EPIPE instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)

	if err := rootCmd.Execute(); err != nil {
		if brokenPipe(err) {
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// brokenPipe reports whether err comes from writing to a closed pipe, which
// ends the program quietly.
func brokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
