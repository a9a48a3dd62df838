// Package cli implements the brlapi-version command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/a11y/brlapi-go/pkg/brlapi"
	"github.com/a11y/brlapi-go/pkg/brlapi/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds the flags that are not part of brlapi.Config.
type RootOptions struct {
	Config  string
	Verbose bool
	Output  string
	Require string
}

// report is the JSON shape of --output json.
type report struct {
	Wrapper  string `json:"wrapper"`
	Library  string `json:"library"`
	Version  string `json:"version"`
	Major    int    `json:"major"`
	Minor    int    `json:"minor"`
	Revision int    `json:"revision"`
}

// NewRootCmd creates the root command with dependency injection.
func NewRootCmd(logger *slog.Logger, levelVar *slog.LevelVar, stdout io.Writer) *cobra.Command {
	opts := &RootOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "brlapi-version",
		Short: "Report the version of the native brlapi library",
		Long: `brlapi-version loads the native brlapi client library the same way the
Go binding does and prints its major version, minor version and revision.
With --require it exits non-zero when the library is older than required.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return preRun(opts, v, logger, levelVar)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(opts, v, logger, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Config, "config", "", "YAML config file with library settings")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose logging (debug level)")
	flags.StringVarP(&opts.Output, "output", "o", "text", "output format: text, json")
	flags.StringVar(&opts.Require, "require", "", "minimum acceptable native version, e.g. 0.8.0")

	flags.String("library", "", "logical library name or file path (default \"brlapi\")")
	flags.StringSlice("library-path", nil, "directories searched before the system library path")
	flags.String("major-symbol", "", "major version entry point")
	flags.String("minor-symbol", "", "minor version entry point")
	flags.String("revision-symbol", "", "revision entry point")

	for key, name := range map[string]string{
		brlapi.KeyLibrary:        "library",
		brlapi.KeyLibraryPath:    "library-path",
		brlapi.KeyMajorSymbol:    "major-symbol",
		brlapi.KeyMinorSymbol:    "minor-symbol",
		brlapi.KeyRevisionSymbol: "revision-symbol",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("brlapi-version: bind flag --%s: %v", name, err))
		}
	}

	return cmd
}

func preRun(opts *RootOptions, v *viper.Viper, logger *slog.Logger, levelVar *slog.LevelVar) error {
	if opts.Verbose {
		levelVar.Set(slog.LevelDebug)
		logger.Debug("verbose logging enabled")
	}

	if opts.Output != "text" && opts.Output != "json" {
		return ErrInvalidOutputFormat(opts.Output)
	}

	v.SetEnvPrefix(brlapi.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	brlapi.SetDefaults(v)

	if opts.Config != "" {
		v.SetConfigFile(opts.Config)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		logger.Debug("config file loaded", "path", opts.Config)
	}
	return nil
}

func runVersion(opts *RootOptions, v *viper.Viper, logger *slog.Logger, stdout io.Writer) error {
	var want brlapi.VersionIdentifier
	if opts.Require != "" {
		var err error
		if want, err = brlapi.ParseVersion(opts.Require); err != nil {
			return ErrInvalidRequirement(opts.Require, err)
		}
	}

	cfg := brlapi.ConfigFromViper(v)
	logger.Debug("resolved configuration",
		"library", cfg.Library,
		"search_paths", cfg.SearchPaths,
		"major_symbol", cfg.Symbols.Major,
		"minor_symbol", cfg.Symbols.Minor,
		"revision_symbol", cfg.Symbols.Revision,
	)

	loader := brlapi.NewNativeLoader(cfg, brlapi.WithLogger(logging.New(logger)))
	got, err := brlapi.NewReporter(loader).Version()
	if err != nil {
		return err
	}

	if err := write(stdout, opts.Output, cfg.Library, got); err != nil {
		return err
	}

	if opts.Require != "" && !got.AtLeast(want) {
		return errTooOld(got, want)
	}
	return nil
}

func write(w io.Writer, format, library string, v brlapi.VersionIdentifier) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report{
			Wrapper:  brlapi.WrapperVersion(),
			Library:  library,
			Version:  v.String(),
			Major:    v.Major,
			Minor:    v.Minor,
			Revision: v.Revision,
		})
	}
	_, err := fmt.Fprintf(w, "brlapi-go %s\n%s %s\n", brlapi.WrapperVersion(), library, v)
	return err
}
