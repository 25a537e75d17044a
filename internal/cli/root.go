// Package cli implements the decorum command line: a demo of the User
// record and a description of its type.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chriso345/decorum/internal/config"
	"github.com/chriso345/decorum/internal/logging"
)

// Version is set at build time; empty means "read from build info".
var Version = ""

// RootOptions holds global flags and the state they produce.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "yaml", overrides the config file

	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the decorum CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "decorum",
		Short:         "decorum - attribute policies for record types",
		Long:          "Demonstrates the required, enumerable, deprecated and frozen policies on an example User record.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.Format != "" {
				cfg.Output = opts.Format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.Config = cfg

			logger, err := logging.New(logging.Options{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Verbose: opts.Verbose,
			})
			if err != nil {
				return err
			}
			opts.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "record output format (json|yaml)")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the root command and returns its error.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("decorum: %w", err)
	}
	return nil
}
