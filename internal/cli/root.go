// Package cli defines the Cobra commands for the ovenreader CLI.
// This file contains the root command and its shared setup.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ovenreader/internal/config"
	"ovenreader/internal/logging"
	"ovenreader/internal/parser"
)

var (
	cfgPath string
	verbose bool
	version = "dev" // set via ldflags at build time

	// cfg is loaded once per invocation by PersistentPreRunE
	cfg = config.DefaultConfig()

	// rootCtx is cancelled on SIGINT/SIGTERM
	rootCtx    context.Context
	rootCancel context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "ovenreader",
	Short: "Summarize industrial oven cook reports",
	Long: `ovenreader reads the text reports an oven controller writes for each
cook and prints the product, lot, timing, stage durations, probe
temperatures and yield. Run without arguments for an interactive prompt.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := cfg.LogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		if err := logging.Init(logging.Options{File: cfg.Log.File, Stderr: verbose, Level: level}); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}

		rootCtx, rootCancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rootCancel != nil {
			rootCancel()
		}
		logging.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newParser()
		if err != nil {
			return err
		}
		return runREPL(GetContext(), cmd.InOrStdin(), cmd.OutOrStdout(), p, cfg.OutputFormat())
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetContext returns the root context that is cancelled on SIGINT/SIGTERM.
func GetContext() context.Context {
	if rootCtx == nil {
		return context.Background()
	}
	return rootCtx
}

// newParser builds a parser from the loaded configuration
func newParser() (*parser.Parser, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return parser.New(parser.WithLocation(loc), parser.WithLogger(logging.Logger())), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default "+config.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs to stderr")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(viewCmd)
}
