package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ktsimpso/adventofcode2020/internal/config"
	"github.com/ktsimpso/adventofcode2020/internal/days"
	"github.com/ktsimpso/adventofcode2020/internal/runner"
	"github.com/ktsimpso/adventofcode2020/internal/tui"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var (
		configPath string
		inputRoot  string
		verbose    bool
	)

	// The runtime is shared by every subcommand; its config and logger
	// are filled in once flags are parsed.
	rt := runner.NewRuntime(config.Default(), zap.NewNop())

	root := &cobra.Command{
		Use:           "advent",
		Short:         "Run advent of code 2020 problems",
		Long:          "Run advent of code problems from this main program.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if inputRoot != "" {
				cfg.InputRoot = inputRoot
			}
			if verbose {
				cfg.Verbose = true
			}

			zapConfig := zap.NewProductionConfig()
			if cfg.Verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zapConfig.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}

			rt.Config = cfg
			rt.Logger = logger
			rt.Logger.Debug("runtime ready",
				zap.String("run_id", rt.RunID),
				zap.String("input_root", cfg.InputRoot),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = rt.Logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(),
		"path to the yaml config file")
	root.PersistentFlags().StringVar(&inputRoot, "input-root", "",
		"base directory for the canonical dayN/input.txt inputs")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	registry := days.Registry()
	for _, day := range registry {
		root.AddCommand(day.New(rt))
	}
	root.AddCommand(tui.Command(rt, registry))

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
