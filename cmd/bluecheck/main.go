package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"bluecheck/internal/config"
	"bluecheck/internal/version"
)

var (
	logger   = zap.NewNop()
	manifest *config.Manifest
)

var rootCmd = &cobra.Command{
	Use:   "bluecheck",
	Short: "Bluebook case citation checker",
	Long: `bluecheck validates legal case citations against the Bluebook layout
Case Name, Volume Reporter Page[, Pinpoint] (Court Year).
and reports errors, warnings and notes for each citation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("failed to get verbose flag: %w", err)
		}
		if logger, err = buildLogger(verbose); err != nil {
			return err
		}
		if cmd.Name() == "version" {
			return nil
		}
		return loadManifest(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd)

	registerRootFlags(rootCmd.PersistentFlags())
}

func registerRootFlags(fs *pflag.FlagSet) {
	fs.String("color", "auto", "colorize output (auto|on|off)")
	fs.Bool("quiet", false, "hide informational notes")
	fs.Bool("timings", false, "show timing information")
	fs.Int("max-diagnostics", 100, "maximum number of diagnostics to show per citation")
	fs.String("config", "", "path to "+config.FileName+" (default: search upwards from the working directory)")
	fs.BoolP("verbose", "v", false, "enable debug logging on stderr")
	fs.String("cpu-profile", "", "write a CPU profile of the check to this file")
	fs.String("mem-profile", "", "write a heap profile after the check to this file")
}

// main executes the root command. Any returned error exits with status 1.
func main() {
	rootCmd.Version = version.Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// buildLogger returns a production zap logger on stderr. Only warnings are
// shown unless verbose is set.
func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// loadManifest reads the --config file, or the nearest bluecheck.toml when
// the flag is empty. A missing discovered file is not an error.
func loadManifest(cmd *cobra.Command) error {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		manifest = &config.Manifest{Path: path, Config: cfg}
	} else {
		m, ok, err := config.Discover(".")
		if err != nil {
			return err
		}
		if ok {
			manifest = m
		}
	}
	if manifest != nil {
		logger.Debug("config loaded", zap.String("path", manifest.Path))
	}
	return nil
}

// activeConfig is the loaded configuration, or the zero Config.
func activeConfig() config.Config {
	if manifest == nil {
		return config.Config{}
	}
	return manifest.Config
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
