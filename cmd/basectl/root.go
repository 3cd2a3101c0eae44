package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/basekit/base"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "basectl",
	Short: "Exercise and inspect the basekit object substrate",
	Long: `basectl drives the basekit runtime from the command line: it stresses
the reference-counted containers across OS threads, prints the object type
table, and computes the hash functions used by the hashtable.`,
	Version: "0.1.0",
	// Usage on every runtime error hides the actual message.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRuntime initializes a runtime honoring the global flags.
func newRuntime(cfg base.Config) (*base.Runtime, error) {
	if verbose {
		cfg.LogEnabled = true
		cfg.LogWriter = os.Stderr
		cfg.LogLevel = slog.LevelDebug
	}
	return base.Init(cfg)
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
