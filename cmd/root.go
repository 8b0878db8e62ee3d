// Package cmd holds the sandshell CLI.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sandshell/sandshell/core/config"
)

var (
	cfgPath string
	verbose bool
)

// loadConfig loads the configuration file named by --config, or the stock
// defaults when the flag wasn't given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sandshell",
	Short: "Sandboxed shell command interpreter",
	Long: `A sandboxed interpreter for POSIX-like command lines.

Commands run against an in-memory filesystem; nothing touches the host.
Compound lines with &&, ||, ; and | are evaluated strictly left to right.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log executed segments")
}
