package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandshell/sandshell/commands"
	"github.com/sandshell/sandshell/core/interp"
)

// runCmd executes command lines non-interactively. Each argument is one
// full compound line; the session (and its filesystem and working
// directory) carries over between them.
var runCmd = &cobra.Command{
	Use:   "run LINE...",
	Short: "Execute command lines and print their results.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		session := interp.NewSession(interp.Options{
			Registry: commands.Default(),
			Config:   cfg,
			Logger:   newLogger(),
		})

		for _, line := range args {
			fmt.Fprintln(cmd.OutOrStdout(), session.Execute(line))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
