package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandshell/sandshell/commands"
)

// commandsCmd lists the commands compiled into the interpreter.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the commands available inside the sandbox.",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, entry := range commands.List() {
			fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Short)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
