package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/sandshell/sandshell/core/vos"
)

// Help lists the available commands with their descriptions. Hidden
// commands are excluded.
func Help(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "help",
		Short: "List available commands.",
	}

	return cmd.Run(virtOS, func() int {
		w := tabwriter.NewWriter(virtOS.Stdout(), 0, 4, 2, ' ', 0)
		for _, entry := range List() {
			fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Short)
		}
		w.Flush()
		return 0
	})
}

var _ vos.ProcessFunc = Help

func init() {
	register(&Command{
		Name:  "help",
		Use:   "help",
		Short: "List available commands.",
		Proc:  Help,
	})
}
