package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Date implements a minimal date command.
func Date(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "date",
		Short: "Print the current date and time.",
	}

	utc := cmd.Flags().Bool('u', "print Coordinated Universal Time")

	return cmd.Run(virtOS, func() int {
		now := virtOS.Now()
		if *utc {
			now = now.UTC()
		}
		fmt.Fprintln(virtOS.Stdout(), now.Format("Mon Jan _2 15:04:05 MST 2006"))
		return 0
	})
}

var _ vos.ProcessFunc = Date

func init() {
	register(&Command{
		Name:  "date",
		Use:   "date",
		Short: "Print the current date and time.",
		Proc:  Date,
	})
}
