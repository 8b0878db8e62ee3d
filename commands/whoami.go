package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Whoami prints the configured user name.
func Whoami(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "whoami",
		Short: "Print the current user name.",
	}

	return cmd.Run(virtOS, func() int {
		user := virtOS.Getenv("USER")
		if user == "" {
			user = "user"
		}
		fmt.Fprintln(virtOS.Stdout(), user)
		return 0
	})
}

var _ vos.ProcessFunc = Whoami

func init() {
	register(&Command{
		Name:  "whoami",
		Use:   "whoami",
		Short: "Print the current user name.",
		Proc:  Whoami,
	})
}
