package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Pwd implements the POSIX pwd command.
func Pwd(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the current working directory.",
	}

	return cmd.Run(virtOS, func() int {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
		return 0
	})
}

var _ vos.ProcessFunc = Pwd

func init() {
	register(&Command{
		Name:  "pwd",
		Use:   "pwd",
		Short: "Print the current working directory.",
		Proc:  Pwd,
	})
}
