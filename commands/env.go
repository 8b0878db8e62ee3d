package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Env implements the POSIX env command.
func Env(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "env",
		Short: "Print the environment.",
	}

	return cmd.Run(virtOS, func() int {
		for _, entry := range virtOS.Environ() {
			fmt.Fprintln(virtOS.Stdout(), entry)
		}
		return 0
	})
}

var _ vos.ProcessFunc = Env

func init() {
	register(&Command{
		Name:  "env",
		Use:   "env",
		Short: "Print the environment.",
		Proc:  Env,
	})
}
