package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Cd changes the session working directory. The new directory survives the
// invocation because the interpreter adopts the process's directory after
// the command returns.
func Cd(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cd [DIR]",
		Short: "Change the working directory.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()

		dir := virtOS.Getenv("HOME")
		if len(args) > 0 {
			dir = args[0]
		}
		if dir == "" {
			dir = "/"
		}

		if err := virtOS.Chdir(dir); err != nil {
			fmt.Fprintf(virtOS.Stderr(), "cd: %s: No such file or directory\n", dir)
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Cd

func init() {
	register(&Command{
		Name:  "cd",
		Use:   "cd [DIR]",
		Short: "Change the working directory.",
		Proc:  Cd,
	})
}
