package commands

import (
	"github.com/sandshell/sandshell/core/vos"
)

// Mkdir implements the POSIX mkdir command.
func Mkdir(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [-p] DIRECTORY...",
		Short: "Create directories.",
	}

	parents := cmd.Flags().Bool('p', "make parent directories as needed")

	return cmd.RunEachArg(virtOS, func(arg string) error {
		if *parents {
			return virtOS.MkdirAll(arg, 0755)
		}
		return virtOS.Mkdir(arg, 0755)
	})
}

var _ vos.ProcessFunc = Mkdir

func init() {
	register(&Command{
		Name:  "mkdir",
		Use:   "mkdir [-p] DIRECTORY...",
		Short: "Create directories.",
		Proc:  Mkdir,
	})
}
