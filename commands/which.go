package commands

import (
	"errors"
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Which reports whether commands are registered.
func Which(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:       "which COMMAND...",
		Short:     "Locate a command.",
		NeverBail: true,
	}

	return cmd.RunEachArg(virtOS, func(arg string) error {
		if _, ok := lookup(arg); !ok {
			return errors.New(arg + " not found")
		}
		fmt.Fprintf(virtOS.Stdout(), "/bin/%s\n", arg)
		return nil
	})
}

var _ vos.ProcessFunc = Which

func init() {
	register(&Command{
		Name:  "which",
		Use:   "which COMMAND...",
		Short: "Locate a command.",
		Proc:  Which,
	})
}
