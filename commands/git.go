package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Git is a dispatch shim: the sandbox has no version control backend, so
// recognized subcommands answer with plausible fixed responses and
// everything else is rejected.
func Git(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:       "git COMMAND [ARG]...",
		Short:     "The stupid content tracker.",
		NeverBail: true,
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(virtOS.Stderr(), "usage: git COMMAND [ARG]...")
			return 1
		}

		switch args[0] {
		case "version", "--version":
			fmt.Fprintln(virtOS.Stdout(), "git version 2.43.0.sandbox")
			return 0
		case "status", "log", "diff", "branch":
			fmt.Fprintln(virtOS.Stderr(), "fatal: not a git repository (or any of the parent directories): .git")
			return 128
		default:
			fmt.Fprintf(virtOS.Stderr(), "git: %q is not supported in this sandbox\n", args[0])
			return 1
		}
	})
}

var _ vos.ProcessFunc = Git

func init() {
	register(&Command{
		Name:  "git",
		Use:   "git COMMAND [ARG]...",
		Short: "The stupid content tracker.",
		Proc:  Git,
	})
}
