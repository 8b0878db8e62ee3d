package commands

import (
	"errors"
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Ln implements symbolic links only; the virtual filesystem has no inode
// layer for hard links.
func Ln(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "ln -s TARGET LINK_NAME",
		Short: "Create a symbolic link.",
	}

	symbolic := cmd.Flags().Bool('s', "make a symbolic link")

	return cmd.RunE(virtOS, func() error {
		if !*symbolic {
			return errors.New("only symbolic links (-s) are supported")
		}
		args := cmd.Flags().Args()
		if len(args) != 2 {
			return errors.New("expected TARGET and LINK_NAME")
		}
		return virtOS.Symlink(args[0], args[1])
	})
}

// Readlink prints the recorded target of a symbolic link verbatim.
func Readlink(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "readlink LINK...",
		Short: "Print symbolic link targets.",
	}

	return cmd.RunEachArg(virtOS, func(arg string) error {
		target, err := virtOS.Readlink(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(virtOS.Stdout(), target)
		return nil
	})
}

var _ vos.ProcessFunc = Ln
var _ vos.ProcessFunc = Readlink

func init() {
	register(&Command{
		Name:  "ln",
		Use:   "ln -s TARGET LINK_NAME",
		Short: "Create a symbolic link.",
		Proc:  Ln,
	})
	register(&Command{
		Name:  "readlink",
		Use:   "readlink LINK...",
		Short: "Print symbolic link targets.",
		Proc:  Readlink,
	})
}
