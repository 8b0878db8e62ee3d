package commands

import (
	"fmt"
	"syscall"

	"github.com/sandshell/sandshell/core/vos"
)

// Rm implements the POSIX rm command.
func Rm(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "rm [-rf] FILE...",
		Short: "Remove files or directories.",
	}

	opts := cmd.Flags()
	recursive := opts.Bool('r', "remove directories and their contents recursively")
	force := opts.Bool('f', "ignore nonexistent files, never prompt")

	return cmd.RunEachArg(virtOS, func(arg string) error {
		info, err := virtOS.Stat(arg)
		if err != nil {
			if *force {
				return nil
			}
			return fmt.Errorf("cannot remove %q: No such file or directory", arg)
		}

		if info.IsDir() && !*recursive {
			return fmt.Errorf("cannot remove %q: Is a directory", arg)
		}

		if *recursive {
			return virtOS.RemoveAll(arg)
		}
		return virtOS.Remove(arg)
	})
}

// Rmdir implements the POSIX rmdir command: remove empty directories only.
func Rmdir(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "rmdir DIRECTORY...",
		Short: "Remove empty directories.",
	}

	return cmd.RunEachArg(virtOS, func(arg string) error {
		info, err := virtOS.Stat(arg)
		if err != nil {
			return fmt.Errorf("failed to remove %q: No such file or directory", arg)
		}
		if !info.IsDir() {
			return fmt.Errorf("failed to remove %q: Not a directory", arg)
		}

		fd, err := virtOS.Open(arg)
		if err != nil {
			return err
		}
		names, err := fd.Readdirnames(1)
		fd.Close()
		if err == nil && len(names) > 0 {
			return fmt.Errorf("failed to remove %q: %v", arg, syscall.ENOTEMPTY)
		}

		return virtOS.Remove(arg)
	})
}

var _ vos.ProcessFunc = Rm
var _ vos.ProcessFunc = Rmdir

func init() {
	register(&Command{
		Name:  "rm",
		Use:   "rm [-rf] FILE...",
		Short: "Remove files or directories.",
		Proc:  Rm,
	})
	register(&Command{
		Name:  "rmdir",
		Use:   "rmdir DIRECTORY...",
		Short: "Remove empty directories.",
		Proc:  Rmdir,
	})
}
