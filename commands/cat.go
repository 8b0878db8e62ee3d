package commands

import (
	"io"

	"github.com/sandshell/sandshell/core/vos"
)

// Cat implements the POSIX cat command.
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate files to standard output.",
	}

	return cmd.Run(virtOS, func() int {
		files := cmd.Flags().Args()
		return cmd.RunEachFileOrStdin(virtOS, files, func(name string, fd io.Reader) error {
			_, err := io.Copy(virtOS.Stdout(), fd)
			return err
		})
	})
}

var _ vos.ProcessFunc = Cat

func init() {
	register(&Command{
		Name:  "cat",
		Use:   "cat [FILE]...",
		Short: "Concatenate files to standard output.",
		Proc:  Cat,
	})
}
