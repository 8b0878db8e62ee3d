package commands

import (
	"encoding/hex"
	"io"

	"github.com/sandshell/sandshell/core/vos"
)

// Hexdump implements hexdump -C style canonical hex+ASCII output.
func Hexdump(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "hexdump [-C] [FILE]...",
		Short: "Display input in hexadecimal.",
	}

	// The only supported format is canonical; the flag exists for muscle
	// memory.
	cmd.Flags().Bool('C', "canonical hex+ASCII display")

	return cmd.Run(virtOS, func() int {
		files := cmd.Flags().Args()
		return cmd.RunEachFileOrStdin(virtOS, files, func(name string, fd io.Reader) error {
			dumper := hex.Dumper(virtOS.Stdout())
			defer dumper.Close()
			_, err := io.Copy(dumper, fd)
			return err
		})
	})
}

var _ vos.ProcessFunc = Hexdump

func init() {
	register(&Command{
		Name:  "hexdump",
		Use:   "hexdump [-C] [FILE]...",
		Short: "Display input in hexadecimal.",
		Proc:  Hexdump,
	})
}
