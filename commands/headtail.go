package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Head implements the POSIX head command.
func Head(virtOS vos.VOS) int {
	return headTail(virtOS, "head", "Output the first part of input.", false)
}

// Tail implements the POSIX tail command.
func Tail(virtOS vos.VOS) int {
	return headTail(virtOS, "tail", "Output the last part of input.", true)
}

func headTail(virtOS vos.VOS, name, short string, fromEnd bool) int {
	cmd := &SimpleCommand{
		Use:   name + " [-n COUNT] [FILE]...",
		Short: short,
	}

	opts := cmd.Flags()
	count := opts.Int('n', 10, "number of lines to print")

	return cmd.RunE(virtOS, func() error {
		if *count < 0 {
			return fmt.Errorf("invalid number of lines: %d", *count)
		}

		input, err := readInput(virtOS, opts.Args())
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}

		lines, trailing := splitLines(input)
		if len(lines) > *count {
			if fromEnd {
				lines = lines[len(lines)-*count:]
			} else {
				lines = lines[:*count]
				// Truncating always cuts mid-stream, the kept lines were
				// all newline terminated.
				trailing = true
			}
		}

		if len(lines) == 0 {
			return nil
		}
		fmt.Fprint(virtOS.Stdout(), joinLines(lines, trailing))
		return nil
	})
}

var _ vos.ProcessFunc = Head
var _ vos.ProcessFunc = Tail

func init() {
	register(&Command{
		Name:  "head",
		Use:   "head [-n COUNT] [FILE]...",
		Short: "Output the first part of input.",
		Proc:  Head,
	})
	register(&Command{
		Name:  "tail",
		Use:   "tail [-n COUNT] [FILE]...",
		Short: "Output the last part of input.",
		Proc:  Tail,
	})
}
