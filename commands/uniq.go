package commands

import (
	"fmt"

	"github.com/sandshell/sandshell/core/vos"
)

// Uniq implements the POSIX uniq command: filter adjacent repeated lines.
func Uniq(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "uniq [-cdu] [FILE]...",
		Short: "Report or omit adjacent repeated lines.",
	}

	opts := cmd.Flags()
	count := opts.Bool('c', "prefix lines by the number of occurrences")
	dupsOnly := opts.Bool('d', "only print duplicated lines")
	uniqueOnly := opts.Bool('u', "only print lines that are not repeated")

	return cmd.RunE(virtOS, func() error {
		input, err := readInput(virtOS, opts.Args())
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}

		lines, _ := splitLines(input)

		emit := func(line string, n int) {
			switch {
			case *dupsOnly && n < 2:
			case *uniqueOnly && n > 1:
			case *count:
				fmt.Fprintf(virtOS.Stdout(), "%7d %s\n", n, line)
			default:
				fmt.Fprintln(virtOS.Stdout(), line)
			}
		}

		run := 0
		for i, line := range lines {
			run++
			last := i == len(lines)-1
			if last || lines[i+1] != line {
				emit(line, run)
				run = 0
			}
		}
		return nil
	})
}

var _ vos.ProcessFunc = Uniq

func init() {
	register(&Command{
		Name:  "uniq",
		Use:   "uniq [-cdu] [FILE]...",
		Short: "Report or omit adjacent repeated lines.",
		Proc:  Uniq,
	})
}
