package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sandshell/sandshell/core/vos"
)

// Sort implements the POSIX sort command with the -n, -r and -u flags,
// combinable as e.g. -rnu.
func Sort(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "sort [-nru] [FILE]...",
		Short: "Sort lines of text.",
	}

	opts := cmd.Flags()
	numeric := opts.Bool('n', "compare according to string numerical value")
	reverse := opts.Bool('r', "reverse the result of comparisons")
	unique := opts.Bool('u', "output only the first of equal lines")

	return cmd.RunE(virtOS, func() error {
		input, err := readInput(virtOS, opts.Args())
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}

		lines, _ := splitLines(input)

		less := func(a, b string) bool { return a < b }
		if *numeric {
			less = func(a, b string) bool {
				na, aerr := strconv.ParseFloat(a, 64)
				nb, berr := strconv.ParseFloat(b, 64)
				switch {
				case aerr == nil && berr == nil:
					return na < nb
				case aerr == nil:
					return true // numbers sort before non-numbers
				case berr == nil:
					return false
				default:
					return a < b
				}
			}
		}

		sort.SliceStable(lines, func(i, j int) bool {
			if *reverse {
				return less(lines[j], lines[i])
			}
			return less(lines[i], lines[j])
		})

		if *unique {
			deduped := lines[:0]
			for i, line := range lines {
				if i == 0 || line != lines[i-1] {
					deduped = append(deduped, line)
				}
			}
			lines = deduped
		}

		for _, line := range lines {
			fmt.Fprintln(virtOS.Stdout(), line)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Sort

func init() {
	register(&Command{
		Name:  "sort",
		Use:   "sort [-nru] [FILE]...",
		Short: "Sort lines of text.",
		Proc:  Sort,
	})
}
