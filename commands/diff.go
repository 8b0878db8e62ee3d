package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vos"
)

// Diff compares two files line by line. Exit code 0 means identical,
// 1 means differences were found, 2 means trouble.
func Diff(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "diff FILE1 FILE2",
		Short: "Compare two files line by line.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) != 2 {
			fmt.Fprintf(virtOS.Stderr(), "diff: %v\n", errors.New("expected two file operands"))
			return 2
		}

		var contents [2]string
		for i, name := range args {
			data, err := afero.ReadFile(virtOS, name)
			if err != nil {
				fmt.Fprintf(virtOS.Stderr(), "diff: %s: No such file or directory\n", name)
				return 2
			}
			contents[i] = string(data)
		}

		if contents[0] == contents[1] {
			return 0
		}

		// Line-level diff via the chars trick so the match granularity is
		// whole lines, not characters.
		dmp := diffmatchpatch.New()
		c1, c2, lineArray := dmp.DiffLinesToChars(contents[0], contents[1])
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lineArray)

		w := virtOS.Stdout()
		for _, d := range diffs {
			prefix := "  "
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				prefix = "< "
			case diffmatchpatch.DiffInsert:
				prefix = "> "
			case diffmatchpatch.DiffEqual:
				continue
			}

			for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
				fmt.Fprintf(w, "%s%s\n", prefix, line)
			}
		}
		return 1
	})
}

var _ vos.ProcessFunc = Diff

func init() {
	register(&Command{
		Name:  "diff",
		Use:   "diff FILE1 FILE2",
		Short: "Compare two files line by line.",
		Proc:  Diff,
	})
}
