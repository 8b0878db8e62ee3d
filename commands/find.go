package commands

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vos"
)

// Find implements a subset of the POSIX find command: -name and -type
// filters over a recursive walk. The expression syntax predates getopt
// conventions, so arguments are scanned by hand.
func Find(virtOS vos.VOS) int {
	args := virtOS.Args()[1:]

	root := "."
	namePattern := ""
	typeFilter := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-name":
			i++
			if i >= len(args) {
				fmt.Fprintln(virtOS.Stderr(), "find: missing argument to `-name'")
				return 1
			}
			namePattern = args[i]
		case "-type":
			i++
			if i >= len(args) || (args[i] != "f" && args[i] != "d") {
				fmt.Fprintln(virtOS.Stderr(), "find: invalid argument to `-type'")
				return 1
			}
			typeFilter = args[i]
		default:
			root = args[i]
		}
	}

	if _, err := virtOS.Stat(root); err != nil {
		fmt.Fprintf(virtOS.Stderr(), "find: %q: No such file or directory\n", root)
		return 1
	}

	err := afero.Walk(virtOS, root, func(walkPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		switch typeFilter {
		case "f":
			if info.IsDir() {
				return nil
			}
		case "d":
			if !info.IsDir() {
				return nil
			}
		}

		if namePattern != "" {
			matched, err := path.Match(namePattern, path.Base(walkPath))
			if err != nil {
				return fmt.Errorf("invalid pattern %q", namePattern)
			}
			if !matched {
				return nil
			}
		}

		fmt.Fprintln(virtOS.Stdout(), walkPath)
		return nil
	})
	if err != nil {
		fmt.Fprintf(virtOS.Stderr(), "find: %v\n", err)
		return 1
	}
	return 0
}

var _ vos.ProcessFunc = Find

func init() {
	register(&Command{
		Name:  "find",
		Use:   "find [PATH] [-name PATTERN] [-type f|d]",
		Short: "Search for files in a directory hierarchy.",
		Proc:  Find,
	})
}
