package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sandshell/sandshell/core/vos"
)

// Touch implements a POSIX touch command.
func Touch(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "touch [-c] FILE...",
		Short: "Update file modification times, creating missing files.",
	}

	noCreate := cmd.Flags().BoolLong("no-create", 'c', "don't create files")

	return cmd.Run(virtOS, func() int {
		now := virtOS.Now()

		var anyFailed bool
		for _, path := range cmd.Flags().Args() {
			err := virtOS.Chtimes(path, now, now)
			switch {
			case errors.Is(err, fs.ErrNotExist) && !*noCreate:
				fd, err := virtOS.Create(path)
				if err != nil {
					fmt.Fprintf(virtOS.Stderr(), "touch: cannot touch %q: %s\n", path, err)
					anyFailed = true
					continue
				}
				fd.Close()
			case errors.Is(err, fs.ErrNotExist) && *noCreate:
				// Not an error.
			case err != nil:
				fmt.Fprintf(virtOS.Stderr(), "touch: setting times of %q: %s\n", path, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Touch

func init() {
	register(&Command{
		Name:  "touch",
		Use:   "touch [-c] FILE...",
		Short: "Update file modification times, creating missing files.",
		Proc:  Touch,
	})
}
