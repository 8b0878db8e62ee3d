package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vos"
)

var colorBoldBlue = color.New(color.FgBlue, color.Bold)

// Ls implements a minimal ls command.
func Ls(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "ls [-al] [FILE]...",
		Short: "List directory contents.",
	}

	opts := cmd.Flags()
	all := opts.Bool('a', "do not ignore entries starting with .")
	long := opts.Bool('l', "use a long listing format")
	colorize := opts.EnumLong("color", rune(0),
		[]string{"always", "never"}, "never", "colorize the output (always|never)")

	return cmd.RunE(virtOS, func() error {
		paths := opts.Args()
		if len(paths) == 0 {
			paths = []string{"."}
		}

		w := virtOS.Stdout()
		for _, path := range paths {
			info, err := virtOS.Stat(path)
			if err != nil {
				return err
			}

			if !info.IsDir() {
				fmt.Fprintln(w, path)
				continue
			}

			entries, err := afero.ReadDir(virtOS, path)
			if err != nil {
				return err
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})

			for _, entry := range entries {
				name := entry.Name()
				if !*all && strings.HasPrefix(name, ".") {
					continue
				}
				if entry.IsDir() && *colorize == "always" {
					name = colorBoldBlue.Sprint(name)
				}

				if *long {
					fmt.Fprintf(w, "%s %8d %s %s\n",
						entry.Mode(), entry.Size(),
						entry.ModTime().Format("Jan _2 15:04"), name)
				} else {
					fmt.Fprintln(w, name)
				}
			}
		}
		return nil
	})
}

var _ vos.ProcessFunc = Ls

func init() {
	register(&Command{
		Name:  "ls",
		Use:   "ls [-al] [FILE]...",
		Short: "List directory contents.",
		Proc:  Ls,
	})
}
