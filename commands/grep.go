package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/sandshell/sandshell/core/vos"
)

// Grep implements the POSIX grep command.
//
// An invalid pattern is matched as a literal substring instead of
// reporting an error.
func Grep(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "grep [-ivnc] PATTERN [FILE]...",
		Short: "Search input for lines matching a pattern.",
	}

	opts := cmd.Flags()
	ignoreCase := opts.Bool('i', "perform case insensitive matching")
	invert := opts.Bool('v', "select non-matching lines")
	showLineNumbers := opts.Bool('n', "prefix each line with its line number")
	countOnly := opts.Bool('c', "print only a count of matching lines")

	return cmd.Run(virtOS, func() int {
		args := opts.Args()
		if len(args) == 0 {
			fmt.Fprintf(virtOS.Stderr(), "grep: %v\n", errors.New("missing argument PATTERN"))
			return 2
		}

		pattern := args[0]
		if *ignoreCase {
			pattern = "(?i)" + pattern
		}
		regex, err := regexp.Compile(pattern)
		if err != nil {
			regex = regexp.MustCompile(regexp.QuoteMeta(args[0]))
		}

		files := args[1:]
		showFileName := len(files) > 1

		anyMatched := false
		exitCode := cmd.RunEachFileOrStdin(virtOS, files, func(name string, fd io.Reader) error {
			w := virtOS.Stdout()

			scanner := bufio.NewScanner(fd)
			lineNo := 1
			matches := 0
			for scanner.Scan() {
				line := scanner.Bytes()
				lineMatches := regex.Match(line)

				if lineMatches != *invert {
					matches++
					anyMatched = true
					if !*countOnly {
						if showFileName {
							fmt.Fprintf(w, "%s:", name)
						}
						if *showLineNumbers {
							fmt.Fprintf(w, "%d:", lineNo)
						}
						fmt.Fprintf(w, "%s\n", line)
					}
				}
				lineNo++
			}

			if *countOnly {
				if showFileName {
					fmt.Fprintf(w, "%s:", name)
				}
				fmt.Fprintf(w, "%d\n", matches)
			}
			return scanner.Err()
		})

		if exitCode != 0 {
			return exitCode
		}
		if !anyMatched {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Grep

func init() {
	register(&Command{
		Name:  "grep",
		Use:   "grep [-ivnc] PATTERN [FILE]...",
		Short: "Search input for lines matching a pattern.",
		Proc:  Grep,
	})
}
