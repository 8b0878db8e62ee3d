package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/sandshell/sandshell/core/vos"
)

type wcCount struct {
	lines int
	words int
	bytes int
	name  string

	inSpace bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		isFirstByte := w.bytes == 0
		w.bytes++

		if c == '\n' {
			w.lines++
		}

		if unicode.IsSpace(rune(c)) {
			w.inSpace = true
		} else {
			if w.inSpace || isFirstByte {
				w.words++
			}
			w.inSpace = false
		}
	}
	return len(data), nil
}

func (w *wcCount) add(other *wcCount) {
	w.lines += other.lines
	w.words += other.words
	w.bytes += other.bytes
}

// Wc implements the POSIX wc command.
func Wc(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "wc [-lwc] [FILE]...",
		Short: "Count newlines, words, and bytes.",
	}

	opts := cmd.Flags()
	printLines := opts.Bool('l', "write the newline count")
	printWords := opts.Bool('w', "write the word count")
	printBytes := opts.Bool('c', "write the byte count")

	return cmd.Run(virtOS, func() int {
		nonePicked := !(*printLines || *printWords || *printBytes)

		display := func(count *wcCount) {
			var cols []string
			if *printLines || nonePicked {
				cols = append(cols, fmt.Sprint(count.lines))
			}
			if *printWords || nonePicked {
				cols = append(cols, fmt.Sprint(count.words))
			}
			if *printBytes || nonePicked {
				cols = append(cols, fmt.Sprint(count.bytes))
			}
			if count.name != "" && count.name != "-" {
				cols = append(cols, count.name)
			}
			fmt.Fprintln(virtOS.Stdout(), strings.Join(cols, " "))
		}

		files := opts.Args()
		total := &wcCount{name: "total"}
		counted := 0

		exitCode := cmd.RunEachFileOrStdin(virtOS, files, func(name string, fd io.Reader) error {
			count := &wcCount{name: name}
			if _, err := io.Copy(count, fd); err != nil {
				return err
			}
			display(count)
			total.add(count)
			counted++
			return nil
		})

		if counted > 1 {
			display(total)
		}
		return exitCode
	})
}

var _ vos.ProcessFunc = Wc

func init() {
	register(&Command{
		Name:  "wc",
		Use:   "wc [-lwc] [FILE]...",
		Short: "Count newlines, words, and bytes.",
		Proc:  Wc,
	})
}
