package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/sandshell/sandshell/core/vos"
)

// expandSet expands tr set syntax: a-z ranges and literal characters.
func expandSet(set string) []rune {
	runes := []rune(set)
	var out []rune
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '-' && runes[i+2] >= runes[i] {
			for r := runes[i]; r <= runes[i+2]; r++ {
				out = append(out, r)
			}
			i += 2
			continue
		}
		out = append(out, runes[i])
	}
	return out
}

// Tr implements the POSIX tr command: translate or delete characters from
// standard input.
func Tr(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "tr [-d] SET1 [SET2]",
		Short: "Translate or delete characters.",
	}

	opts := cmd.Flags()
	del := opts.Bool('d', "delete characters in SET1")

	return cmd.RunE(virtOS, func() error {
		args := opts.Args()

		data, err := io.ReadAll(virtOS.Stdin())
		if err != nil {
			return err
		}
		input := string(data)

		switch {
		case *del:
			if len(args) != 1 {
				return errors.New("-d requires exactly one set")
			}
			drop := make(map[rune]bool)
			for _, r := range expandSet(args[0]) {
				drop[r] = true
			}

			var b strings.Builder
			for _, r := range input {
				if !drop[r] {
					b.WriteRune(r)
				}
			}
			input = b.String()

		default:
			if len(args) != 2 {
				return errors.New("two sets required")
			}
			from := expandSet(args[0])
			to := expandSet(args[1])
			if len(to) == 0 {
				return errors.New("SET2 must not be empty")
			}

			mapping := make(map[rune]rune, len(from))
			for i, r := range from {
				// SET2 is padded with its last character, as in POSIX tr.
				if i < len(to) {
					mapping[r] = to[i]
				} else {
					mapping[r] = to[len(to)-1]
				}
			}

			var b strings.Builder
			for _, r := range input {
				if mapped, ok := mapping[r]; ok {
					b.WriteRune(mapped)
				} else {
					b.WriteRune(r)
				}
			}
			input = b.String()
		}

		_, err = io.WriteString(virtOS.Stdout(), input)
		return err
	})
}

var _ vos.ProcessFunc = Tr

func init() {
	register(&Command{
		Name:  "tr",
		Use:   "tr [-d] SET1 [SET2]",
		Short: "Translate or delete characters.",
		Proc:  Tr,
	})
}
