package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sandshell/sandshell/core/vos"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
		`\\`, `\`,
		`\a`, "\a",
		`\b`, "\b",
		`\f`, "\f",
		`\v`, "\v",
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// Echo implements a limited echo command.
func Echo(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "echo [-ne] [ARG]...",
		Short: "Display a line of text.",
	}

	opt := cmd.Flags()
	noNewline := opt.Bool('n', "do not output the trailing newline")
	escaped := opt.Bool('e', "interpret backslash escapes")

	return cmd.Run(virtOS, func() int {
		w := virtOS.Stdout()
		for i, arg := range opt.Args() {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			if *escaped {
				arg = unescape(arg)
			}
			fmt.Fprint(w, arg)
		}
		if !*noNewline {
			fmt.Fprintln(w)
		}
		return 0
	})
}

var _ vos.ProcessFunc = Echo

func init() {
	register(&Command{
		Name:  "echo",
		Use:   "echo [-ne] [ARG]...",
		Short: "Display a line of text.",
		Proc:  Echo,
	})
}
