package commands

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/sandshell/sandshell/core/vos"
)

// The sed engine is split into two stages so each is testable on its own:
// parseSedScript turns a script string into a sedSpec, applySed runs one
// spec over buffered input lines.

// addrKind discriminates the sed address forms.
type addrKind int

const (
	addrNone  addrKind = iota // no address, match every line
	addrLine                  // literal 1-based line number
	addrLast                  // $, accepted by the grammar but never matches
	addrRegex                 // /regex/ line content match
)

// sedAddress gates whether a verb applies to the current line.
type sedAddress struct {
	kind addrKind
	line int
	re   *regexp.Regexp // nil when the pattern failed to compile
}

// matches reports whether the address selects line number n (1-based) with
// the given content.
//
// The $ form always evaluates false: the reference behavior parses it but
// never matches it, and that quirk is preserved deliberately.
func (a *sedAddress) matches(n int, line string) bool {
	switch a.kind {
	case addrNone:
		return true
	case addrLine:
		return n == a.line
	case addrLast:
		return false
	case addrRegex:
		return a.re != nil && a.re.MatchString(line)
	}
	return false
}

// sedSpec is one parsed sed script: exactly one verb with an optional
// address.
type sedSpec struct {
	verb byte // one of s d p q a i c
	addr sedAddress

	// Substitute fields. A nil re with verb 's' means the pattern was
	// invalid: matching lines pass through unchanged rather than erroring.
	re          *regexp.Regexp
	replacement string
	global      bool

	// Text for the a, i and c verbs.
	text string
}

var errInvalidScript = errors.New("Invalid sed script")

// parseSedScript parses a script of the form [addr]verb[body].
func parseSedScript(script string) (*sedSpec, error) {
	spec := &sedSpec{}

	rest, err := parseSedAddress(script, &spec.addr)
	if err != nil {
		return nil, err
	}
	if rest == "" {
		return nil, errInvalidScript
	}

	spec.verb = rest[0]
	body := rest[1:]

	switch spec.verb {
	case 's':
		if err := parseSubstitution(body, spec); err != nil {
			return nil, err
		}

	case 'd', 'p', 'q':
		if strings.TrimSpace(body) != "" {
			return nil, errInvalidScript
		}

	case 'a', 'i', 'c':
		// Accept both "a\text" and "a text".
		text := body
		if strings.HasPrefix(text, "\\") {
			text = text[1:]
		} else if strings.HasPrefix(text, " ") {
			text = text[1:]
		}
		spec.text = text

	default:
		return nil, errInvalidScript
	}

	return spec, nil
}

// parseSedAddress strips a leading address from script, if any.
func parseSedAddress(script string, addr *sedAddress) (rest string, err error) {
	switch {
	case script == "":
		return "", errInvalidScript

	case script[0] >= '0' && script[0] <= '9':
		i := 0
		for i < len(script) && script[i] >= '0' && script[i] <= '9' {
			i++
		}
		n, err := strconv.Atoi(script[:i])
		if err != nil || n < 1 {
			return "", errInvalidScript
		}
		addr.kind = addrLine
		addr.line = n
		return script[i:], nil

	case script[0] == '$':
		addr.kind = addrLast
		return script[1:], nil

	case script[0] == '/':
		pattern, rest, ok := scanDelimited(script[1:], '/')
		if !ok {
			return "", errInvalidScript
		}
		addr.kind = addrRegex
		// An uncompilable address never matches; the script itself is
		// still accepted.
		addr.re, _ = regexp.Compile(pattern)
		return rest, nil

	default:
		addr.kind = addrNone
		return script, nil
	}
}

// parseSubstitution parses DELIM pat DELIM repl DELIM flags.
func parseSubstitution(body string, spec *sedSpec) error {
	if body == "" {
		return errInvalidScript
	}
	delim := body[0]
	if delim == '\\' || delim == '\n' {
		return errInvalidScript
	}

	pattern, rest, ok := scanDelimited(body[1:], delim)
	if !ok {
		return errInvalidScript
	}
	replacement, flags, ok := scanDelimited(rest, delim)
	if !ok {
		return errInvalidScript
	}

	ignoreCase := false
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'g':
			spec.global = true
		case 'i':
			ignoreCase = true
		default:
			return errInvalidScript
		}
	}

	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	// Invalid patterns leave re nil: apply passes lines through unchanged.
	spec.re, _ = regexp.Compile(pattern)
	spec.replacement = sedReplacementToGo(replacement)
	return nil
}

// scanDelimited reads up to the next unescaped delim, unescaping only the
// delimiter itself. Reports failure when the delimiter never appears.
func scanDelimited(s string, delim byte) (content, rest string, ok bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == delim {
			b.WriteByte(delim)
			i++
			continue
		}
		if c == delim {
			return b.String(), s[i+1:], true
		}
		b.WriteByte(c)
	}
	return "", "", false
}

// sedReplacementToGo converts sed replacement syntax to Go's: \1..\9
// become $1..$9, & becomes the whole match, and literal $ is escaped.
func sedReplacementToGo(repl string) string {
	var b strings.Builder
	b.Grow(len(repl))
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		switch {
		case c == '\\' && i+1 < len(repl):
			next := repl[i+1]
			switch {
			case next >= '1' && next <= '9':
				b.WriteByte('$')
				b.WriteByte(next)
			case next == 'n':
				b.WriteByte('\n')
			case next == 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(next)
			}
			i++
		case c == '&':
			b.WriteString("${0}")
		case c == '$':
			b.WriteString("$$")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// substitute applies the s verb to one line.
func (spec *sedSpec) substitute(line string) string {
	if spec.re == nil {
		return line
	}
	if spec.global {
		return spec.re.ReplaceAllString(line, spec.replacement)
	}

	loc := spec.re.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	expanded := spec.re.ExpandString(nil, spec.replacement, line, loc)
	return line[:loc[0]] + string(expanded) + line[loc[1]:]
}

// applySed runs one spec over the input lines. In quiet mode only lines
// emitted by the p verb appear. The q verb stops the line loop outright.
func applySed(spec *sedSpec, lines []string, quiet bool) []string {
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		matched := spec.addr.matches(i+1, line)

		switch spec.verb {
		case 's':
			result := line
			if matched {
				result = spec.substitute(line)
			}
			if !quiet {
				out = append(out, result)
			}

		case 'd':
			if !matched && !quiet {
				out = append(out, line)
			}

		case 'p':
			if !quiet {
				out = append(out, line)
			}
			if matched {
				out = append(out, line)
			}

		case 'q':
			if !quiet {
				out = append(out, line)
			}
			if matched {
				return out
			}

		case 'a':
			if !quiet {
				out = append(out, line)
				if matched {
					out = append(out, spec.text)
				}
			}

		case 'i':
			if !quiet {
				if matched {
					out = append(out, spec.text)
				}
				out = append(out, line)
			}

		case 'c':
			if !quiet {
				if matched {
					out = append(out, spec.text)
				} else {
					out = append(out, line)
				}
			}
		}
	}

	return out
}

// runSedScripts applies each script in sequence, the output of one feeding
// the next. The trailing-newline property of the original input is
// restored exactly once at the end.
func runSedScripts(scripts []string, input string, quiet bool) (string, error) {
	if input == "" {
		return "", nil
	}

	lines, trailingNewline := splitLines(input)

	for _, script := range scripts {
		spec, err := parseSedScript(strings.TrimSpace(script))
		if err != nil {
			return "", err
		}
		lines = applySed(spec, lines, quiet)
	}

	return joinLines(lines, trailingNewline), nil
}

// Sed implements a single-spec sed: one verb with an optional address per
// script, multiple scripts chained with -e.
func Sed(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "sed [-n] [-i] [-e SCRIPT]... [SCRIPT] [FILE]...",
		Short: "Stream editor for filtering and transforming text.",
	}

	opts := cmd.Flags()
	quiet := opts.Bool('n', "suppress automatic printing of lines")
	inPlace := opts.Bool('i', "edit files in place")
	expressions := opts.List('e', "add SCRIPT to the commands to be executed")

	return cmd.RunE(virtOS, func() error {
		args := opts.Args()

		scripts := *expressions
		if len(scripts) == 0 {
			if len(args) == 0 {
				return errors.New("missing script")
			}
			scripts = []string{args[0]}
			args = args[1:]
		}
		files := args

		for _, file := range files {
			if path.IsAbs(file) {
				return errors.New("absolute paths are not supported")
			}
		}
		if *inPlace && len(files) == 0 {
			return errors.New("-i requires file arguments")
		}

		input, err := readInput(virtOS, files)
		if err != nil {
			return err
		}

		output, err := runSedScripts(scripts, input, *quiet)
		if err != nil {
			return err
		}

		if *inPlace {
			for _, file := range files {
				if err := afero.WriteFile(virtOS, file, []byte(output), 0644); err != nil {
					return fmt.Errorf("couldn't write %s: %v", file, err)
				}
			}
			return nil
		}

		_, err = fmt.Fprint(virtOS.Stdout(), output)
		return err
	})
}

var _ vos.ProcessFunc = Sed

func init() {
	register(&Command{
		Name:  "sed",
		Use:   "sed [-n] [-i] [-e SCRIPT]... [SCRIPT] [FILE]...",
		Short: "Stream editor for filtering and transforming text.",
		Proc:  Sed,
	})
}
