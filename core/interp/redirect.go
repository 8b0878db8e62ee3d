package interp

import "strings"

// Redirect describes a trailing output redirection on a segment.
type Redirect struct {
	// Append selects >> over >.
	Append bool
	// Target is the destination path with one layer of surrounding quotes
	// removed.
	Target string
}

// ExtractRedirect strips a trailing unquoted > or >> redirection from a
// segment and returns the remaining command text.
//
// The scan tracks quote state independently of tokenization so that
// operator characters inside quoted strings (echo "a > b") are left alone.
// Only the first redirection is honored.
func ExtractRedirect(segment string) (command string, redirect *Redirect) {
	var quote byte

	for i := 0; i < len(segment); i++ {
		c := segment[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}

		case c == '\'' || c == '"':
			quote = c

		case c == '>':
			command = strings.TrimSpace(segment[:i])
			rest := segment[i+1:]

			redirect = &Redirect{}
			if strings.HasPrefix(rest, ">") {
				redirect.Append = true
				rest = rest[1:]
			}
			redirect.Target = unquote(strings.TrimSpace(rest))
			return command, redirect
		}
	}

	return strings.TrimSpace(segment), nil
}

// unquote removes one layer of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
