package interp

import "strings"

// Tokenize splits a command segment into argument words.
//
// Single and double quotes group text including spaces; quotes themselves
// are stripped. There is no backslash escaping, quotes are the only
// grouping mechanism. An unterminated quote swallows the rest of the
// string into the final word rather than erroring.
func Tokenize(segment string) []string {
	var (
		tokens []string
		word   strings.Builder
		quote  rune // active quote character, 0 when outside quotes
		inWord bool
	)

	flush := func() {
		if inWord {
			tokens = append(tokens, word.String())
			word.Reset()
			inWord = false
		}
	}

	for _, r := range segment {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}

		case r == '\'' || r == '"':
			quote = r
			inWord = true // a quoted empty string is still a word

		case r == ' ' || r == '\t':
			flush()

		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	flush()

	return tokens
}
