package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		escaped  string
		expected string
	}{
		{"not escaped", "not escaped"},
		{`newline\n`, "newline\n"},
		{`tab\there`, "tab\there"},
		{`double-escape\\n`, `double-escape\n`},
		// Octal
		{`\07`, string(rune(7))},
		{`\011`, "\t"},
		{`\0101`, "A"},
		// Hex
		{`\x7`, string(rune(07))},
		{`\x9`, "\t"},
		{`\x4A`, "J"},
	}

	for _, tc := range cases {
		t.Run(tc.escaped, func(t *testing.T) {
			assert.Equal(t, tc.expected, unescape(tc.escaped))
		})
	}
}

func TestEcho(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		want string
	}{
		{
			name: "joins arguments",
			argv: []string{"echo", "hello", "world"},
			want: "hello world\n",
		},
		{
			name: "no arguments prints newline",
			argv: []string{"echo"},
			want: "\n",
		},
		{
			name: "suppressed newline",
			argv: []string{"echo", "-n", "hi"},
			want: "hi",
		},
		{
			name: "escapes off by default",
			argv: []string{"echo", `a\tb`},
			want: `a\tb` + "\n",
		},
		{
			name: "escapes with -e",
			argv: []string{"echo", "-e", `a\tb`},
			want: "a\tb\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := combinedOutput(t, Echo, "", tc.argv...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tc.want, out)
		})
	}
}
