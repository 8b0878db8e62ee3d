package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name    string
		segment string
		want    []string
	}{
		{
			name:    "plain words",
			segment: "echo hello world",
			want:    []string{"echo", "hello", "world"},
		},
		{
			name:    "collapses runs of whitespace",
			segment: "  echo \t hello  ",
			want:    []string{"echo", "hello"},
		},
		{
			name:    "double quotes group spaces",
			segment: `echo "hello world"`,
			want:    []string{"echo", "hello world"},
		},
		{
			name:    "single quotes group spaces",
			segment: "echo 'hello world'",
			want:    []string{"echo", "hello world"},
		},
		{
			name:    "quotes joined to adjacent text",
			segment: `echo pre"mid"post`,
			want:    []string{"echo", "premidpost"},
		},
		{
			name:    "quoted empty string is a word",
			segment: `echo ""`,
			want:    []string{"echo", ""},
		},
		{
			name:    "single quotes inside double quotes",
			segment: `echo "it's fine"`,
			want:    []string{"echo", "it's fine"},
		},
		{
			name:    "no backslash escaping",
			segment: `echo a\ b`,
			want:    []string{"echo", `a\`, "b"},
		},
		{
			name:    "unterminated quote swallows the rest",
			segment: `echo "unterminated rest`,
			want:    []string{"echo", "unterminated rest"},
		},
		{
			name:    "empty segment",
			segment: "   ",
			want:    nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.segment))
		})
	}
}
