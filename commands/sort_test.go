package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	cases := []struct {
		name  string
		argv  []string
		stdin string
		want  string
	}{
		{
			name:  "lexicographic",
			argv:  []string{"sort"},
			stdin: "banana\napple\ncherry\n",
			want:  "apple\nbanana\ncherry\n",
		},
		{
			name:  "reverse",
			argv:  []string{"sort", "-r"},
			stdin: "a\nc\nb\n",
			want:  "c\nb\na\n",
		},
		{
			name:  "numeric",
			argv:  []string{"sort", "-n"},
			stdin: "10\n9\n2\n",
			want:  "2\n9\n10\n",
		},
		{
			name:  "numeric puts numbers before words",
			argv:  []string{"sort", "-n"},
			stdin: "word\n3\n",
			want:  "3\nword\n",
		},
		{
			name:  "unique",
			argv:  []string{"sort", "-u"},
			stdin: "b\na\nb\na\n",
			want:  "a\nb\n",
		},
		{
			name:  "combined -rnu",
			argv:  []string{"sort", "-rnu"},
			stdin: "3\n1\n2\n2\n10\n",
			want:  "10\n3\n2\n1\n",
		},
		{
			name:  "missing trailing newline still terminates output",
			argv:  []string{"sort"},
			stdin: "b\na",
			want:  "a\nb\n",
		},
		{
			name:  "empty input",
			argv:  []string{"sort"},
			stdin: "",
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := combinedOutput(t, Sort, tc.stdin, tc.argv...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tc.want, out)
		})
	}
}
