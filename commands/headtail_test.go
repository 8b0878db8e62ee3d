package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHead(t *testing.T) {
	stdin := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"

	cases := []struct {
		name  string
		argv  []string
		stdin string
		want  string
		code  int
	}{
		{
			name:  "default ten lines",
			argv:  []string{"head"},
			stdin: stdin,
			want:  "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n",
		},
		{
			name:  "explicit count",
			argv:  []string{"head", "-n", "2"},
			stdin: stdin,
			want:  "1\n2\n",
		},
		{
			name:  "count larger than input",
			argv:  []string{"head", "-n", "100"},
			stdin: "a\nb",
			want:  "a\nb",
		},
		{
			name:  "zero lines",
			argv:  []string{"head", "-n", "0"},
			stdin: stdin,
			want:  "",
		},
		{
			name:  "negative count",
			argv:  []string{"head", "-n", "-1"},
			stdin: stdin,
			code:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := combinedOutput(t, Head, tc.stdin, tc.argv...)
			assert.Equal(t, tc.code, code)
			if tc.code == 0 {
				assert.Equal(t, tc.want, out)
			}
		})
	}
}

func TestTail(t *testing.T) {
	cases := []struct {
		name  string
		argv  []string
		stdin string
		want  string
	}{
		{
			name:  "explicit count",
			argv:  []string{"tail", "-n", "2"},
			stdin: "1\n2\n3\n4\n",
			want:  "3\n4\n",
		},
		{
			name:  "preserves missing trailing newline",
			argv:  []string{"tail", "-n", "2"},
			stdin: "1\n2\n3",
			want:  "2\n3",
		},
		{
			name:  "count larger than input",
			argv:  []string{"tail", "-n", "100"},
			stdin: "a\nb\n",
			want:  "a\nb\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := combinedOutput(t, Tail, tc.stdin, tc.argv...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tc.want, out)
		})
	}
}
