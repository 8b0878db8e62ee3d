package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeList(t *testing.T) {
	cases := []struct {
		list    string
		wantErr bool
		want    []fieldRange
	}{
		{list: "1", want: []fieldRange{{1, 1}}},
		{list: "1,3", want: []fieldRange{{1, 1}, {3, 3}}},
		{list: "2-4", want: []fieldRange{{2, 4}}},
		{list: "2-", want: []fieldRange{{2, 0}}},
		{list: "-3", want: []fieldRange{{1, 3}}},
		{list: "", wantErr: true},
		{list: "0", wantErr: true},
		{list: "4-2", wantErr: true},
		{list: "a", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.list, func(t *testing.T) {
			got, err := parseRangeList(tc.list)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCut(t *testing.T) {
	cases := []struct {
		name  string
		argv  []string
		stdin string
		want  string
		code  int
	}{
		{
			name:  "fields with delimiter",
			argv:  []string{"cut", "-d", ":", "-f", "1"},
			stdin: "root:x:0\nuser:y:1\n",
			want:  "root\nuser\n",
		},
		{
			name:  "field range",
			argv:  []string{"cut", "-d", ",", "-f", "2-3"},
			stdin: "a,b,c,d\n",
			want:  "b,c\n",
		},
		{
			name:  "line without delimiter passes through",
			argv:  []string{"cut", "-d", ":", "-f", "2"},
			stdin: "no delimiter here\n",
			want:  "no delimiter here\n",
		},
		{
			name:  "characters",
			argv:  []string{"cut", "-c", "1-3"},
			stdin: "abcdef\n",
			want:  "abc\n",
		},
		{
			name:  "open ended characters",
			argv:  []string{"cut", "-c", "3-"},
			stdin: "abcdef\n",
			want:  "cdef\n",
		},
		{
			name: "neither flag",
			argv: []string{"cut"},
			code: 1,
		},
		{
			name: "both flags",
			argv: []string{"cut", "-f", "1", "-c", "1"},
			code: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := combinedOutput(t, Cut, tc.stdin, tc.argv...)
			assert.Equal(t, tc.code, code)
			if tc.code == 0 {
				assert.Equal(t, tc.want, out)
			}
		})
	}
}
