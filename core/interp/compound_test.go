package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCompound(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []Segment
	}{
		{
			name: "single command",
			line: "echo hello",
			want: []Segment{{Text: "echo hello", Op: OpNone}},
		},
		{
			name: "and chain",
			line: "a && b",
			want: []Segment{{Text: "a", Op: OpAnd}, {Text: "b", Op: OpNone}},
		},
		{
			name: "or chain",
			line: "a || b",
			want: []Segment{{Text: "a", Op: OpOr}, {Text: "b", Op: OpNone}},
		},
		{
			name: "sequence",
			line: "a ; b;c",
			want: []Segment{
				{Text: "a", Op: OpSeq},
				{Text: "b", Op: OpSeq},
				{Text: "c", Op: OpNone},
			},
		},
		{
			name: "pipe",
			line: "a | b",
			want: []Segment{{Text: "a", Op: OpPipe}, {Text: "b", Op: OpNone}},
		},
		{
			name: "double pipe is or not two pipes",
			line: "a||b",
			want: []Segment{{Text: "a", Op: OpOr}, {Text: "b", Op: OpNone}},
		},
		{
			name: "mixed operators stay flat",
			line: "a && b || c ; d",
			want: []Segment{
				{Text: "a", Op: OpAnd},
				{Text: "b", Op: OpOr},
				{Text: "c", Op: OpSeq},
				{Text: "d", Op: OpNone},
			},
		},
		{
			name: "operators inside double quotes",
			line: `echo "a && b" ; c`,
			want: []Segment{
				{Text: `echo "a && b"`, Op: OpSeq},
				{Text: "c", Op: OpNone},
			},
		},
		{
			name: "operators inside single quotes",
			line: "echo 'x | y'",
			want: []Segment{{Text: "echo 'x | y'", Op: OpNone}},
		},
		{
			name: "leading operator drops empty segment",
			line: "; a",
			want: []Segment{{Text: "a", Op: OpNone}},
		},
		{
			name: "dangling operator reattaches",
			line: "a && ; b",
			want: []Segment{{Text: "a", Op: OpSeq}, {Text: "b", Op: OpNone}},
		},
		{
			name: "empty line",
			line: "   ",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitCompound(tc.line))
		})
	}
}
