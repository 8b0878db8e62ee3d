package interp

import "strings"

// Operator joins two adjacent segments of a compound line.
type Operator string

const (
	// OpNone marks the final segment of a line.
	OpNone Operator = ""
	// OpAnd runs the next segment only on success.
	OpAnd Operator = "&&"
	// OpOr runs the next segment only on failure.
	OpOr Operator = "||"
	// OpSeq always runs the next segment.
	OpSeq Operator = ";"
	// OpPipe feeds this segment's stdout to the next segment's stdin.
	OpPipe Operator = "|"
)

// Segment is one sub-command of a compound line. Op is the operator that
// follows the segment and governs whether and how the next one runs.
type Segment struct {
	Text string
	Op   Operator
}

// SplitCompound splits a raw line on top-level &&, ||, ; and | operators.
//
// Operators inside quotes are ignored. There is no grouping or precedence:
// "a && b || c" is three segments evaluated strictly left to right. The
// two-character operators are matched greedily so "||" is never read as
// two pipes.
func SplitCompound(line string) []Segment {
	var (
		segments []Segment
		start    int
		quote    byte
	)

	push := func(end int, op Operator) {
		text := strings.TrimSpace(line[start:end])
		if text != "" {
			segments = append(segments, Segment{Text: text, Op: op})
		} else if len(segments) > 0 && op != OpNone {
			// Dangling operator after an empty segment, e.g. "a && ; b":
			// reattach to the previous segment.
			segments[len(segments)-1].Op = op
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}

		case c == '\'' || c == '"':
			quote = c

		case c == '&' && i+1 < len(line) && line[i+1] == '&':
			push(i, OpAnd)
			i++
			start = i + 1

		case c == '|' && i+1 < len(line) && line[i+1] == '|':
			push(i, OpOr)
			i++
			start = i + 1

		case c == '|':
			push(i, OpPipe)
			start = i + 1

		case c == ';':
			push(i, OpSeq)
			start = i + 1
		}
	}
	push(len(line), OpNone)

	return segments
}
