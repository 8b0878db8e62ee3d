package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandshell/sandshell/core/vos"
)

// fieldRange is a half-open selection parsed from a LIST argument like
// "1,3-5". Zero max means open-ended ("2-").
type fieldRange struct {
	min, max int
}

func (r fieldRange) contains(n int) bool {
	return n >= r.min && (r.max == 0 || n <= r.max)
}

// parseRangeList parses cut's LIST syntax: N, N-M, N-, -M, comma separated.
func parseRangeList(list string) ([]fieldRange, error) {
	var out []fieldRange
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New("empty list entry")
		}

		lo, hi, isRange := strings.Cut(part, "-")
		r := fieldRange{min: 1}
		if lo != "" {
			n, err := strconv.Atoi(lo)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid field value %q", part)
			}
			r.min = n
		}
		switch {
		case !isRange:
			r.max = r.min
		case hi != "":
			n, err := strconv.Atoi(hi)
			if err != nil || n < r.min {
				return nil, fmt.Errorf("invalid field range %q", part)
			}
			r.max = n
		}
		out = append(out, r)
	}
	return out, nil
}

func selected(ranges []fieldRange, n int) bool {
	for _, r := range ranges {
		if r.contains(n) {
			return true
		}
	}
	return false
}

// Cut implements the POSIX cut command for field (-f) and character (-c)
// selection.
func Cut(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cut -f LIST [-d DELIM] [FILE]... | cut -c LIST [FILE]...",
		Short: "Remove sections from each line of input.",
	}

	opts := cmd.Flags()
	fieldList := opts.String('f', "", "select only these fields")
	charList := opts.String('c', "", "select only these characters")
	delim := opts.String('d', "\t", "use DELIM instead of TAB as field delimiter")

	return cmd.RunE(virtOS, func() error {
		if (*fieldList == "") == (*charList == "") {
			return errors.New("specify exactly one of -f or -c")
		}

		list := *fieldList
		if list == "" {
			list = *charList
		}
		ranges, err := parseRangeList(list)
		if err != nil {
			return err
		}

		input, err := readInput(virtOS, opts.Args())
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}

		lines, trailing := splitLines(input)
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			if *charList != "" {
				var b strings.Builder
				for i, r := range []rune(line) {
					if selected(ranges, i+1) {
						b.WriteRune(r)
					}
				}
				out = append(out, b.String())
				continue
			}

			// Lines without the delimiter pass through whole.
			if !strings.Contains(line, *delim) {
				out = append(out, line)
				continue
			}

			var kept []string
			for i, field := range strings.Split(line, *delim) {
				if selected(ranges, i+1) {
					kept = append(kept, field)
				}
			}
			out = append(out, strings.Join(kept, *delim))
		}

		fmt.Fprint(virtOS.Stdout(), joinLines(out, trailing))
		return nil
	})
}

var _ vos.ProcessFunc = Cut

func init() {
	register(&Command{
		Name:  "cut",
		Use:   "cut -f LIST [-d DELIM] [FILE]...",
		Short: "Remove sections from each line of input.",
		Proc:  Cut,
	})
}
