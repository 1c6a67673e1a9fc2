package wc

import (
	"fmt"
	"strings"
)

// Row is one output line: the enabled counts in display order and the label
// they are printed against.
type Row struct {
	Label  string
	Values []uint
}

func approxLog10(u uint) int {
	i := 1
	for u /= 10; u != 0; u /= 10 {
		i++
	}
	return i
}

// Values returns the enabled counts of r in display order.
func (r FileStats) Values(options Options) []uint {
	values := make([]uint, 0, len(order))
	for _, c := range order {
		switch c {
		case 'l':
			if options.GetBool(LineFlag) {
				values = append(values, r.Newlines)
			}
		case 'w':
			if options.GetBool(WordFlag) {
				values = append(values, r.Words)
			}
		case 'm':
			if options.GetBool(CharFlag) {
				values = append(values, r.Characters)
			}
		case 'c':
			if options.GetBool(ByteFlag) {
				values = append(values, r.Bytes)
			}
		case 'L':
			if options.GetBool(LongFlag) {
				values = append(values, r.Longest)
			}
		}
	}
	return values
}

func (rs ResultsSet) Rows(options Options) []Row {
	rows := make([]Row, 0, len(rs.Results))
	for _, r := range rs.Results {
		rows = append(rows, Row{Label: r.Filename, Values: r.Values(options)})
	}
	return rows
}

// Width is the number of digits in the widest value printed.
func (rs ResultsSet) Width(options Options) int {
	var max uint
	for _, r := range rs.Results {
		for _, v := range r.Values(options) {
			if v > max {
				max = v
			}
		}
	}
	return approxLog10(max)
}

// Printf prints all results based on format options
func (rs ResultsSet) Printf(options Options) string {
	builder := strings.Builder{}
	fmtstring := fmt.Sprintf("%%%dd", rs.Width(options))
	for _, row := range rs.Rows(options) {
		for i, v := range row.Values {
			if i != 0 {
				builder.WriteRune(' ')
			}
			builder.WriteString(fmt.Sprintf(fmtstring, v))
		}
		if !rs.HideNames {
			builder.WriteRune(' ')
			builder.WriteString(row.Label)
		}
		builder.WriteRune('\n')
	}
	return builder.String()
}

// Default layout
func (rs ResultsSet) String() string {
	return rs.Printf(Options{})
}
