package wc

import (
	"io"
)

// order is the fixed display order: newline, word, character, byte,
// maximum line length.
const order = "lwmcL"

const (
	LineFlag = "lines"
	ByteFlag = "bytes"
	WordFlag = "words"
	CharFlag = "chars"
	LongFlag = "max-line-length"
)

// Options selects the counts to report and where to read and write.
type Options struct {
	Bytes, Characters, Newlines, Words, Longest bool

	Help, Version bool

	Files  []string
	Stdin  io.Reader
	Stdout io.Writer
}

// NFlag is the number of counts explicitly selected.
func (wo Options) NFlag() uint {
	var n uint
	for _, set := range []bool{wo.Bytes, wo.Characters, wo.Newlines, wo.Words, wo.Longest} {
		if set {
			n++
		}
	}
	return n
}

// GetBool reports whether the count named by flag is enabled. With no count
// selected, lines, words and bytes are.
func (wo Options) GetBool(flag string) bool {
	switch flag {
	case ByteFlag:
		return wo.NFlag() == 0 || wo.Bytes
	case CharFlag:
		return wo.Characters
	case WordFlag:
		return wo.NFlag() == 0 || wo.Words
	case LineFlag:
		return wo.NFlag() == 0 || wo.Newlines
	case LongFlag:
		return wo.Longest
	default:
		return false
	}
}

// FileStats are the totals for one source. Counts that were not enabled stay
// zero.
type FileStats struct {
	Bytes, Characters, Newlines, Words, Longest uint

	Filename string
}

// isSpace is the C locale whitespace class.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
