package wc

import (
	"bufio"
	"context"
	"io"
)

const chunkSize = 32 * 1024

// Units is a stream of input units, each tagged with the source it came
// from. It is advanced like a bufio.Scanner.
type Units interface {
	// Scan advances to the next unit. It returns false at the end of the
	// stream or on the first read error.
	Scan() bool
	Source() string
	Unit() byte
	// Err returns the first non-EOF error encountered by Scan.
	Err() error
}

type unitReader struct {
	source string
	r      *bufio.Reader
	unit   byte
	err    error
}

// NewUnits returns the units of r, all tagged with source.
func NewUnits(source string, r io.Reader) Units {
	return &unitReader{source: source, r: bufio.NewReaderSize(r, chunkSize)}
}

func (u *unitReader) Scan() bool {
	if u.err != nil {
		return false
	}
	b, err := u.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			u.err = err
		}
		return false
	}
	u.unit = b
	return true
}

func (u *unitReader) Source() string { return u.source }
func (u *unitReader) Unit() byte     { return u.unit }
func (u *unitReader) Err() error     { return u.err }

type concat struct {
	units []Units
}

// Concat chains several streams into one, in order. It stops at the first
// stream that fails.
func Concat(units ...Units) Units {
	return &concat{units: units}
}

func (c *concat) Scan() bool {
	for len(c.units) > 0 {
		if c.units[0].Scan() {
			return true
		}
		if c.units[0].Err() != nil {
			return false
		}
		c.units = c.units[1:]
	}
	return false
}

func (c *concat) Source() string { return c.units[0].Source() }
func (c *concat) Unit() byte     { return c.units[0].Unit() }

func (c *concat) Err() error {
	if len(c.units) == 0 {
		return nil
	}
	return c.units[0].Err()
}

// Counter is the single pass counting engine. It holds the stats of the
// source being read plus the length of the current word and line; a source's
// FileStats are final once a different source is started or Close is called.
type Counter struct {
	bytes, chars, lines, words, longest bool

	results ResultsSet
	open    bool
	word    uint
	line    uint
}

func NewCounter(options Options) *Counter {
	return &Counter{
		bytes:   options.GetBool(ByteFlag),
		chars:   options.GetBool(CharFlag),
		lines:   options.GetBool(LineFlag),
		words:   options.GetBool(WordFlag),
		longest: options.GetBool(LongFlag),
	}
}

func (c *Counter) current() *FileStats {
	return &c.results.Results[len(c.results.Results)-1]
}

// flush closes out the pending word and line of the current source.
func (c *Counter) flush() {
	if !c.open {
		return
	}
	stats := c.current()
	if c.words && c.word > 0 {
		stats.Words++
	}
	if c.longest && c.line > stats.Longest {
		stats.Longest = c.line
	}
	c.word, c.line = 0, 0
	c.open = false
}

// Open finishes the current source and starts a new, empty one. Unlike Add it
// always starts a new entry, so a source named twice is counted twice.
func (c *Counter) Open(source string) {
	c.flush()
	c.results.Results = append(c.results.Results, FileStats{Filename: source})
	c.open = true
}

// Abort drops the source being read.
func (c *Counter) Abort() {
	if !c.open {
		return
	}
	c.results.Results = c.results.Results[:len(c.results.Results)-1]
	c.word, c.line = 0, 0
	c.open = false
}

// Add counts one unit of source, starting a new entry if source is not the
// one being read.
func (c *Counter) Add(source string, unit byte) {
	if !c.open || c.current().Filename != source {
		c.Open(source)
	}
	c.step(c.current(), unit)
}

func (c *Counter) step(stats *FileStats, unit byte) {
	if c.bytes {
		stats.Bytes++
	}
	if c.chars {
		stats.Characters++
	}
	if unit == '\n' {
		if c.lines {
			stats.Newlines++
		}
		if c.longest && c.line > stats.Longest {
			stats.Longest = c.line
		}
		c.line = 0
	} else {
		c.line++
	}
	if isSpace(unit) {
		if c.words && c.word > 0 {
			stats.Words++
		}
		c.word = 0
	} else {
		c.word++
	}
}

// ReadFrom counts everything in r as a new source. On a read error, or when
// ctx is done, the source is dropped and the error returned.
func (c *Counter) ReadFrom(ctx context.Context, source string, r io.Reader) (n int64, err error) {
	c.Open(source)
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			c.Abort()
			return n, err
		}
		m, err := r.Read(buf)
		stats := c.current()
		for _, b := range buf[:m] {
			c.step(stats, b)
		}
		n += int64(m)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			c.Abort()
			return n, err
		}
	}
}

// Close finishes the last source and returns the stats of every source in
// the order they were started. The Counter is empty afterwards.
func (c *Counter) Close() ResultsSet {
	c.flush()
	rs := c.results
	c.results = ResultsSet{}
	return rs
}

// Count runs a fresh Counter over units. If units fails, the source it failed
// in is dropped and the sources before it are returned with the error. If ctx
// is done nothing is returned.
func Count(ctx context.Context, units Units, options Options) (ResultsSet, error) {
	c := NewCounter(options)
	for n := 0; ; n++ {
		if n%chunkSize == 0 {
			if err := ctx.Err(); err != nil {
				return ResultsSet{}, err
			}
		}
		if !units.Scan() {
			break
		}
		c.Add(units.Source(), units.Unit())
	}
	if err := units.Err(); err != nil {
		if c.open && c.current().Filename == units.Source() {
			c.Abort()
		}
		return c.Close(), err
	}
	return c.Close(), nil
}

// WordCount counts a single reader.
func WordCount(options Options, in io.Reader) (FileStats, error) {
	c := NewCounter(options)
	if _, err := c.ReadFrom(context.Background(), "", in); err != nil {
		return FileStats{}, err
	}
	return c.Close().Results[0], nil
}
