package lib

import (
	"io"
	"os"

	"github.com/klauspost/readahead"
)

// Stdin is the operand naming standard input.
const Stdin = "-"

const (
	readaheadBuffers = 4
	readaheadSize    = 1 << 20
)

type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

// ParseFiles opens filename for reading and returns the label to report it
// under. '-' reads from stdin, which is never closed. Regular files are
// read ahead asynchronously; closing the result closes the file.
func ParseFiles(filename string, stdin io.Reader) (string, io.ReadCloser, error) {
	if filename == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		return Stdin, nopCloser{stdin}, nil
	}
	fd, err := os.Open(filename)
	if err != nil {
		return filename, nil, err
	}
	rc, err := readahead.NewReadCloserSize(fd, readaheadBuffers, readaheadSize)
	if err != nil {
		fd.Close()
		return filename, nil, err
	}
	return filename, rc, nil
}
