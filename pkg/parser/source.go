package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// FileSource implements LineSource over a single file decoded as Windows-1252.
// Lines of any length are accepted.
type FileSource struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	lineNum int
}

// OpenFile opens path for line-by-line reading.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	return &FileSource{
		path:   path,
		file:   f,
		reader: newDecodingReader(f),
	}, nil
}

// NewReaderSource wraps r the same way OpenFile wraps a file.
// Close does not close r.
func NewReaderSource(r io.Reader, name string) *FileSource {
	return &FileSource{
		path:   name,
		reader: newDecodingReader(r),
	}
}

// newDecodingReader maps legacy single-byte text to UTF-8 so that
// arbitrary bytes never abort scanning.
func newDecodingReader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(charmap.Windows1252.NewDecoder().Reader(r), 64*1024)
}

// Next returns the next decoded line, or io.EOF at end of input.
func (s *FileSource) Next(ctx context.Context) (*LogLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.reader == nil {
		return nil, io.EOF
	}

	text, err := s.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if err == io.EOF && text == "" {
		return nil, io.EOF
	}

	// Same terminator handling as bufio.ScanLines: "\n" or "\r\n".
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	s.lineNum++
	return &LogLine{
		Content: text,
		Source:  s.path,
		LineNum: s.lineNum,
	}, nil
}

// Close releases the underlying file, if any.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.reader = nil
		return err
	}
	return nil
}
