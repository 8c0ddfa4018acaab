package parser

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src LineSource) []*LogLine {
	t.Helper()

	var lines []*LogLine
	for {
		line, err := src.Next(context.Background())
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

func TestFileSource_Next(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "trace.log")
	content := "2024-01-15 10:00:00> First line\r\n2024-01-15 10:00:01> Second line\n\nlast without newline"
	require.NoError(t, os.WriteFile(logFile, []byte(content), 0644))

	src, err := OpenFile(logFile)
	require.NoError(t, err)
	defer src.Close()

	lines := readAll(t, src)
	require.Len(t, lines, 4)

	assert.Equal(t, "2024-01-15 10:00:00> First line", lines[0].Content)
	assert.Equal(t, 1, lines[0].LineNum)
	assert.Equal(t, logFile, lines[0].Source)
	assert.Equal(t, "", lines[2].Content)
	assert.Equal(t, "last without newline", lines[3].Content)
	assert.Equal(t, 4, lines[3].LineNum)
}

func TestFileSource_DecodesWindows1252(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "legacy.log")
	// 0xE9 is e-acute and 0x80 is the euro sign in Windows-1252; neither is valid UTF-8 here.
	content := []byte("2024-01-15 10:00:00> caf\xe9 \x80 START\n")
	require.NoError(t, os.WriteFile(logFile, content, 0644))

	src, err := OpenFile(logFile)
	require.NoError(t, err)
	defer src.Close()

	lines := readAll(t, src)
	require.Len(t, lines, 1)
	assert.Equal(t, "2024-01-15 10:00:00> café € START", lines[0].Content)
}

func TestFileSource_Empty(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "empty.log")
	require.NoError(t, os.WriteFile(logFile, nil, 0644))

	src, err := OpenFile(logFile)
	require.NoError(t, err)
	defer src.Close()

	assert.Empty(t, readAll(t, src))
}

func TestFileSource_VeryLongLine(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	content := "2024-01-15 10:00:00> START\n" + long + "\r\n2024-01-15 10:00:05> END"
	src := NewReaderSource(strings.NewReader(content), "long")

	lines := readAll(t, src)
	require.Len(t, lines, 3)
	assert.Len(t, lines[1].Content, len(long))
	assert.Equal(t, "2024-01-15 10:00:05> END", lines[2].Content)
	assert.Equal(t, 3, lines[2].LineNum)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestFileSource_ReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	src := NewReaderSource(failingReader{err: readErr}, "broken")

	_, err := src.Next(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "reading broken")
}

func TestFileSource_ContextCancelled(t *testing.T) {
	src := NewReaderSource(strings.NewReader("a\nb\n"), "reader")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSource_CloseTwice(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "a.log")
	require.NoError(t, os.WriteFile(logFile, []byte("a\n"), 0644))

	src, err := OpenFile(logFile)
	require.NoError(t, err)
	require.NoError(t, src.Close())
	assert.NoError(t, src.Close())

	_, err = src.Next(context.Background())
	assert.Equal(t, io.EOF, err)
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "trace.log")
	require.NoError(t, os.WriteFile(logFile, []byte("x\n"), 0644))

	assert.NoError(t, CheckFile(logFile))

	err := CheckFile(filepath.Join(dir, "nope.log"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "does not exist")

	err = CheckFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRegularFile)
	assert.Contains(t, err.Error(), "is not a file")
}
