package scanner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/phuslu/log"

	"github.com/ccollicutt/logdelta/pkg/parser"
)

// Scanner measures the time between a "from" and a "to" marker line.
// A Scanner holds no per-scan state and may be reused.
type Scanner struct {
	from MatchSpec
	to   MatchSpec

	fromMatcher Matcher
	toMatcher   Matcher
	extractor   parser.TimestampExtractor

	regex  bool
	logger *log.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRegex treats both patterns as regular expressions and reads
// timestamps from anywhere in a matched line.
func WithRegex(regex bool) Option {
	return func(s *Scanner) {
		s.regex = regex
	}
}

// WithLogger logs every matched line at info level.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner. Patterns are compiled here, before any file is touched.
func New(from, to MatchSpec, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		from: from,
		to:   to,
	}

	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.fromMatcher, err = CompileMatcher(SideFrom, from, s.regex); err != nil {
		return nil, err
	}
	if s.toMatcher, err = CompileMatcher(SideTo, to, s.regex); err != nil {
		return nil, err
	}
	s.extractor = parser.NewTimestampExtractor(s.regex)

	return s, nil
}

// Scan is the one-shot form of New followed by ScanFile.
func Scan(ctx context.Context, path string, from, to MatchSpec, useRegex bool) (time.Duration, error) {
	s, err := New(from, to, WithRegex(useRegex))
	if err != nil {
		return 0, err
	}

	result, err := s.ScanFile(ctx, path)
	if err != nil {
		return 0, err
	}
	return result.Duration, nil
}

// ScanFile checks that path is a regular file and scans it.
func (s *Scanner) ScanFile(ctx context.Context, path string) (*Result, error) {
	if err := parser.CheckFile(path); err != nil {
		return nil, err
	}

	src, err := parser.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result, err := s.ScanSource(ctx, src)
	if err != nil {
		return nil, err
	}
	result.Source = path
	return result, nil
}

// Scan reads lines from r, decoded the same way as files.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) (*Result, error) {
	return s.ScanSource(ctx, parser.NewReaderSource(r, "<reader>"))
}

// ScanSource runs the scan over src until the "to" marker settles or input ends.
func (s *Scanner) ScanSource(ctx context.Context, src parser.LineSource) (*Result, error) {
	st := &state{
		from: Marker{Side: SideFrom, Pattern: s.from.Pattern, Mode: s.from.Mode},
		to:   Marker{Side: SideTo, Pattern: s.to.Pattern, Mode: s.to.Mode},
	}

	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log source: %w", err)
		}

		st.lines++
		if done := s.process(st, line); done {
			break
		}
	}

	return s.finalize(st)
}

// state is the mutable part of one scan.
type state struct {
	from, to           Marker
	fromFound, toFound bool
	fromHasTS, toHasTS bool
	lines              int
}

// process applies one line to st and reports whether scanning can stop.
func (s *Scanner) process(st *state, line *parser.LogLine) bool {
	if (!st.fromFound || s.from.Mode == LastMatch) && s.fromMatcher.Match(line.Content) {
		s.logMatch(SideFrom, line)
		st.fromFound = true
		if s.capture(&st.from, line) {
			st.fromHasTS = true
		}
	}

	if !st.fromFound || !s.toMatcher.Match(line.Content) {
		return false
	}

	s.logMatch(SideTo, line)
	st.toFound = true
	if s.capture(&st.to, line) {
		st.toHasTS = true
	}
	return s.to.Mode == FirstMatch
}

// capture stores the line's timestamp in m. A line without a usable
// timestamp leaves m untouched.
func (s *Scanner) capture(m *Marker, line *parser.LogLine) bool {
	ts, err := s.extractor.Extract(line.Content)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug().Int("line", line.LineNum).Err(err).Msg("No usable timestamp")
		}
		return false
	}

	m.Timestamp = ts
	m.LineNum = line.LineNum
	m.Line = line.Content
	return true
}

func (s *Scanner) logMatch(side Side, line *parser.LogLine) {
	if s.logger == nil {
		return
	}
	s.logger.Info().
		Str("marker", string(side)).
		Int("line", line.LineNum).
		Str("text", line.Content).
		Msg("Matching line")
}

func (s *Scanner) finalize(st *state) (*Result, error) {
	if !st.fromFound {
		return nil, &NotFoundError{Side: SideFrom, Pattern: s.from.Pattern}
	}
	if !st.toFound {
		return nil, &NotFoundError{Side: SideTo, Pattern: s.to.Pattern}
	}
	if !st.fromHasTS {
		return nil, &TimestampError{Side: SideFrom, Pattern: s.from.Pattern}
	}
	if !st.toHasTS {
		return nil, &TimestampError{Side: SideTo, Pattern: s.to.Pattern}
	}

	return &Result{
		From:         st.from,
		To:           st.to,
		Duration:     st.to.Timestamp.Sub(st.from.Timestamp),
		LinesScanned: st.lines,
	}, nil
}
