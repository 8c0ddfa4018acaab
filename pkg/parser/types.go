// Package parser provides log file reading and timestamp extraction.
package parser

// LogLine is a decoded log line before any matching.
type LogLine struct {
	// Content is the line text without its line terminator.
	Content string

	// Source is the file path (or reader name) this line came from.
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}
