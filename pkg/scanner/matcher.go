package scanner

import (
	"regexp"
	"strings"
)

// Matcher reports whether a line contains a marker.
type Matcher interface {
	Match(line string) bool
}

type substringMatcher string

func (m substringMatcher) Match(line string) bool {
	return strings.Contains(line, string(m))
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}

// CompileMatcher builds the matcher for spec. In regex mode the pattern is
// compiled and a failure is returned as a *PatternError.
func CompileMatcher(side Side, spec MatchSpec, regex bool) (Matcher, error) {
	if !regex {
		return substringMatcher(spec.Pattern), nil
	}

	re, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return nil, &PatternError{Side: side, Pattern: spec.Pattern, Err: err}
	}
	return regexMatcher{re: re}, nil
}
