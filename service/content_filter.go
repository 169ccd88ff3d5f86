package service

import (
	"regexp"

	"github.com/pkg/errors"
)

// ContentFilter rejects text matching any of the configured deny patterns.
// Patterns are case-insensitive regular expressions; first match rejects.
type ContentFilter struct {
	patterns []*regexp.Regexp
}

func NewContentFilter(patterns []string) (*ContentFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, errors.WithMessagef(err, "compile deny pattern '%s'", pattern)
		}
		compiled = append(compiled, re)
	}
	return &ContentFilter{
		patterns: compiled,
	}, nil
}

// Check returns the matched pattern and false when the text is denied.
func (s *ContentFilter) Check(text string) (string, bool) {
	for _, re := range s.patterns {
		if re.MatchString(text) {
			return re.String(), false
		}
	}
	return "", true
}
