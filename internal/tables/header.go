package tables

import (
	"strings"
	"unicode/utf8"
)

// HeaderKeywords mark a rendered row as a table title regardless of length.
// Matching is a case-insensitive substring test.
var HeaderKeywords = []string{
	"investment",
	"revenue",
	"expense",
	"projection",
	"cash flow",
	"initial",
	"operating",
	"capital",
	"budget",
	"financial",
}

const (
	// shortHeaderMaxTokens is the largest whitespace token count of a short title
	shortHeaderMaxTokens = 5
	// shortHeaderMinLength is the rune length a short title must exceed
	shortHeaderMinLength = 5
)

// HeaderDetector decides whether the rendered text of a row starts a new table
type HeaderDetector interface {
	IsHeader(text string) bool
}

// HeaderDetectorFunc adapts a predicate to HeaderDetector
type HeaderDetectorFunc func(text string) bool

// IsHeader calls f(text)
func (f HeaderDetectorFunc) IsHeader(text string) bool {
	return f(text)
}

// DefaultHeaderDetector is the keyword and short-text heuristic
var DefaultHeaderDetector HeaderDetector = HeaderDetectorFunc(IsHeaderCandidate)

// IsHeaderCandidate is a single-pass classifier with no lookahead: a data
// row containing a keyword, or a short lone label, is reported as a header.
// Length is measured on the untrimmed text.
func IsHeaderCandidate(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	lower := strings.ToLower(text)
	for _, kw := range HeaderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return len(strings.Fields(text)) <= shortHeaderMaxTokens &&
		utf8.RuneCountInString(text) > shortHeaderMinLength
}
