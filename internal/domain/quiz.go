package domain

import "strings"

const (
	// MaxTextLength is the cap on source text, counted in characters (runes).
	MaxTextLength = 1000
	// MaxQuizzes is the upper bound on items returned for one text.
	MaxQuizzes = 5
)

// QuizItem is a single generated question/answer pair
type QuizItem struct {
	Question string `json:"question" example:"光合成は主にどこで行われますか？"`
	Answer   string `json:"answer" example:"葉緑体"`
}

// TruncateText returns the first MaxTextLength characters of s.
// Truncation never splits a multi-byte character and is idempotent.
func TruncateText(s string) string {
	n := 0
	for i := range s {
		if n == MaxTextLength {
			return s[:i]
		}
		n++
	}
	return s
}

// NormalizeText trims surrounding whitespace and caps the result at
// MaxTextLength characters.
func NormalizeText(s string) string {
	return TruncateText(strings.TrimSpace(s))
}

// LimitQuizzes returns at most MaxQuizzes items, preserving order.
func LimitQuizzes(items []QuizItem) []QuizItem {
	if len(items) > MaxQuizzes {
		return items[:MaxQuizzes]
	}
	return items
}
