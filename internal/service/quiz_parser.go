package service

import (
	"encoding/json"
	"regexp"

	"text-quiz/internal/domain"
)

// arrayLiteralPattern spans from the first '[' to the last ']'.
var arrayLiteralPattern = regexp.MustCompile(`\[[\s\S]*\]`)

// ParseResult is the outcome of parsing model output. OK is false only when
// no JSON could be read at all; an OK result may still hold zero items.
type ParseResult struct {
	OK    bool
	Items []domain.QuizItem
}

// ParseQuizContent parses model output in two stages: the whole content as
// JSON, then the embedded array literal when the content carries prose.
// Candidates without string question and answer fields are dropped.
func ParseQuizContent(content string) ParseResult {
	parsed, ok := decodeJSON(content)
	if !ok {
		match := arrayLiteralPattern.FindString(content)
		if match == "" {
			return ParseResult{}
		}
		if parsed, ok = decodeJSON(match); !ok {
			return ParseResult{}
		}
	}

	return ParseResult{OK: true, Items: normalizeCandidates(parsed)}
}

func decodeJSON(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// normalizeCandidates accepts a bare array or an object with a "quizzes" array.
func normalizeCandidates(parsed any) []domain.QuizItem {
	var candidates []any
	switch v := parsed.(type) {
	case []any:
		candidates = v
	case map[string]any:
		candidates, _ = v["quizzes"].([]any)
	}

	items := make([]domain.QuizItem, 0, len(candidates))
	for _, candidate := range candidates {
		obj, ok := candidate.(map[string]any)
		if !ok {
			continue
		}
		question, okQ := obj["question"].(string)
		answer, okA := obj["answer"].(string)
		if !okQ || !okA || question == "" || answer == "" {
			continue
		}
		items = append(items, domain.QuizItem{Question: question, Answer: answer})
	}
	return items
}
