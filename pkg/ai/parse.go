package ai

import (
	"encoding/json"
	"errors"
	"regexp"
)

// ErrNoQuestions is returned when no JSON array of questions can be found
// in a model response.
var ErrNoQuestions = errors.New("no questions in response")

// Models wrap JSON in prose or markdown code fences often enough that a
// strict parse alone is not good enough.
var (
	arrayFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*\\])\\s*```")
	arrayPattern      = regexp.MustCompile(`\[[\s\S]*\]`)
)

// ParseQuestions parses a model reply into a list of questions. It tries a
// strict parse of the whole reply first, then falls back to extracting the
// first JSON array it can find.
func ParseQuestions(content string) ([]string, error) {
	var questions []string
	if err := json.Unmarshal([]byte(content), &questions); err == nil {
		return questions, nil
	}

	raw := extractArray(content)
	if raw == "" {
		return nil, ErrNoQuestions
	}
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, ErrNoQuestions
	}

	return questions, nil
}

func extractArray(content string) string {
	if m := arrayFencePattern.FindStringSubmatch(content); len(m) > 1 {
		return m[1]
	}
	return arrayPattern.FindString(content)
}
