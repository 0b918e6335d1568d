package quiz

import "errors"

var (
	ErrCategoryNotFound = errors.New("quiz category not found")
	// ErrNoQuestions means the candidate set is empty before any exclusion.
	ErrNoQuestions    = errors.New("no questions available")
	ErrInvalidPayload = errors.New("invalid quiz payload")
)
