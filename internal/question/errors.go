package question

import "errors"

var (
	// ErrPageNotFound means the requested window holds no questions.
	ErrPageNotFound = errors.New("page not found")
	// ErrQuestionNotFound means a delete targeted a missing question.
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidPayload covers malformed bodies and missing required keys.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrUnprocessable wraps store faults on write and category lookup paths.
	ErrUnprocessable = errors.New("unprocessable")
)
