package quiz

import "github.com/gokatarajesh/trivia-api/internal/question"

// AllCategories selects from the whole question bank.
const AllCategories = 0

// PlayRequest is the body of POST /quizzes.
type PlayRequest struct {
	PreviousQuestions []question.FlexInt `json:"previous_questions"`
	QuizCategory      *CategoryRef       `json:"quiz_category"`
}

// CategoryRef identifies the category being played; ID 0 means all categories.
type CategoryRef struct {
	ID   question.FlexInt `json:"id"`
	Type string           `json:"type"`
}

// Outcome labels recorded for each draw.
const (
	OutcomeDrawn     = "drawn"
	OutcomeExhausted = "exhausted"
	OutcomeEmpty     = "empty"
)
