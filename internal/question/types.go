package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Question is the wire representation of a stored question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is the wire representation of a stored category.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Page is one window of the question listing.
type Page struct {
	Questions  []Question
	Categories map[int]string
	Total      int64
}

// CategoryQuestions holds every question filed under one category.
type CategoryQuestions struct {
	Category  Category
	Questions []Question
}

// CreateRequest is the body of POST /questions. Pointers distinguish a
// missing key from a zero value.
type CreateRequest struct {
	Question   *string  `json:"question" validate:"required"`
	Answer     *string  `json:"answer" validate:"required"`
	Category   *FlexInt `json:"category" validate:"required"`
	Difficulty *FlexInt `json:"difficulty" validate:"required"`
}

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

// FlexInt decodes from a JSON number or a numeric string; browser forms
// submit select values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("flexint: %q is not an integer", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// FromRow formats a stored question for transport.
func FromRow(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

// FromRows formats rows; the result is never nil so it encodes as [].
func FromRows(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRow(row))
	}
	return out
}

// CategoryMap collapses categories into id -> type. Duplicate ids keep the last value.
func CategoryMap(rows []sqlcgen.Category) map[int]string {
	out := make(map[int]string, len(rows))
	for _, row := range rows {
		out[int(row.ID)] = row.Type
	}
	return out
}
