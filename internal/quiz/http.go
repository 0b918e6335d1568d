package quiz

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandlers exposes the quiz play endpoint.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Play handles POST /quizzes
func (h *HTTPHandlers) Play(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return httperrors.ErrMethodNotAllowed
	}

	var req PlayRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if req.QuizCategory == nil {
		return fmt.Errorf("%w: quiz_category is required", ErrInvalidPayload)
	}

	previous := make([]int, len(req.PreviousQuestions))
	for i, id := range req.PreviousQuestions {
		previous[i] = int(id)
	}

	picked, err := h.svc.Next(r.Context(), int(req.QuizCategory.ID), previous)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": picked,
	}); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
	return nil
}
