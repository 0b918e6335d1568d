package question

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// HTTPHandlers provides REST endpoints for questions and categories.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Categories handles GET /categories
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return httperrors.ErrMethodNotAllowed
	}

	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
	return nil
}

// Questions handles GET /questions?page=N and POST /questions
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) error {
	switch r.Method {
	case http.MethodGet:
		return h.list(w, r)
	case http.MethodPost:
		return h.create(w, r)
	default:
		return httperrors.ErrMethodNotAllowed
	}
}

func (h *HTTPHandlers) list(w http.ResponseWriter, r *http.Request) error {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	result, err := h.svc.ListPage(r.Context(), page)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"categories":      result.Categories,
		"currentCategory": nil,
		"totalQuestions":  result.Total,
	})
	return nil
}

func (h *HTTPHandlers) create(w http.ResponseWriter, r *http.Request) error {
	var req CreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	total, err := h.svc.Create(r.Context(), req)
	if err != nil {
		return err
	}

	h.logger.Info().Int64("total_questions", total).Msg("question created")
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"message":         "Question created",
		"total_questions": total,
	})
	return nil
}

// Question handles DELETE /questions/{id}
func (h *HTTPHandlers) Question(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodDelete {
		return httperrors.ErrMethodNotAllowed
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return httperrors.ErrRouteNotFound
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		return err
	}

	h.logger.Info().Int("question_id", id).Msg("question deleted")
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Question %d deleted", id),
	})
	return nil
}

// Search handles POST /search
func (h *HTTPHandlers) Search(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		return httperrors.ErrMethodNotAllowed
	}

	var req SearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if req.SearchTerm == nil {
		return fmt.Errorf("%w: searchTerm is required", ErrInvalidPayload)
	}

	questions, err := h.svc.Search(r.Context(), *req.SearchTerm)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"questions":      questions,
		"totalQuestions": len(questions),
	})
	return nil
}

// CategoryQuestions handles GET /categories/{id}/questions
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet {
		return httperrors.ErrMethodNotAllowed
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return httperrors.ErrRouteNotFound
	}

	result, err := h.svc.ByCategory(r.Context(), id)
	if err != nil {
		return err
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"totalQuestions":  len(result.Questions),
		"currentCategory": result.Category.Type,
	})
	return nil
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
