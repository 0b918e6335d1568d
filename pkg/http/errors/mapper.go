package errors

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
)

// Rule binds a sentinel error to the HTTP status it surfaces as.
type Rule struct {
	Err    error
	Status int
}

// Mapper resolves errors to HTTP statuses. Rules are checked in order with
// errors.Is, so more specific sentinels must come first.
type Mapper struct {
	rules []Rule
}

// NewMapper returns a Mapper seeded with the transport sentinels followed by rules.
func NewMapper(rules ...Rule) *Mapper {
	base := []Rule{
		{Err: ErrRouteNotFound, Status: http.StatusNotFound},
		{Err: ErrMethodNotAllowed, Status: http.StatusMethodNotAllowed},
		{Err: ErrBadRequest, Status: http.StatusBadRequest},
		{Err: ErrUnprocessable, Status: http.StatusUnprocessableEntity},
	}
	return &Mapper{rules: append(rules, base...)}
}

// StatusFor returns the status for err; unmatched errors are 500.
func (m *Mapper) StatusFor(err error) int {
	for _, rule := range m.rules {
		if errors.Is(err, rule.Err) {
			return rule.Status
		}
	}
	return http.StatusInternalServerError
}

// HandlerFunc is an http handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc, rendering any returned error as an envelope.
func (m *Mapper) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		status := m.StatusFor(err)
		logger := logging.FromContext(r.Context())
		var evt *zerolog.Event
		if status >= http.StatusInternalServerError || status == http.StatusUnprocessableEntity {
			evt = logger.Error()
		} else {
			evt = logger.Debug()
		}
		evt.Err(err).Int("status", status).Msg("request failed")
		RespondError(w, status)
	}
}
