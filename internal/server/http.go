package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Handlers groups the domain endpoints mounted on the router.
type Handlers struct {
	Questions *question.HTTPHandlers
	Quiz      *quiz.HTTPHandlers
}

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

// ErrorMapper is the single table translating domain errors into HTTP statuses.
func ErrorMapper() *httperrors.Mapper {
	return httperrors.NewMapper(
		httperrors.Rule{Err: question.ErrPageNotFound, Status: http.StatusNotFound},
		httperrors.Rule{Err: question.ErrCategoryNotFound, Status: http.StatusNotFound},
		httperrors.Rule{Err: question.ErrQuestionNotFound, Status: http.StatusBadRequest},
		httperrors.Rule{Err: question.ErrInvalidPayload, Status: http.StatusUnprocessableEntity},
		httperrors.Rule{Err: question.ErrUnprocessable, Status: http.StatusUnprocessableEntity},
		httperrors.Rule{Err: quiz.ErrCategoryNotFound, Status: http.StatusNotFound},
		httperrors.Rule{Err: quiz.ErrNoQuestions, Status: http.StatusNotFound},
		httperrors.Rule{Err: quiz.ErrInvalidPayload, Status: http.StatusUnprocessableEntity},
	)
}

// NewRouter wires API routes plus health, readiness and metrics endpoints.
func NewRouter(cfg *config.App, logger zerolog.Logger, handlers Handlers, checks map[string]Check, registry *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mapper := ErrorMapper()
	metrics := newHTTPMetrics(registry)

	route := func(pattern string, fn httperrors.HandlerFunc) {
		mux.Handle(pattern, metrics.instrument(pattern, mapper.Handle(fn)))
	}

	route("/categories", handlers.Questions.Categories)
	route("/categories/{id}/questions", handlers.Questions.CategoryQuestions)
	route("/questions", handlers.Questions.Questions)
	route("/questions/{id}", handlers.Questions.Question)
	route("/search", handlers.Questions.Search)
	route("/quizzes", handlers.Quiz.Play)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Error().Err(err).Str("dependency", name).Msg("dependency ping failed")
				httperrors.RespondError(w, http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	mux.Handle("/", mapper.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return httperrors.ErrRouteNotFound
	}))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})

	var h http.Handler = mux
	h = corsHandler.Handler(h)
	h = recoverer(h)
	h = requestLogger(logger)(h)
	return h
}

// NewHTTPServer builds the API server from an explicit configuration object.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers Handlers, checks map[string]Check, registry *prometheus.Registry) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg, logger, handlers, checks, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
