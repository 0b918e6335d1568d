package question

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

// DefaultPerPage is the listing window size when none is configured.
const DefaultPerPage = 10

// CategoryCache defines cache behavior (implemented by Redis-backed Cache).
type CategoryCache interface {
	Get(ctx context.Context) (map[int]string, error)
	Set(ctx context.Context, categories map[int]string) error
}

// Service implements the question bank operations on top of the repositories.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	cache      CategoryCache
	perPage    int
	validate   *validator.Validate
}

type ServiceOptions struct {
	PerPage int
}

// NewService wires the question service. cache may be nil.
func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, cache CategoryCache, opts ServiceOptions) *Service {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > math.MaxInt32 {
		perPage = math.MaxInt32
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		perPage:    perPage,
		validate:   validator.New(),
	}
}

// Categories returns every category as id -> type, preferring the cache.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	logger := logging.FromContext(ctx)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			logger.Warn().Err(err).Msg("category cache read failed")
		}
	}

	rows, err := s.categories.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := CategoryMap(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// ListPage returns the 1-indexed page of questions together with the
// category map and the unfiltered question count.
func (s *Service) ListPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		return Page{}, ErrPageNotFound
	}
	if page-1 > math.MaxInt32/s.perPage {
		return Page{}, ErrPageNotFound
	}
	offset := (page - 1) * s.perPage

	rows, err := s.questions.Page(ctx, int32(s.perPage), int32(offset))
	if err != nil {
		return Page{}, fmt.Errorf("list questions page %d: %w", page, err)
	}
	if len(rows) == 0 {
		return Page{}, ErrPageNotFound
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count questions: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Questions:  FromRows(rows),
		Categories: categories,
		Total:      total,
	}, nil
}

// Delete removes the question with the given id.
func (s *Service) Delete(ctx context.Context, id int) error {
	qid, ok := toInt32(id)
	if !ok {
		return ErrQuestionNotFound
	}
	if _, err := s.questions.Get(ctx, qid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("get question %d: %w: %w", id, ErrUnprocessable, err)
	}
	if err := s.questions.Delete(ctx, qid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("delete question %d: %w: %w", id, ErrUnprocessable, err)
	}
	return nil
}

// Create validates and stores a new question, returning the new total count.
func (s *Service) Create(ctx context.Context, req CreateRequest) (int64, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	category, ok := toInt32(int(*req.Category))
	if !ok {
		return 0, fmt.Errorf("%w: category out of range", ErrInvalidPayload)
	}
	difficulty, ok := toInt32(int(*req.Difficulty))
	if !ok {
		return 0, fmt.Errorf("%w: difficulty out of range", ErrInvalidPayload)
	}

	if _, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   category,
		Difficulty: difficulty,
	}); err != nil {
		return 0, fmt.Errorf("insert question: %w: %w", ErrUnprocessable, err)
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w: %w", ErrUnprocessable, err)
	}
	return total, nil
}

// Search returns every question whose text contains term, ignoring case.
// No match is an empty result, not an error.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w: %w", ErrUnprocessable, err)
	}
	return FromRows(rows), nil
}

// ByCategory returns the category and every question filed under it.
func (s *Service) ByCategory(ctx context.Context, id int) (CategoryQuestions, error) {
	cid, ok := toInt32(id)
	if !ok {
		return CategoryQuestions{}, ErrCategoryNotFound
	}
	category, err := s.categories.Get(ctx, cid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CategoryQuestions{}, ErrCategoryNotFound
		}
		return CategoryQuestions{}, fmt.Errorf("get category %d: %w: %w", id, ErrUnprocessable, err)
	}

	rows, err := s.questions.ByCategory(ctx, category.ID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list category %d questions: %w: %w", id, ErrUnprocessable, err)
	}

	return CategoryQuestions{
		Category:  Category{ID: int(category.ID), Type: category.Type},
		Questions: FromRows(rows),
	}, nil
}

func toInt32(n int) (int32, bool) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}
