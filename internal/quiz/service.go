package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

// Service draws random unseen questions for quiz play.
type Service struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	intn       func(n int) int
	metrics    *Metrics
}

type ServiceOptions struct {
	// Intn returns a uniform int in [0, n). Defaults to math/rand/v2.
	Intn    func(n int) int
	Metrics *Metrics
}

func NewService(questions *repository.QuestionRepository, categories *repository.CategoryRepository, opts ServiceOptions) *Service {
	intn := opts.Intn
	if intn == nil {
		intn = rand.IntN
	}
	return &Service{
		questions:  questions,
		categories: categories,
		intn:       intn,
		metrics:    opts.Metrics,
	}
}

// Next picks a question uniformly at random from the candidate set minus
// previous. A nil question with a nil error means every candidate has
// already been asked.
func (s *Service) Next(ctx context.Context, categoryID int, previous []int) (*question.Question, error) {
	candidates, err := s.candidates(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		s.metrics.observe(categoryID, OutcomeEmpty)
		return nil, ErrNoQuestions
	}

	seen := make(map[int32]struct{}, len(previous))
	for _, id := range previous {
		if id < math.MinInt32 || id > math.MaxInt32 {
			continue
		}
		seen[int32(id)] = struct{}{}
	}

	unseen := make([]sqlcgen.Question, 0, len(candidates))
	for _, row := range candidates {
		if _, ok := seen[row.ID]; !ok {
			unseen = append(unseen, row)
		}
	}
	if len(unseen) == 0 {
		s.metrics.observe(categoryID, OutcomeExhausted)
		logging.FromContext(ctx).Debug().
			Int("category_id", categoryID).
			Int("asked", len(previous)).
			Msg("quiz exhausted")
		return nil, nil
	}

	picked := question.FromRow(unseen[s.intn(len(unseen))])
	s.metrics.observe(categoryID, OutcomeDrawn)
	return &picked, nil
}

func (s *Service) candidates(ctx context.Context, categoryID int) ([]sqlcgen.Question, error) {
	if categoryID == AllCategories {
		rows, err := s.questions.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list questions: %w: %w", question.ErrUnprocessable, err)
		}
		return rows, nil
	}

	if categoryID < math.MinInt32 || categoryID > math.MaxInt32 {
		return nil, ErrCategoryNotFound
	}
	category, err := s.categories.Get(ctx, int32(categoryID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %d: %w: %w", categoryID, question.ErrUnprocessable, err)
	}
	rows, err := s.questions.ByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("list category %d questions: %w: %w", categoryID, question.ErrUnprocessable, err)
	}
	return rows, nil
}
