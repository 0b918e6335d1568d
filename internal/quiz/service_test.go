package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/memstore"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/question"
)

func newTestService(store *memstore.Store, opts ServiceOptions) *Service {
	return NewService(repository.NewQuestionRepository(store), repository.NewCategoryRepository(store), opts)
}

func TestNextAllCategoriesDrawsFromWholeBank(t *testing.T) {
	store := memstore.Seeded()
	svc := newTestService(store, ServiceOptions{})

	all, err := store.ListQuestions(context.Background())
	require.NoError(t, err)
	ids := map[int]bool{}
	for _, q := range all {
		ids[int(q.ID)] = true
	}

	for i := 0; i < 50; i++ {
		q, err := svc.Next(context.Background(), AllCategories, nil)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.True(t, ids[q.ID], "question %d not in bank", q.ID)
	}
}

func TestNextWithinCategory(t *testing.T) {
	svc := newTestService(memstore.Seeded(), ServiceOptions{})

	for i := 0; i < 50; i++ {
		q, err := svc.Next(context.Background(), 1, nil)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 1, q.Category)
	}
}

func TestNextExcludesPreviousQuestions(t *testing.T) {
	svc := newTestService(memstore.Seeded(), ServiceOptions{})

	// Science holds 20, 21 and 22.
	for i := 0; i < 50; i++ {
		q, err := svc.Next(context.Background(), 1, []int{20, 22})
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 21, q.ID)
	}
}

func TestNextWalksWholeCategoryWithoutRepeats(t *testing.T) {
	svc := newTestService(memstore.Seeded(), ServiceOptions{})

	var asked []int
	for {
		q, err := svc.Next(context.Background(), AllCategories, asked)
		require.NoError(t, err)
		if q == nil {
			break
		}
		assert.NotContains(t, asked, q.ID)
		asked = append(asked, q.ID)
	}
	assert.Len(t, asked, 19)
}

func TestNextUsesInjectedRandomSource(t *testing.T) {
	var seen []int
	svc := newTestService(memstore.Seeded(), ServiceOptions{
		Intn: func(n int) int {
			seen = append(seen, n)
			return n - 1
		},
	})

	q, err := svc.Next(context.Background(), 2, []int{19})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, seen)
	assert.Equal(t, 18, q.ID, "last unseen Art question by id")
}

func TestNextExhausted(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := newTestService(memstore.Seeded(), ServiceOptions{Metrics: metrics})

	q, err := svc.Next(context.Background(), 1, []int{20, 21, 22})
	require.NoError(t, err)
	assert.Nil(t, q)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.draws.WithLabelValues("category", OutcomeExhausted)))
}

func TestNextEmptyCandidateSet(t *testing.T) {
	store := memstore.New()
	store.AddCategory(sqlcgen.Category{ID: 7, Type: "Empty"})
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := newTestService(store, ServiceOptions{Metrics: metrics})

	_, err := svc.Next(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = svc.Next(context.Background(), AllCategories, nil)
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.draws.WithLabelValues("all", OutcomeEmpty)))
}

func TestNextUnknownCategory(t *testing.T) {
	svc := newTestService(memstore.Seeded(), ServiceOptions{})

	_, err := svc.Next(context.Background(), 42, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestNextStoreFault(t *testing.T) {
	store := memstore.Seeded()
	boom := errors.New("conn refused")
	store.FailOn("ListQuestions", boom)
	svc := newTestService(store, ServiceOptions{})

	_, err := svc.Next(context.Background(), AllCategories, nil)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, question.ErrUnprocessable)
}

func TestDrawMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := newTestService(memstore.Seeded(), ServiceOptions{Metrics: metrics})

	for i := 0; i < 3; i++ {
		_, err := svc.Next(context.Background(), AllCategories, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.draws.WithLabelValues("all", OutcomeDrawn)))
}
