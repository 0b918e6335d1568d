// Package memstore is an in-memory stand-in for the sqlc query layer. It
// mirrors the ordering and matching rules of the SQL in db/queries so
// services and handlers can be exercised without Postgres.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Store holds questions and categories keyed by id.
type Store struct {
	mu         sync.Mutex
	questions  map[int32]sqlcgen.Question
	categories map[int32]sqlcgen.Category
	nextID     int32
	failures   map[string]error
}

func New() *Store {
	return &Store{
		questions:  map[int32]sqlcgen.Question{},
		categories: map[int32]sqlcgen.Category{},
		failures:   map[string]error{},
	}
}

// AddCategory stores c, replacing any category with the same id.
func (s *Store) AddCategory(c sqlcgen.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
}

// AddQuestion stores q as-is; a zero id is assigned the next free id.
func (s *Store) AddQuestion(q sqlcgen.Question) sqlcgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == 0 {
		s.nextID++
		q.ID = s.nextID
	}
	if q.ID > s.nextID {
		s.nextID = q.ID
	}
	s.questions[q.ID] = q
	return q
}

// FailOn makes every later call to method return err.
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = err
}

func (s *Store) fail(method string) error {
	return s.failures[method]
}

func (s *Store) sortedQuestions(keep func(sqlcgen.Question) bool) []sqlcgen.Question {
	var out []sqlcgen.Question
	for _, q := range s.questions {
		if keep == nil || keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ListCategories(_ context.Context) ([]sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ListCategories"); err != nil {
		return nil, err
	}
	var out []sqlcgen.Category
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCategory(_ context.Context, id int32) (sqlcgen.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetCategory"); err != nil {
		return sqlcgen.Category{}, err
	}
	c, ok := s.categories[id]
	if !ok {
		return sqlcgen.Category{}, pgx.ErrNoRows
	}
	return c, nil
}

func (s *Store) ListQuestions(_ context.Context) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ListQuestions"); err != nil {
		return nil, err
	}
	return s.sortedQuestions(nil), nil
}

func (s *Store) ListQuestionsPage(_ context.Context, arg sqlcgen.ListQuestionsPageParams) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ListQuestionsPage"); err != nil {
		return nil, err
	}
	all := s.sortedQuestions(nil)
	start := int(arg.Offset)
	if start < 0 || arg.Limit < 0 || start >= len(all) {
		return nil, nil
	}
	end := start + int(arg.Limit)
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *Store) CountQuestions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CountQuestions"); err != nil {
		return 0, err
	}
	return int64(len(s.questions)), nil
}

func (s *Store) GetQuestion(_ context.Context, id int32) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("GetQuestion"); err != nil {
		return sqlcgen.Question{}, err
	}
	q, ok := s.questions[id]
	if !ok {
		return sqlcgen.Question{}, pgx.ErrNoRows
	}
	return q, nil
}

func (s *Store) ListQuestionsByCategory(_ context.Context, category int32) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ListQuestionsByCategory"); err != nil {
		return nil, err
	}
	return s.sortedQuestions(func(q sqlcgen.Question) bool { return q.Category == category }), nil
}

func (s *Store) SearchQuestions(_ context.Context, term string) ([]sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SearchQuestions"); err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	return s.sortedQuestions(func(q sqlcgen.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

func (s *Store) InsertQuestion(_ context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("InsertQuestion"); err != nil {
		return sqlcgen.Question{}, err
	}
	s.nextID++
	q := sqlcgen.Question{
		ID:         s.nextID,
		Question:   arg.Question,
		Answer:     arg.Answer,
		Category:   arg.Category,
		Difficulty: arg.Difficulty,
	}
	s.questions[q.ID] = q
	return q, nil
}

func (s *Store) DeleteQuestion(_ context.Context, id int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DeleteQuestion"); err != nil {
		return 0, err
	}
	if _, ok := s.questions[id]; !ok {
		return 0, nil
	}
	delete(s.questions, id)
	return 1, nil
}
