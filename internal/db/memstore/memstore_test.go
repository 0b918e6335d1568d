package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

func TestListQuestionsPageWindow(t *testing.T) {
	s := Seeded()

	rows, err := s.ListQuestionsPage(context.Background(), sqlcgen.ListQuestionsPageParams{Limit: 10, Offset: 10})
	require.NoError(t, err)
	require.Len(t, rows, 9)
	assert.EqualValues(t, 15, rows[0].ID)
}

func TestListQuestionsPageOutOfRange(t *testing.T) {
	s := Seeded()

	for _, arg := range []sqlcgen.ListQuestionsPageParams{
		{Limit: 10, Offset: 19},
		{Limit: 10, Offset: -10},
		{Limit: -1, Offset: 0},
	} {
		rows, err := s.ListQuestionsPage(context.Background(), arg)
		require.NoError(t, err)
		assert.Empty(t, rows, "offset %d limit %d", arg.Offset, arg.Limit)
	}
}
