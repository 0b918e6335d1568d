package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

func TestFlexIntAcceptsNumbersAndStrings(t *testing.T) {
	var body struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": "4"}`), &body))
	assert.EqualValues(t, 3, body.A)
	assert.EqualValues(t, 4, body.B)
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var f FlexInt
	assert.Error(t, json.Unmarshal([]byte(`"three"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestCategoryMapLastWriteWins(t *testing.T) {
	got := CategoryMap([]sqlcgen.Category{{ID: 1, Type: "Science"}, {ID: 1, Type: "Physics"}, {ID: 2, Type: "Art"}})
	assert.Equal(t, map[int]string{1: "Physics", 2: "Art"}, got)
}

func TestCategoryMapEncodesStringKeys(t *testing.T) {
	raw, err := json.Marshal(CategoryMap([]sqlcgen.Category{{ID: 1, Type: "Science"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":"Science"}`, string(raw))
}

func TestFromRowsNeverNil(t *testing.T) {
	raw, err := json.Marshal(FromRows(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
