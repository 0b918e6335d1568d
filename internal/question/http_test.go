package question

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/memstore"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

func newTestHandlers() *HTTPHandlers {
	return NewHTTPHandlers(newTestService(memstore.Seeded(), nil), zerolog.Nop())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCategoriesHandler(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()

	err := h.Categories(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.NoError(t, err)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	categories := body["categories"].(map[string]interface{})
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Sports", categories["6"])
}

func TestQuestionsHandlerPagination(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()

	err := h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=2", nil))
	require.NoError(t, err)

	body := decode(t, rec)
	assert.Len(t, body["questions"], 9)
	assert.EqualValues(t, 19, body["totalQuestions"])
	assert.Contains(t, body, "currentCategory")
	assert.Nil(t, body["currentCategory"])
}

func TestQuestionsHandlerBadPageFallsBackToFirst(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()

	err := h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=abc", nil))
	require.NoError(t, err)
	assert.Len(t, decode(t, rec)["questions"], 10)
}

func TestQuestionsHandlerPageOutOfRange(t *testing.T) {
	h := newTestHandlers()
	err := h.Questions(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/questions?page=100", nil))
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestQuestionsHandlerMethod(t *testing.T) {
	h := newTestHandlers()
	err := h.Questions(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/questions", nil))
	assert.ErrorIs(t, err, httperrors.ErrMethodNotAllowed)
}

func TestCreateHandler(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()
	payload := `{"question":"Q?","answer":"A","category":"3","difficulty":1}`

	err := h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))
	require.NoError(t, err)

	body := decode(t, rec)
	assert.Equal(t, "Question created", body["message"])
	assert.EqualValues(t, 20, body["total_questions"])
}

func TestCreateHandlerMalformed(t *testing.T) {
	h := newTestHandlers()
	for _, payload := range []string{`{`, `{"question":"Q"}`, `{"question":1,"answer":"A","category":1,"difficulty":1}`} {
		err := h.Questions(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))
		assert.ErrorIs(t, err, ErrInvalidPayload, payload)
	}
}

func TestCreateHandlerOversizedBody(t *testing.T) {
	h := newTestHandlers()
	payload := `{"question": "` + strings.Repeat("a", maxBodyBytes) + `", "answer": "A", "category": 1, "difficulty": 1}`

	err := h.Questions(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	err = h.Search(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/search",
		strings.NewReader(`{"searchTerm": "`+strings.Repeat("a", maxBodyBytes)+`"}`)))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDeleteHandler(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/questions/5", nil)
	req.SetPathValue("id", "5")

	require.NoError(t, h.Question(rec, req))
	assert.Equal(t, "Question 5 deleted", decode(t, rec)["message"])

	req = httptest.NewRequest(http.MethodDelete, "/questions/5", nil)
	req.SetPathValue("id", "5")
	assert.ErrorIs(t, h.Question(httptest.NewRecorder(), req), ErrQuestionNotFound)
}

func TestDeleteHandlerNonNumericID(t *testing.T) {
	h := newTestHandlers()
	req := httptest.NewRequest(http.MethodDelete, "/questions/abc", nil)
	req.SetPathValue("id", "abc")

	assert.ErrorIs(t, h.Question(httptest.NewRecorder(), req), httperrors.ErrRouteNotFound)
}

func TestSearchHandler(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()

	err := h.Search(rec, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"searchTerm":"which"}`)))
	require.NoError(t, err)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["questions"])
}

func TestSearchHandlerMissingTerm(t *testing.T) {
	h := newTestHandlers()
	err := h.Search(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{}`)))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestCategoryQuestionsHandler(t *testing.T) {
	h := newTestHandlers()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/2/questions", nil)
	req.SetPathValue("id", "2")

	require.NoError(t, h.CategoryQuestions(rec, req))

	body := decode(t, rec)
	assert.Equal(t, "Art", body["currentCategory"])
	assert.EqualValues(t, 4, body["totalQuestions"])
}
