package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/answerbox/answerbox/internal/answerer"
	"github.com/answerbox/answerbox/internal/config"
	"github.com/answerbox/answerbox/internal/knowledge"
)

func newAskHandler(t *testing.T, kb string) *AskHandler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(kb), 0o644))
	return NewAskHandler(answerer.New(knowledge.NewFileStore(path)), config.QueueConfig{})
}

func doAsk(t *testing.T, h *AskHandler, question string, hasQ bool) *httptest.ResponseRecorder {
	t.Helper()
	target := "/ask/"
	if hasQ {
		target += "?q=" + url.QueryEscape(question)
	}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Ask(c))
	return rec
}

const kbLanguages = `{
	"python": "a programming language",
	"java": "another programming language"
}`

func TestAsk_Match(t *testing.T) {
	h := newAskHandler(t, kbLanguages)

	rec := doAsk(t, h, "what is python", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"question":"what is python","answer":"a programming language"}`,
		rec.Body.String())
}

func TestAsk_LowercasesQuestion(t *testing.T) {
	h := newAskHandler(t, kbLanguages)

	rec := doAsk(t, h, "WHAT IS PYTHON", true)

	// The response echoes the lowercased form of q, matching what was used
	// for the lookup.
	assert.JSONEq(t,
		`{"question":"what is python","answer":"a programming language"}`,
		rec.Body.String())
}

func TestAsk_Fallback(t *testing.T) {
	h := newAskHandler(t, kbLanguages)

	rec := doAsk(t, h, "hello", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"question":"hello","answer":"Sorry, I don't have verified information on this."}`,
		rec.Body.String())
}

func TestAsk_DeclarationOrderBreaksTies(t *testing.T) {
	h := newAskHandler(t, kbLanguages)

	rec := doAsk(t, h, "tell me about java and python", true)

	assert.JSONEq(t,
		`{"question":"tell me about java and python","answer":"a programming language"}`,
		rec.Body.String())
}

func TestAsk_MissingQuestion(t *testing.T) {
	h := newAskHandler(t, kbLanguages)

	for name, hasQ := range map[string]bool{"absent": false, "empty": true} {
		t.Run(name, func(t *testing.T) {
			rec := doAsk(t, h, "", hasQ)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"error":"Question not provided"}`, rec.Body.String())
		})
	}
}

func TestAsk_KnowledgeBaseMissing(t *testing.T) {
	store := knowledge.NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	h := NewAskHandler(answerer.New(store), config.QueueConfig{})

	rec := doAsk(t, h, "what is python", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"knowledge base unavailable"}`, rec.Body.String())
}
