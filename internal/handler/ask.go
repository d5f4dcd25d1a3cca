package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/answerbox/answerbox/internal/answerer"
	"github.com/answerbox/answerbox/internal/config"
	"github.com/answerbox/answerbox/internal/queue"
	queue_publisher "github.com/answerbox/answerbox/internal/service"
)

// AskHandler serves the question-answering endpoint.  It is a thin adapter:
// all lookup semantics live in the answerer, and this layer only maps the
// HTTP request and response shapes onto it.
type AskHandler struct {
	Answerer *answerer.QuestionAnswerer
	Queue    config.QueueConfig
}

// NewAskHandler returns an AskHandler over a and qc.
func NewAskHandler(a *answerer.QuestionAnswerer, qc config.QueueConfig) *AskHandler {
	return &AskHandler{Answerer: a, Queue: qc}
}

// Ask answers GET /ask/?q=<question>.
//
// The question is lowercased before it enters the answerer, and that
// lowercased form is what the response echoes back in the "question" field.
// A missing or empty q yields a 200 with an error-shaped body rather than a
// 4xx: clients of this API distinguish outcomes by payload shape, not status
// line.  The one hard failure is an unreadable knowledge base, reported as
// a 500 since no answer can be produced at all.
func (h *AskHandler) Ask(c echo.Context) error {
	question := strings.ToLower(c.QueryParam("q"))

	res, err := h.Answerer.Answer(c.Request().Context(), question)
	if err != nil {
		if errors.Is(err, answerer.ErrMissingInput) {
			return c.JSON(http.StatusOK, echo.Map{
				"error": "Question not provided",
			})
		}
		log.Printf("ask: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "knowledge base unavailable",
		})
	}

	if h.Queue.Enabled {
		h.publishLookup(res.Query, res.Keyword, res.Matched)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"question": res.Query,
		"answer":   res.Answer,
	})
}

// publishLookup emits a lookup outcome event off the request path.  The
// response must never wait on the broker, so the publish runs in its own
// goroutine with its own timeout, and failures are only logged.
func (h *AskHandler) publishLookup(question, keyword string, matched bool) {
	outcome := queue.OutcomeFallback
	if matched {
		outcome = queue.OutcomeResolved
	}
	event := queue.LookupEvent{
		Question: question,
		Keyword:  keyword,
		Outcome:  outcome,
		AskedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	url := h.Queue.URL
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishLookup(ctx, url, event)
	}()
}
