// Package answerer implements the keyword lookup at the heart of the
// service.  It is deliberately transport-free: the same Answer call serves
// the HTTP handler, the tests and any future CLI without change.
package answerer

import (
	"context"
	"errors"
	"strings"

	"github.com/answerbox/answerbox/internal/knowledge"
	"github.com/answerbox/answerbox/internal/model"
)

// Fallback is the fixed answer returned when no keyword matches a question.
const Fallback = "Sorry, I don't have verified information on this."

// ErrMissingInput is returned when Answer is called with an empty question.
// Callers must be able to tell "no question supplied" apart from "no answer
// found", so an empty question is never treated as a fallback case.
var ErrMissingInput = errors.New("question not provided")

// QuestionAnswerer answers free-text questions against a knowledge base.
// It holds no state of its own beyond the store it reads from; every call is
// independent and side-effect free, so a single instance is safe to share
// across concurrent requests.
type QuestionAnswerer struct {
	store knowledge.Store
}

// New returns a QuestionAnswerer reading from store.
func New(store knowledge.Store) *QuestionAnswerer {
	return &QuestionAnswerer{store: store}
}

// Answer resolves query against the knowledge base.
//
// The query is lowercased (nothing else: no trimming, no tokenization) and
// each keyword is tested for plain substring containment in declaration
// order.  The first keyword that matches wins; there is no ranking and no
// most-specific-match logic.  When nothing matches, the fixed Fallback text
// is returned with Matched false.
//
// An empty query yields ErrMissingInput.  A store failure is passed through
// unchanged, so callers can detect knowledge.ErrUnavailable.
func (a *QuestionAnswerer) Answer(ctx context.Context, query string) (model.Result, error) {
	if query == "" {
		return model.Result{}, ErrMissingInput
	}
	normalized := strings.ToLower(query)

	entries, err := a.store.Load(ctx)
	if err != nil {
		return model.Result{}, err
	}

	for _, e := range entries {
		if strings.Contains(normalized, e.Keyword) {
			return model.Result{
				Query:   query,
				Answer:  e.Answer,
				Matched: true,
				Keyword: e.Keyword,
			}, nil
		}
	}
	return model.Result{Query: query, Answer: Fallback}, nil
}
