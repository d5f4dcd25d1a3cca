// Package queue defines message payloads exchanged over the message broker.
package queue

// Lookup outcome values.  A lookup either resolved to a knowledge-base entry
// or fell back to the fixed "no information" answer; there is no partial
// outcome.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
)

// LookupEvent is published after each answered question.  It carries enough
// for downstream consumers to count hits per keyword and spot questions the
// knowledge base cannot answer yet, without any access to the service itself.
type LookupEvent struct {
	Question string `json:"question"`          // the question as answered (lowercased)
	Keyword  string `json:"keyword,omitempty"` // winning keyword; empty on fallback
	Outcome  string `json:"outcome"`           // OutcomeResolved or OutcomeFallback
	AskedAt  string `json:"asked_at"`          // RFC 3339 UTC timestamp
}
