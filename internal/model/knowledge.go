package model

// Entry is a single row of the knowledge base: a keyword (or phrase) and the
// verified answer that should be returned when the keyword appears inside a
// question.  Entries are kept in a slice rather than a map because the
// declaration order of the source file decides match precedence: when a
// question contains several keywords, the one that appears first in the file
// wins.
//
// Fields:
//  Keyword – text matched against the lowercased question (substring test).
//  Answer  – verified answer text returned on a match.
type Entry struct {
	Keyword string // keyword or phrase as declared in the source file
	Answer  string // answer text for this keyword
}

// Result is the outcome of answering one question.  It is ephemeral: built,
// returned to the transport layer and discarded.  Matched distinguishes a
// real knowledge-base hit from the fixed fallback answer, and Keyword carries
// the winning keyword so callers can record which entry resolved the
// question.
type Result struct {
	Query   string // the question as received by the answerer
	Answer  string // matched answer, or the fallback text
	Matched bool   // true when a knowledge-base keyword matched
	Keyword string // the keyword that matched; empty on fallback
}
