// Package knowledge loads the keyword→answer mapping that backs the service.
// The mapping lives in a JSON object file owned by whoever curates the
// answers; this package only reads it.  Iteration order of the returned
// entries is the declaration order of the file, which is what gives
// first-match-wins its meaning.
package knowledge

import (
	"context"
	"errors"

	"github.com/answerbox/answerbox/internal/model"
)

// ErrUnavailable is returned when the knowledge base cannot be produced at
// all: the source file is missing, unreadable or malformed.  Handlers should
// translate this into an HTTP 500 response, since no sensible answer can be
// given without the data.
var ErrUnavailable = errors.New("knowledge base unavailable")

// Store produces a snapshot of the knowledge base.  Implementations decide
// how fresh the snapshot is: FileStore rereads the file on every call,
// WatchStore serves a cached copy that is invalidated when the file changes.
type Store interface {
	Load(ctx context.Context) ([]model.Entry, error)
}
