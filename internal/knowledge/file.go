package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/answerbox/answerbox/internal/model"
)

// FileStore reads the knowledge base from a JSON object file on every Load
// call.  There is no caching here: each request gets its own snapshot, so a
// file edit is visible on the very next question.  The file is expected to
// hold a single flat object mapping keyword strings to answer strings.
type FileStore struct {
	Path string // path to the JSON knowledge file
}

// NewFileStore returns a FileStore reading from path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load opens and parses the knowledge file.  Any failure to open or parse is
// wrapped in ErrUnavailable so callers can treat "no knowledge base" as one
// condition regardless of the underlying cause.
func (s *FileStore) Load(ctx context.Context) ([]model.Entry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	entries, err := decodeOrdered(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, s.Path, err)
	}
	return entries, nil
}

// decodeOrdered parses a flat JSON object while preserving the order in which
// keys are declared.  json.Unmarshal into a map would lose that order, and
// order is load-bearing: it decides which keyword wins when several match.
// Duplicate keys keep their first position in the scan order but take the
// last declared value.
func decodeOrdered(f *os.File) ([]model.Entry, error) {
	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var entries []model.Entry
	seen := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string key, got %v", keyTok)
		}

		var answer string
		if err := dec.Decode(&answer); err != nil {
			return nil, fmt.Errorf("value for %q is not a string: %v", key, err)
		}

		if i, dup := seen[key]; dup {
			entries[i].Answer = answer
			continue
		}
		seen[key] = len(entries)
		entries = append(entries, model.Entry{Keyword: key, Answer: answer})
	}

	// Consume the closing brace so a truncated file is reported as malformed.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}
