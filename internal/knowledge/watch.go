package knowledge

import (
	"context"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/answerbox/answerbox/internal/model"
)

// WatchStore wraps a FileStore with an in-memory snapshot that is discarded
// whenever the underlying file changes on disk.  It trades the per-request
// file read of FileStore for a bounded-staleness cache with an explicit
// invalidation policy: an fsnotify event on the knowledge file drops the
// snapshot and the next Load rereads the file.
//
// The watcher is attached to the file's directory rather than the file
// itself, so editors and deploy tools that replace the file atomically
// (write temp + rename) still trigger invalidation.
type WatchStore struct {
	file    *FileStore
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	entries []model.Entry
	valid   bool
}

// NewWatchStore builds a WatchStore over the knowledge file at path and
// starts its watch loop.  Callers own the returned store and should Close it
// on shutdown.
func NewWatchStore(path string) (*WatchStore, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	s := &WatchStore{file: NewFileStore(path), watcher: w}
	go s.run()
	return s, nil
}

// run consumes watcher events until the watcher is closed.  Any event that
// touches the knowledge file invalidates the snapshot; events for sibling
// files in the same directory are ignored.
func (s *WatchStore) run() {
	name := filepath.Base(s.file.Path)
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) == name {
				s.invalidate()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("knowledge: watch error: %v", err)
		}
	}
}

func (s *WatchStore) invalidate() {
	s.mu.Lock()
	s.valid = false
	s.mu.Unlock()
}

// Load returns the cached snapshot when it is still valid, otherwise rereads
// the file through the wrapped FileStore.  A failed reread leaves the store
// invalid so the next call tries again; the stale snapshot is never served
// after an invalidation.  Callers must not mutate the returned slice.
func (s *WatchStore) Load(ctx context.Context) ([]model.Entry, error) {
	s.mu.RLock()
	if s.valid {
		entries := s.entries
		s.mu.RUnlock()
		return entries, nil
	}
	s.mu.RUnlock()

	entries, err := s.file.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.entries, s.valid = entries, true
	s.mu.Unlock()
	return entries, nil
}

// Close stops the watch loop and releases the underlying watcher.
func (s *WatchStore) Close() error {
	return s.watcher.Close()
}
