// Package valuefile is the exchange point with the host process. Commits
// are written to a single file; the host pushes a value back by rewriting
// that file, which the watcher reports after a short quiet period.
package valuefile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 100 * time.Millisecond

// Store reads and writes the value file and watches it for host-driven
// changes.
type Store struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger

	mu          sync.Mutex
	lastWritten string
	timer       *time.Timer
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithDebounce overrides the quiet period applied to bursts of writes.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// NewStore creates a store for the given file path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		debounce: defaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write pushes a committed value to the host. The written content is
// remembered so the watcher does not report our own write back as an
// external change.
func (s *Store) Write(value string) error {
	s.mu.Lock()
	s.lastWritten = value
	s.mu.Unlock()
	return os.WriteFile(s.path, []byte(value), 0600)
}

// Read returns the current raw file contents, or "" when absent.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Watch reports host-driven changes to the value file until ctx is
// cancelled. The containing directory is watched so rename-replace writes
// are seen; rapid write bursts collapse into one callback.
func (s *Store) Watch(ctx context.Context, onChange func(raw string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		watcher.Close()
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				s.scheduleRead(onChange)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("value file watch error", zap.Error(err))
			}
		}
	}()
	return nil
}

func (s *Store) scheduleRead(onChange func(raw string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		raw, err := s.Read()
		if err != nil {
			s.logger.Warn("value file read failed", zap.String("path", s.path), zap.Error(err))
			return
		}
		s.mu.Lock()
		own := strings.TrimSpace(raw) == strings.TrimSpace(s.lastWritten)
		s.mu.Unlock()
		if own {
			return
		}
		s.logger.Debug("external value change", zap.String("path", s.path))
		onChange(raw)
	})
}
