package settings

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a Store when its settings file is edited outside the
// process (for example by `driftglass settings set` in another terminal).
// It watches the containing directory so the file may be created, replaced,
// or atomically renamed into place after the watcher starts.
type Watcher struct {
	mu      sync.RWMutex
	watcher *fsnotify.Watcher
	store   *Store
	dir     string

	debounceDur time.Duration
	pendingAt   time.Time
	pending     bool

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool

	stats WatcherStats

	logger *zap.Logger
}

// WatcherStats tracks watcher activity for debugging.
type WatcherStats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventTime time.Time
}

// NewWatcher creates a watcher for the store's settings file. Fails only if
// the platform cannot provide a filesystem watcher; callers treat that as
// degrade-to-no-reload, never fatal.
func NewWatcher(store *Store, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:     fsw,
		store:       store,
		dir:         filepath.Dir(store.Path()),
		debounceDur: 200 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		logger:      logger,
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		// Directory may not exist until the first persist; reload stays off
		// until a restart rather than failing the session.
		w.logger.Warn("settings watch failed", zap.String("dir", w.dir), zap.Error(err))
	} else {
		w.logger.Debug("watching settings directory", zap.String("dir", w.dir))
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit. Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("error closing settings watcher", zap.Error(err))
	}
}

// Stats returns a snapshot of watcher activity counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	target := filepath.Clean(w.store.Path())

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.stats.Events++
			w.stats.LastEventTime = time.Now()
			w.pending = true
			w.pendingAt = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-tick.C:
			w.mu.Lock()
			due := w.pending && time.Since(w.pendingAt) >= w.debounceDur
			if due {
				w.pending = false
				w.stats.Reloads++
			}
			w.mu.Unlock()
			if due {
				w.store.Reload()
			}
		}
	}
}
