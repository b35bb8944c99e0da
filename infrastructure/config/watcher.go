package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// LimitsWatcher watches a limits file for changes so graph size limits
// can be tuned without restarting the server.
type LimitsWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *DynamicLimits
	mu       sync.RWMutex
	onChange []func(*DynamicLimits)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// DynamicLimits represents runtime-changeable graph limits
type DynamicLimits struct {
	MaxNodes int `json:"maxNodes"`
	MaxEdges int `json:"maxEdges"`
}

// NewLimitsWatcher creates a new limits watcher
func NewLimitsWatcher(path string, logger *zap.Logger) (*LimitsWatcher, error) {
	limits, err := loadLimitsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial limits: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch limits file: %w", err)
	}

	// Also watch the directory for atomic saves (rename operations)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn("Failed to watch limits directory", zap.Error(err))
	}

	return &LimitsWatcher{
		path:    path,
		watcher: watcher,
		current: limits,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Current returns the current limits
func (w *LimitsWatcher) Current() DynamicLimits {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return *w.current
}

// OnChange registers a callback invoked after every successful reload
func (w *LimitsWatcher) OnChange(fn func(*DynamicLimits)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Start begins watching for limits changes
func (w *LimitsWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("Limits watcher started", zap.String("path", w.path))
}

// Stop stops watching for limits changes
func (w *LimitsWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("Limits watcher stopped")
}

// watchLoop is the main loop that watches for file changes
func (w *LimitsWatcher) watchLoop() {
	// Debounce timer to avoid multiple reloads on editor save patterns
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.handleChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

// handleChange reloads the limits file and notifies listeners
func (w *LimitsWatcher) handleChange() {
	w.logger.Info("Limits file changed, reloading", zap.String("path", w.path))

	limits, err := loadLimitsFromFile(w.path)
	if err != nil {
		w.logger.Error("Failed to reload limits, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = limits
	handlers := make([]func(*DynamicLimits), len(w.onChange))
	copy(handlers, w.onChange)
	w.mu.Unlock()

	for _, handler := range handlers {
		handler(limits)
	}

	w.logger.Info("Limits reloaded",
		zap.Int("maxNodes", limits.MaxNodes),
		zap.Int("maxEdges", limits.MaxEdges),
	)
}

// loadLimitsFromFile loads and validates limits from a JSON file
func loadLimitsFromFile(path string) (*DynamicLimits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var limits DynamicLimits
	if err := json.Unmarshal(data, &limits); err != nil {
		return nil, err
	}

	if limits.MaxNodes <= 0 {
		return nil, fmt.Errorf("maxNodes must be positive")
	}
	if limits.MaxEdges <= 0 {
		return nil, fmt.Errorf("maxEdges must be positive")
	}

	return &limits, nil
}
