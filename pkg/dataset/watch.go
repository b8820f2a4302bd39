package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Reload is emitted by Watch after the dataset file changes. Err is set when
// the new content could not be loaded; the previous dataset stays valid.
type Reload struct {
	Dataset *Dataset
	Err     error
}

// Watch reloads the dataset at path whenever it is written, until ctx is
// cancelled. The parent directory is watched so that editors replacing the
// file by rename are seen. Bursts of writes are coalesced into one reload.
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("dataset: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("dataset: watch %s: %w", filepath.Dir(abs), err)
	}

	reloads := make(chan Reload, 1)
	go func() {
		defer close(reloads)
		defer watcher.Close()

		emit := func(r Reload) bool {
			select {
			case reloads <- r:
				return true
			case <-ctx.Done():
				return false
			}
		}
		throttle := newThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-throttle.C():
				ds, err := Load(abs)
				if !emit(Reload{Dataset: ds, Err: err}) {
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if !emit(Reload{Err: err}) {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				throttle.Trigger()
			}
		}
	}()
	return reloads, nil
}

// throttle signals C once per burst of triggers.
type throttle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	due   chan struct{}
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay, due: make(chan struct{}, 1)}
}

// C fires after a burst settles.
func (t *throttle) C() <-chan struct{} { return t.due }

func (t *throttle) Trigger() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		select {
		case t.due <- struct{}{}:
		default:
		}
	})
}

func (t *throttle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
