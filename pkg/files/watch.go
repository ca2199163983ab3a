package files

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ventiq/ventiq-terminal/pkg/debug"
)

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 200 * time.Millisecond

// WatchOption configures a ProjectWatcher
type WatchOption func(*ProjectWatcher)

// WithDebounce sets how long the watcher waits for events to settle
func WithDebounce(d time.Duration) WatchOption {
	return func(w *ProjectWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnError sets the callback invoked on watch errors
func WithOnError(fn func(error)) WatchOption {
	return func(w *ProjectWatcher) {
		w.onError = fn
	}
}

// ProjectWatcher reports changes to the catalog and screenshot files of a
// project
type ProjectWatcher struct {
	dir      string
	names    map[string]bool
	debounce time.Duration
	onChange func()
	onError  func(error)

	fsWatcher *fsnotify.Watcher
}

// WatchProject starts watching the project directory under root. Events
// are delivered once Run is called.
func WatchProject(root string, onChange func(), opts ...WatchOption) (*ProjectWatcher, error) {
	w := &ProjectWatcher{
		dir:      filepath.Join(root, VentiqDir),
		names:    map[string]bool{CatalogFile: true, ScreenshotsFile: true},
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  func(err error) { debug.Log("watch: %v", err) },
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory; editors replace files on save
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fsWatcher = fsw

	return w, nil
}

// Run delivers change notifications until ctx is cancelled, then closes
// the watcher
func (w *ProjectWatcher) Run(ctx context.Context) {
	defer w.fsWatcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.names[filepath.Base(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			debug.Log("watch: %s", event)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}
