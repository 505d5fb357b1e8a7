// Package watcher reports changes to the day and year packages of a workspace.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"aocsync/internal/domain"
)

// Change says that the day-set of a year, or the year-set itself, may have changed
type Change struct {
	Year domain.Year
	// YearRemoved is set when the year package directory itself went away
	YearRemoved bool
	Path        string
}

// Watcher watches the workspace root, every year directory and every day
// directory. Generated files and inputs never produce a Change.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	changes chan Change
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// New creates a Watcher for the workspace at root.
// It must be started with Start before it emits changes.
func New(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		root:    filepath.Clean(root),
		watcher: w,
		changes: make(chan Change, 100),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start adds the current workspace tree to the watch list and begins
// processing events
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}

	if err := w.watcher.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch workspace %s: %w", w.root, err)
	}

	entries, err := os.ReadDir(w.root)
	if err != nil {
		return fmt.Errorf("failed to read workspace: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, ok, _ := domain.ParseYearDir(entry.Name()); ok {
			if err := w.addYear(filepath.Join(w.root, entry.Name())); err != nil {
				return err
			}
		}
	}

	w.running = true
	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop stops watching and closes the channels.
// It blocks until the event loop has exited.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	w.wg.Wait()

	close(w.changes)
	close(w.errors)

	return nil
}

// Changes returns the channel of workspace changes.
// It is closed when the watcher is stopped.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Errors returns the channel of watch and naming errors.
// It is closed when the watcher is stopped.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) addYear(yearDir string) error {
	if err := w.watcher.Add(yearDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", yearDir, err)
	}

	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", yearDir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, ok, _ := domain.ParseDayDir(entry.Name()); ok {
			if err := w.watcher.Add(filepath.Join(yearDir, entry.Name())); err != nil {
				return fmt.Errorf("failed to watch %s: %w", entry.Name(), err)
			}
		}
	}
	return nil
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			change, ok, err := w.convertEvent(event)
			if err != nil {
				w.sendError(err)
				continue
			}
			if !ok {
				continue
			}

			select {
			case w.changes <- change:
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	case <-w.done:
	}
}

// convertEvent maps a raw event to a Change, watching new directories on the way
func (w *Watcher) convertEvent(event fsnotify.Event) (Change, bool, error) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return Change{}, false, nil
	}
	created := event.Has(fsnotify.Create)

	dir, name := filepath.Split(event.Name)
	dir = filepath.Clean(dir)

	// y<N> directly under the root
	if dir == w.root {
		year, ok, err := domain.ParseYearDir(name)
		if err != nil || !ok {
			return Change{}, false, err
		}
		if created {
			if isDir(event.Name) {
				if err := w.addYear(event.Name); err != nil {
					return Change{}, false, err
				}
			}
		}
		return Change{Year: year, YearRemoved: !created, Path: event.Name}, true, nil
	}

	parent, parentName := filepath.Split(dir)
	parent = filepath.Clean(parent)

	// day<N> inside a year directory
	if parent == w.root {
		year, ok, err := domain.ParseYearDir(parentName)
		if err != nil || !ok {
			return Change{}, false, err
		}
		if _, ok, err := domain.ParseDayDir(name); err != nil || !ok {
			return Change{}, false, err
		}
		if created && isDir(event.Name) {
			if err := w.watcher.Add(event.Name); err != nil {
				return Change{}, false, fmt.Errorf("failed to watch %s: %w", event.Name, err)
			}
		}
		return Change{Year: year, Path: event.Name}, true, nil
	}

	// day<N>.go inside a day directory
	yearDir := filepath.Base(parent)
	year, ok, err := domain.ParseYearDir(yearDir)
	if err != nil || !ok || filepath.Dir(parent) != w.root {
		return Change{}, false, err
	}
	if name != parentName+".go" {
		return Change{}, false, nil
	}
	if _, ok, err := domain.ParseDayDir(parentName); err != nil || !ok {
		return Change{}, false, err
	}
	return Change{Year: year, Path: event.Name}, true, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
