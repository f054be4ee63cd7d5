// Package levelwatch reloads a level file when it changes on disk.
package levelwatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

// DefaultDebounce collapses the burst of writes editors make on save.
const DefaultDebounce = 100 * time.Millisecond

// Update is the result of reloading the watched file.
type Update struct {
	Level levels.Descriptor
	Err   error
}

// Watcher watches one level file. Updates is closed after Close.
type Watcher struct {
	Updates <-chan Update

	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	loader   *levels.Loader
	updates  chan Update
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// New starts watching path. The file's directory is watched so that
// editors replacing the file by rename are seen too.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("levelwatch: cannot resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("levelwatch: cannot create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("levelwatch: cannot watch %s: %w", dir, err)
	}

	updates := make(chan Update, 4)
	w := &Watcher{
		Updates:  updates,
		path:     abs,
		debounce: debounce,
		fs:       fw,
		loader:   levels.NewLoader(dir),
		updates:  updates,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.updates)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			d, err := w.loader.LoadFile(w.path)
			w.send(Update{Level: d, Err: err})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(Update{Err: fmt.Errorf("levelwatch: %w", err)})
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) send(u Update) {
	select {
	case w.updates <- u:
	case <-w.closeCh:
	}
}
