package assets

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/gamemath/engine/core"
)

var ErrWatcherClosed = errors.New("watcher already closed")

// ConfigWatcher reports changes to a single file. It watches the parent
// directory so that editors which save by rename are still noticed.
type ConfigWatcher struct {
	path string

	mutex    sync.Mutex
	isClosed bool

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	changes  chan string
	errors   chan error
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	// Event names use the resolved directory.
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &ConfigWatcher{
		path:     abs,
		fsnotify: fsWatch,
		changes:  make(chan string, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Changes delivers the watched path after every write or re-create.
// Bursts of events collapse into a single pending notification.
func (w *ConfigWatcher) Changes() <-chan string {
	return w.changes
}

func (w *ConfigWatcher) Errors() <-chan error {
	return w.errors
}

func (w *ConfigWatcher) Path() string {
	return w.path
}

// Close stops the watcher and closes both channels.
func (w *ConfigWatcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *ConfigWatcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			core.LogDebug("config %s changed (%s)", w.path, e.Op)
			select {
			case w.changes <- w.path:
			default:
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err.Error())
			select {
			case w.errors <- err:
			default:
			}

		case <-w.done:
			w.fsnotify.Close()
			close(w.changes)
			close(w.errors)
			return
		}
	}
}
