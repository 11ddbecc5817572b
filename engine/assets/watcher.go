package assets

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/hoard/engine/core"
)

type InvalidationOp int

const (
	// InvalidationModified means the file behind a key changed on disk
	// and a cached entry for it is stale.
	InvalidationModified InvalidationOp = iota
	// InvalidationRemoved means the file is gone.
	InvalidationRemoved
)

// Invalidation reports that a path under a watched root is out of date.
type Invalidation struct {
	Path string
	Op   InvalidationOp
}

// Watcher observes asset directories and emits invalidation events for
// files that change underneath a cache. It never touches a Manager
// itself: the manager's owner drains Events and calls Evict, which
// keeps the cache on a single goroutine.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	events   chan Invalidation
	errs     chan error
	done     chan struct{}
	isClosed bool
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsnotify: fsWatch,
		events:   make(chan Invalidation, 64),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch starts watching the named directory and all sub-directories.
func (w *Watcher) Watch(root string) error {
	if w.isClosed {
		return errors.New("watcher already closed")
	}
	return w.watchRecursive(root)
}

// Events delivers invalidations. The channel is closed by Close.
func (w *Watcher) Events() <-chan Invalidation {
	return w.events
}

// Errors delivers watch failures that do not stop the watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case e := <-w.fsnotify.Events:
			if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := w.watchRecursive(e.Name); err != nil {
						w.reportError(err)
					}
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.emit(Invalidation{Path: e.Name, Op: InvalidationModified})
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Could have been a directory; removing a non-watched
				// path is harmless.
				w.fsnotify.Remove(e.Name)
				w.emit(Invalidation{Path: e.Name, Op: InvalidationRemoved})
			}

		case err := <-w.fsnotify.Errors:
			w.reportError(err)

		case <-w.done:
			w.fsnotify.Close()
			close(w.events)
			close(w.errs)
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch
// list.
func (w *Watcher) watchRecursive(root string) error {
	return filepath.Walk(root, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		return nil
	})
}

func (w *Watcher) emit(inv Invalidation) {
	select {
	case w.events <- inv:
	default:
		core.LogWarn("invalidation queue full, dropping event for '%s'", inv.Path)
	}
}

func (w *Watcher) reportError(err error) {
	core.LogError(err.Error())
	select {
	case w.errs <- err:
	default:
	}
}
