package patch

import (
	"bytes"
	"errors"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event is sent by a Watcher when the patch file changed.
type Event struct {
	Patch *Patch
	Err   error
}

// Watcher reloads a patch file whenever it is written.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan Event
	done    chan struct{}
	mu      sync.Mutex
	running bool
	last    []byte
}

func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:    path,
		watcher: fsWatcher,
		events:  make(chan Event, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. The current contents of the file are not sent.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	w.last, _ = os.ReadFile(w.path)
	if err := w.watcher.Add(w.path); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			close(w.events)
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.handleFileChange()
			}
			// Editors that save by rename remove the watched file.
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				_ = w.watcher.Add(w.path)
				w.handleFileChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Event{Err: err})
		}
	}
}

func (w *Watcher) handleFileChange() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.send(Event{Err: err})
		return
	}
	// An empty file is a write in progress.
	if len(data) == 0 || bytes.Equal(data, w.last) {
		return
	}
	p, err := Parse(data)
	if err != nil {
		w.send(Event{Err: err})
		return
	}
	w.last = data
	w.send(Event{Patch: p})
}

func (w *Watcher) send(e Event) {
	select {
	case w.events <- e:
	case <-w.done:
	}
}
