package levels

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports edits to level YAML files in a directory. Events carries
// the changed file name, debounced per file so editors that write in bursts
// emit one event. The consumer reloads the whole level either way; the name
// is for logging.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan string
	Errors chan error
}

func NewWatcher(dir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, err
	}

	w := &Watcher{
		fs:     fs,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher; run drains the fsnotify channels and closes
// Events so the consumer sees a clean shutdown.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) run() {
	defer close(w.Events)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			ext := strings.ToLower(filepath.Ext(event.Name))
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default:
				// consumer is behind; the pending event already forces a reload
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}
