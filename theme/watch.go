package theme

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/yllada/action-center/common"
)

// Watcher reloads a stylesheet whenever it is written, created or renamed
// into place.
type Watcher struct {
	path     string
	onChange func(Colors)

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	done     chan struct{}
}

// NewWatcher creates a watcher for path. onChange runs on the watcher goroutine.
func NewWatcher(path string, onChange func(Colors)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
	}
}

// Start begins watching. The parent directory is watched so that editors and
// theme generators replacing the file atomically are seen.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return err
	}

	w.watcher = fw
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})
	go w.run(fw, w.stopChan, w.done)

	common.LogInfo("Watching stylesheet %s", w.path)
	return nil
}

// Stop ends watching and waits for the watcher goroutine.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.watcher == nil {
		w.mu.Unlock()
		return
	}
	close(w.stopChan)
	fw, done := w.watcher, w.done
	w.watcher = nil
	w.mu.Unlock()

	fw.Close()
	<-done
}

func (w *Watcher) run(fw *fsnotify.Watcher, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			common.LogDebug("Stylesheet changed (%s), reloading", ev.Op)
			w.onChange(Load(w.path))
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			common.LogWarn("Stylesheet watcher: %v", err)
		}
	}
}
