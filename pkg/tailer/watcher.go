package tailer

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// fileWatcher watches the parent directory of one file and invokes onChange
// for every write event on exactly that file. Events for other files in the
// directory are ignored.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	name     string
	onChange func()
	logger   zerolog.Logger
	done     chan struct{}
	stopOnce sync.Once
}

func newFileWatcher(logger zerolog.Logger, path string, onChange func()) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	fw := &fileWatcher{
		watcher:  watcher,
		name:     filepath.Base(path),
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go fw.run()

	logger.Debug().Str("dir", dir).Str("file", fw.name).Msg("File watcher started")
	return fw, nil
}

// stop closes the underlying watcher, unblocking the event loop. Idempotent.
func (fw *fileWatcher) stop() {
	fw.stopOnce.Do(func() {
		close(fw.done)
		if err := fw.watcher.Close(); err != nil {
			fw.logger.Error().Err(err).Msg("Failed to close file watcher")
		}
	})
}

// run processes filesystem events until the watcher is stopped or fails. A
// watch failure ends live updates without touching content already
// delivered.
func (fw *fileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fw.name {
				continue
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			fw.logger.Debug().Str("file", fw.name).Str("op", event.Op.String()).Msg("File change detected")
			fw.onChange()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error().Err(err).Msg("File watcher failed, live updates disabled")
			return

		case <-fw.done:
			return
		}
	}
}
