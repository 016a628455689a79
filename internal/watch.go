package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/cssx-dev/cssx/extractor"
)

// ExtractionCallback is invoked with the freshly extracted results every
// time a watched file changes.
type ExtractionCallback func(path string, extracted []extractor.Extracted)

// StartWatching walks every directory under rootDir, registers each with
// an fsnotify watcher, and begins reacting to write events. onChange is
// called from the watch goroutine after each write event's extraction.
func (e *Engine) StartWatching(rootDir string, onChange ExtractionCallback) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchDirs = []string{rootDir}

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return nil
			}
			if e.isIgnoredDir(path) {
				return filepath.SkipDir
			}
			return e.watcher.Add(path)
		})
		if err != nil {
			return fmt.Errorf("adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop(onChange)
	return nil
}

func (e *Engine) isIgnoredDir(path string) bool {
	base := filepath.Base(path)
	for _, frag := range e.cfg.Ignore {
		if frag != "" && base == frag {
			return true
		}
	}
	return false
}

// StopWatching closes the underlying fsnotify watcher.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		return nil
	}

	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop(onChange ExtractionCallback) {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, onChange)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			if e.logger != nil {
				e.logger.Warn("watch error", zap.Error(err))
			}
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, onChange ExtractionCallback) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !e.matchesWatchedExtension(event.Name) {
		return
	}

	// wait briefly so the writer can finish before the file is read; every
	// write event is still handled, and extracted, on its own
	time.Sleep(100 * time.Millisecond)

	extracted, err := e.Run(event.Name)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("failed to extract changed file", zap.String("path", event.Name), zap.Error(err))
		}
		return
	}
	onChange(event.Name, extracted)
}

func (e *Engine) matchesWatchedExtension(path string) bool {
	if len(e.cfg.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range e.cfg.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
