package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cssx-dev/cssx/extractor"
	"github.com/cssx-dev/cssx/internal/config"
	"github.com/cssx-dev/cssx/internal/scanner"
	"github.com/cssx-dev/cssx/preprocessor"
)

// maxConcurrentExtractions bounds how many files are read and scanned at
// once, so a project with tens of thousands of files doesn't open them all
// at the same time.
const maxConcurrentExtractions = 8

// FileResult pairs one scanned file with what was extracted from it.
type FileResult struct {
	Path      string
	Extracted []extractor.Extracted
	Err       error
}

// Engine orchestrates scanning, preprocessing, extraction and caching
// across an entire project tree.
type Engine struct {
	cfg      config.Config
	cache    *Cache
	registry *preprocessor.Registry
	logger   *zap.Logger
	rootDir  string

	watcher    *fsnotify.Watcher
	isWatching bool
	watchDirs  []string
}

// NewEngine builds an Engine rooted at rootDir. When useCache is true, a
// gob-backed Cache is opened under cfg.CacheDir and the config file at
// configPath (if non-empty) is tracked as a cache dependency, so editing
// which preprocessors run invalidates every cached result.
func NewEngine(rootDir string, cfg config.Config, useCache bool, configPath string, logger *zap.Logger) (*Engine, error) {
	e := &Engine{
		cfg:      cfg,
		registry: preprocessor.NewRegistry(),
		logger:   logger,
		rootDir:  rootDir,
	}

	if useCache {
		cache, err := NewCache(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
		if configPath != "" {
			if err := cache.SetDependencyFiles(configPath); err != nil && logger != nil {
				logger.Warn("failed to hash config dependency", zap.Error(err))
			}
		}
		e.cache = cache
	}

	return e, nil
}

// Extract scans rootDir and runs the extractor, through any preprocessor
// bound to a file's extension, over every matching file. Concurrency is
// bounded with an errgroup and progress is reported on a progress bar.
func (e *Engine) Extract(ctx context.Context) ([]FileResult, error) {
	s := scanner.New(e.rootDir, e.cfg.Extensions, e.cfg.Ignore)
	files, err := s.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", e.rootDir, err)
	}

	bar := progressbar.Default(int64(len(files)), "extracting")
	defer bar.Close()

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentExtractions)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			extracted, runErr := e.runFile(f.Path)
			results[i] = FileResult{Path: f.Path, Extracted: extracted, Err: runErr}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Run extracts a single file, consulting and populating the cache the same
// way Extract does for a whole tree.
func (e *Engine) Run(path string) ([]extractor.Extracted, error) {
	return e.runFile(path)
}

func (e *Engine) runFile(path string) ([]extractor.Extracted, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(path); ok {
			return cached, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content = e.preprocess(path, content)

	extracted := extractor.New().Extract(content)

	if e.cache != nil {
		if err := e.cache.Set(path, extracted); err != nil && e.logger != nil {
			e.logger.Warn("failed to cache extraction result", zap.String("path", path), zap.Error(err))
		}
	}

	return extracted, nil
}

// preprocess applies the preprocessor bound to path's extension, if any.
func (e *Engine) preprocess(path string, content []byte) []byte {
	ext := filepath.Ext(path)
	for _, binding := range e.cfg.Preprocessors {
		for _, boundExt := range binding.Extensions {
			if boundExt != ext {
				continue
			}
			if p, ok := e.registry.Lookup(binding.Name); ok {
				return p.Process(content)
			}
		}
	}
	return content
}
