// Package scanner walks a project tree and collects the files the engine
// should feed through the extractor.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// FileInfo describes one file selected for extraction.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a filesystem, collecting files that match a set of
// extensions and don't fall under an ignored directory. Fs is an afero.Fs
// so tests can substitute an in-memory filesystem instead of touching disk.
type Scanner struct {
	Fs         afero.Fs
	rootDir    string
	extensions []string
	ignore     []string
}

// New returns a Scanner rooted at rootDir. An empty extensions list matches
// every file.
func New(rootDir string, extensions, ignore []string) *Scanner {
	return &Scanner{
		Fs:         afero.NewOsFs(),
		rootDir:    rootDir,
		extensions: extensions,
		ignore:     ignore,
	}
}

// Scan walks the tree rooted at s.rootDir and stats every matching file
// concurrently, bounding fan-out with an errgroup so a directory with
// thousands of files doesn't spawn an unbounded number of goroutines.
func (s *Scanner) Scan(ctx context.Context) ([]FileInfo, error) {
	var paths []string
	err := afero.Walk(s.Fs, s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if s.isIgnored(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.isIgnored(path) {
			return nil
		}
		if s.matchesExtension(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, len(paths))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			info, statErr := s.Fs.Stat(path)
			if statErr != nil {
				return statErr
			}
			mu.Lock()
			files[i] = FileInfo{Path: path, Size: info.Size()}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (s *Scanner) matchesExtension(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range s.extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func (s *Scanner) isIgnored(path string) bool {
	for _, frag := range s.ignore {
		if frag == "" {
			continue
		}
		if strings.Contains(path, string(filepath.Separator)+frag+string(filepath.Separator)) ||
			strings.HasPrefix(path, frag+string(filepath.Separator)) ||
			filepath.Base(path) == frag {
			return true
		}
	}
	return false
}
