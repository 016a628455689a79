package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cssx-dev/cssx/extractor"
)

func TestCache(t *testing.T) {
	tmpDir := t.TempDir()

	cacheDir := filepath.Join(tmpDir, "cache")
	cache, err := NewCache(cacheDir)
	require.NoError(t, err)

	t.Run("SaveAndLoad", func(t *testing.T) {
		extracted := []extractor.Extracted{
			{Kind: extractor.ExtractedCandidate, Bytes: []byte("flex")},
		}

		filename := filepath.Join(tmpDir, "test.html")
		err := os.WriteFile(filename, []byte(`<div class="flex"></div>`), 0644)
		require.NoError(t, err)

		err = cache.Set(filename, extracted)
		assert.NoError(t, err)

		loaded, found := cache.Get(filename)
		assert.True(t, found)
		assert.Equal(t, extracted, loaded)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, found := cache.Get("nonexistent.html")
		assert.False(t, found)
	})

	t.Run("FileModified", func(t *testing.T) {
		filename := filepath.Join(tmpDir, "modified.html")
		err := os.WriteFile(filename, []byte(`<div class="flex"></div>`), 0644)
		require.NoError(t, err)

		extracted := []extractor.Extracted{
			{Kind: extractor.ExtractedCandidate, Bytes: []byte("flex")},
		}

		err = cache.Set(filename, extracted)
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		err = os.WriteFile(filename, []byte(`<div class="italic"></div>`), 0644)
		require.NoError(t, err)

		_, found := cache.Get(filename)
		assert.False(t, found)
	})
}

func TestCacheMaxAge(t *testing.T) {
	tmpDir := t.TempDir()
	cacheDir := filepath.Join(tmpDir, "cache")
	cache, err := NewCache(cacheDir)
	require.NoError(t, err)
	cache.SetMaxAge(time.Millisecond)

	filename := filepath.Join(tmpDir, "test.html")
	require.NoError(t, os.WriteFile(filename, []byte("content"), 0644))

	require.NoError(t, cache.Set(filename, []extractor.Extracted{
		{Kind: extractor.ExtractedCandidate, Bytes: []byte("flex")},
	}))

	time.Sleep(10 * time.Millisecond)

	_, found := cache.Get(filename)
	assert.False(t, found)
}

func TestCacheDependencyInvalidation(t *testing.T) {
	tmpDir := t.TempDir()
	cacheDir := filepath.Join(tmpDir, "cache")
	cache, err := NewCache(cacheDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".cssx.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("name: cssx\n"), 0644))
	require.NoError(t, cache.SetDependencyFiles(configPath))

	filename := filepath.Join(tmpDir, "test.html")
	require.NoError(t, os.WriteFile(filename, []byte("content"), 0644))
	require.NoError(t, cache.Set(filename, []extractor.Extracted{
		{Kind: extractor.ExtractedCandidate, Bytes: []byte("flex")},
	}))

	_, found := cache.Get(filename)
	assert.True(t, found)

	require.NoError(t, os.WriteFile(configPath, []byte("name: cssx\nignore: [dist]\n"), 0644))
	require.NoError(t, cache.SetDependencyFiles(configPath))

	_, found = cache.Get(filename)
	assert.False(t, found)
}

func TestCacheConcurrency(t *testing.T) {
	tmpDir := t.TempDir()
	cacheDir := filepath.Join(tmpDir, "cache")
	cache, err := NewCache(cacheDir)
	require.NoError(t, err)

	testFile := filepath.Join(tmpDir, "test.html")
	require.NoError(t, os.WriteFile(testFile, []byte("content"), 0644))

	extracted := []extractor.Extracted{
		{Kind: extractor.ExtractedCandidate, Bytes: []byte("flex")},
	}

	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func() {
			_ = cache.Set(testFile, extracted)
			done <- struct{}{}
		}()
		go func() {
			_, _ = cache.Get(testFile)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 100; i++ {
		<-done
	}
}
