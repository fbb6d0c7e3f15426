package fetch

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// LogoCache downloads the logo image once and reuses the on-disk copy for
// every later report. The cache contract is write-once, read-many, tolerate
// races: writes go through a temp file and rename, and a lost race simply
// means the bytes were already written by someone else.
type LogoCache struct {
	URL     string
	Path    string
	options *Options
	group   singleflight.Group
}

// NewLogoCache creates a cache for the given remote URL and local path.
func NewLogoCache(url, path string, opts *Options) *LogoCache {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &LogoCache{
		URL:     url,
		Path:    path,
		options: opts,
	}
}

// Get returns the logo bytes, fetching and caching them on first use.
// Concurrent first calls are collapsed into a single download. Every error is
// recoverable: the caller proceeds without the image.
func (c *LogoCache) Get(ctx context.Context) ([]byte, error) {
	if data, err := os.ReadFile(c.Path); err == nil && len(data) > 0 {
		return data, nil
	}

	v, err, _ := c.group.Do(c.Path, func() (any, error) {
		// Re-check: another caller may have finished the write while this
		// one waited on the flight group.
		if data, err := os.ReadFile(c.Path); err == nil && len(data) > 0 {
			return data, nil
		}

		data, err := Bytes(ctx, c.URL, c.options)
		if err != nil {
			return nil, err
		}
		if err := writeAtomic(c.Path, data); err != nil {
			// The fetch succeeded; a failed cache write only costs a
			// re-download next time.
			log.Printf("[fetch] failed to cache logo at %s: %v", c.Path, err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// writeAtomic writes data to path via a temp file and rename so a partial
// write can never corrupt a later read.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
