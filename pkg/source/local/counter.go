package local

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordstack/pkg/errors"
	"github.com/matzehuels/wordstack/pkg/fetch"
	"github.com/matzehuels/wordstack/pkg/histogram"
)

// Defaults for [Counter].
const (
	DefaultMaxZipDepth = 8
	// DefaultMaxEntryBytes bounds the decompressed size of one archive entry.
	DefaultMaxEntryBytes = 256 << 20
)

// Stats describes what a count visited.
type Stats struct {
	Files    int // .txt files and archive entries counted
	Archives int // .zip archives opened, nested ones included
	Skipped  int // files or entries that could not be read
	Words    int // total words counted
}

// Counter counts words in .txt files and .zip archives under a directory.
// A Counter holds no per-call state and may be reused.
type Counter struct {
	logger        *log.Logger
	maxZipDepth   int
	maxEntryBytes int64
}

// Option configures a [Counter].
type Option func(*Counter)

// WithLogger sets the logger used for skipped files and progress.
func WithLogger(l *log.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxZipDepth limits how deeply nested archives are followed.
// An archive found directly in the tree has depth 1.
func WithMaxZipDepth(n int) Option {
	return func(c *Counter) { c.maxZipDepth = max(n, 0) }
}

// WithMaxEntryBytes limits the decompressed size of an archive entry.
func WithMaxEntryBytes(n int64) Option {
	return func(c *Counter) {
		if n > 0 {
			c.maxEntryBytes = n
		}
	}
}

// NewCounter creates a Counter.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{
		logger:        log.NewWithOptions(io.Discard, log.Options{}),
		maxZipDepth:   DefaultMaxZipDepth,
		maxEntryBytes: DefaultMaxEntryBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ fetch.Fetcher = (*Counter)(nil)

// Fetch counts the words under path and returns them alphabetically.
func (c *Counter) Fetch(ctx context.Context, path string) (histogram.Frequencies, error) {
	counts, _, err := c.Count(ctx, path)
	if err != nil {
		return nil, err
	}
	return histogram.FromMap(counts, histogram.OrderAlphabetical)
}

// String describes the counter for log output.
func (c *Counter) String() string { return "local" }

// Count walks root and returns the raw word counts.
//
// A root that does not exist or is not a directory yields an empty map and
// no error. A root that exists but cannot be walked fails with
// INVALID_PATH. Cancelling ctx stops the walk and returns ctx.Err().
func (c *Counter) Count(ctx context.Context, root string) (map[string]int, Stats, error) {
	var stats Stats
	counts := make(map[string]int)

	if err := errors.ValidateRequestPath(root); err != nil {
		return nil, stats, err
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		c.logger.Debug("path does not exist", "path", root)
		return counts, stats, nil
	case err != nil:
		return nil, stats, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot read %s", root)
	case !info.IsDir():
		c.logger.Debug("path is not a directory", "path", root)
		return counts, stats, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot walk %s", root)
			}
			c.skip(&stats, path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		switch ext(d.Name()) {
		case ".txt":
			c.countFile(path, counts, &stats)
		case ".zip":
			data, err := os.ReadFile(path)
			if err != nil {
				c.skip(&stats, path, err)
				return nil
			}
			c.countArchive(ctx, path, data, 1, counts, &stats)
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	c.logger.Debug("counted words",
		"path", root,
		"files", stats.Files,
		"archives", stats.Archives,
		"skipped", stats.Skipped,
		"distinct", len(counts),
		"words", stats.Words)
	return counts, stats, nil
}

func (c *Counter) countFile(path string, counts map[string]int, stats *Stats) {
	f, err := os.Open(path)
	if err != nil {
		c.skip(stats, path, err)
		return
	}
	defer f.Close()
	c.countReader(path, f, counts, stats)
}

func (c *Counter) countReader(name string, r io.Reader, counts map[string]int, stats *Stats) {
	// Count into a scratch map so a failed read leaves counts untouched.
	local := make(map[string]int)
	n, err := CountWords(r, local)
	if err != nil {
		c.skip(stats, name, err)
		return
	}
	for w, k := range local {
		counts[w] += k
	}
	stats.Files++
	stats.Words += n
}

func (c *Counter) countArchive(ctx context.Context, name string, data []byte, depth int, counts map[string]int, stats *Stats) {
	if depth > c.maxZipDepth {
		c.skip(stats, name, fmt.Errorf("archive nesting deeper than %d", c.maxZipDepth))
		return
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		c.skip(stats, name, err)
		return
	}
	stats.Archives++

	for _, f := range zr.File {
		if ctx.Err() != nil {
			return
		}
		if f.FileInfo().IsDir() {
			continue
		}
		entry := name + "!" + f.Name
		switch ext(f.Name) {
		case ".txt":
			body, err := c.readEntry(f)
			if err != nil {
				c.skip(stats, entry, err)
				continue
			}
			c.countReader(entry, bytes.NewReader(body), counts, stats)
		case ".zip":
			body, err := c.readEntry(f)
			if err != nil {
				c.skip(stats, entry, err)
				continue
			}
			c.countArchive(ctx, entry, body, depth+1, counts, stats)
		}
	}
}

func (c *Counter) readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, c.maxEntryBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > c.maxEntryBytes {
		return nil, fmt.Errorf("entry larger than %d bytes", c.maxEntryBytes)
	}
	return data, nil
}

func (c *Counter) skip(stats *Stats, path string, err error) {
	stats.Skipped++
	c.logger.Warn("skipping unreadable file", "path", path, "error", err)
}

func ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
