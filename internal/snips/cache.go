package snips

import (
	"os"
	"sync"
)

// ReadFileFunc reads a file by path. It exists so the reconciler can be
// exercised against in-memory file sets.
type ReadFileFunc func(path string) ([]byte, error)

// Cache holds source file contents for the duration of one run. Every
// reference to the same file within a run sees an identical snapshot,
// and each file is read at most once. The first reader for a path wins;
// later readers receive the cached value. Read failures are cached too,
// so a missing file is reported once per referencing marker without
// retrying the read.
type Cache struct {
	readFile ReadFileFunc

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	text string
	err  error
}

// NewCache returns a cache backed by readFile, or os.ReadFile when nil.
func NewCache(readFile ReadFileFunc) *Cache {
	if readFile == nil {
		readFile = os.ReadFile
	}

	return &Cache{readFile: readFile, entries: make(map[string]*cacheEntry)}
}

// Load returns the contents of the source file at path.
func (c *Cache) Load(path string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok {
		return e.text, e.err
	}

	e := &cacheEntry{}

	data, err := c.readFile(path)
	if err != nil {
		e.err = &SourceUnreadableError{Path: path, Err: err}
	} else {
		e.text = string(data)
	}

	c.entries[path] = e

	return e.text, e.err
}
