package loader

import (
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/laufblocks/laufblocks/pkg/util"
)

// DefaultCacheSize bounds the number of mapped block sources. The whole
// seed catalog with every variant fits with room to spare.
const DefaultCacheSize = 256

// Cache is a read-through cache of block source files backed by
// memory-mapped regions. Evicted entries are unmapped; if a file cannot
// be mapped the read falls back to os.ReadFile and is not cached.
//
// Thread-safe. Returned strings are copies and stay valid after
// eviction or Close.
type Cache struct {
	mu     sync.Mutex
	files  *lru.Cache[string, *mappedFile]
	logger *slog.Logger

	hits      int64
	misses    int64
	fallbacks int64
}

type mappedFile struct {
	f    *os.File
	data mmap.MMap
}

func (m *mappedFile) close() {
	if m.data != nil {
		_ = m.data.Unmap()
	}
	if m.f != nil {
		_ = m.f.Close()
	}
}

// CacheStats is a point-in-time view of cache behavior.
type CacheStats struct {
	Entries   int   `json:"entries"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Fallbacks int64 `json:"fallbacks"`
}

// NewCache creates a Cache holding at most size mapped files. A size of
// zero or less uses DefaultCacheSize.
func NewCache(size int, logger *slog.Logger) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = util.NewNopLogger()
	}
	c := &Cache{logger: logger}
	// NewWithEvict only fails on a non-positive size, checked above.
	c.files, _ = lru.NewWithEvict(size, func(path string, mf *mappedFile) {
		mf.close()
	})
	return c
}

// ReadFile returns the contents of path. Absence and read failures both
// report !ok; mapping failures degrade to a plain read.
func (c *Cache) ReadFile(path string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mf, ok := c.files.Get(path); ok {
		c.hits++
		return string(mf.data), true
	}
	c.misses++

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("block source unreadable", "path", path, "error", err)
		}
		return "", false
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return "", false
	}
	if info.Size() == 0 {
		c.files.Add(path, &mappedFile{f: f})
		return "", true
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		c.fallbacks++
		c.logger.Warn("mmap failed, falling back to direct read", "path", path, "error", err)
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			return "", false
		}
		return string(raw), true
	}

	c.files.Add(path, &mappedFile{f: f, data: data})
	return string(data), true
}

// Invalidate drops a path from the cache, unmapping it.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files.Remove(path)
}

// Stats returns current cache metrics.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Entries:   c.files.Len(),
		Hits:      c.hits,
		Misses:    c.misses,
		Fallbacks: c.fallbacks,
	}
}

// Close unmaps every cached file.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files.Purge()
}
