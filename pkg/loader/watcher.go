package loader

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/laufblocks/laufblocks/pkg/registry"
)

// Drift describes where the registry and the filesystem disagree.
type Drift struct {
	// Missing lists published slugs whose base source file is absent.
	Missing []string `json:"missing"`
	// Untracked lists source paths that map to no registered slug.
	Untracked []string `json:"untracked"`
}

// Empty reports whether registry and filesystem agree.
func (d Drift) Empty() bool {
	return len(d.Missing) == 0 && len(d.Untracked) == 0
}

// CheckDrift compares the registry against the files on disk. A catalog
// entry without a file is legal (the block simply serves no source), so
// drift is reported, never enforced.
func (l *Loader) CheckDrift(reg *registry.Registry) Drift {
	var d Drift

	for _, block := range reg.All() {
		if !l.SourceExists(block) {
			d.Missing = append(d.Missing, block.Slug)
		}
	}
	for _, f := range l.ScanAllBlockFiles() {
		if !reg.Exists(f.Slug) {
			d.Untracked = append(d.Untracked, f.Path)
		}
	}
	return d
}

const defaultWatchDebounce = 200 * time.Millisecond

// Watcher observes the block directory and logs drift as it appears.
// Rapid change bursts per path are debounced so an editor save (write,
// chmod, rename dance) produces one check.
type Watcher struct {
	loader   *Loader
	reg      *registry.Registry
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	timersMu sync.Mutex
	timers   map[string]*time.Timer

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewWatcher creates a drift watcher over the loader's root.
func NewWatcher(l *Loader, reg *registry.Registry, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		loader:   l,
		reg:      reg,
		fsw:      fsw,
		logger:   logger,
		debounce: defaultWatchDebounce,
		timers:   make(map[string]*time.Timer),
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching the block directory tree in the background.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(w.loader.Dir()); err != nil {
		return fmt.Errorf("watch %s: %w", w.loader.Dir(), err)
	}
	w.loader.walkDirs(func(dir string) {
		if dir == w.loader.Dir() {
			return
		}
		if err := w.fsw.Add(dir); err != nil {
			w.logger.Warn("failed to watch directory", "dir", dir, "error", err)
		}
	})

	w.logger.Info("block watcher started", "dir", w.loader.Dir())
	go w.eventLoop()
	return nil
}

// Stop halts the watcher. Idempotent.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)

		w.timersMu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.timers = make(map[string]*time.Timer)
		w.timersMu.Unlock()

		err = w.fsw.Close()
		w.logger.Info("block watcher stopped")
	})
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("block watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories (block variant dirs) need their own watch.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch directory", "dir", event.Name, "error", err)
			}
			return
		}
	}

	if w.loader.SlugForPath(event.Name) == "" {
		return
	}
	if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		w.schedule(event.Name)
	}
}

// schedule arms (or re-arms) the debounce timer for one path.
func (w *Watcher) schedule(path string) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.check(path)

		w.timersMu.Lock()
		delete(w.timers, path)
		w.timersMu.Unlock()
	})
}

// check reconciles a single path against the registry.
func (w *Watcher) check(path string) {
	slug := w.loader.SlugForPath(path)
	if slug == "" {
		return
	}

	if w.loader.cache != nil {
		w.loader.cache.Invalidate(path)
	}

	_, statErr := os.Stat(path)
	onDisk := statErr == nil
	block, registered := w.reg.Get(slug)

	switch {
	case onDisk && !registered:
		w.logger.Warn("untracked block source", "path", path, "slug", slug)
	case registered && !w.loader.SourceExists(block):
		w.logger.Warn("registered block lost its source", "path", path, "slug", slug)
	default:
		w.logger.Debug("block source changed", "path", path, "slug", slug)
	}
}
