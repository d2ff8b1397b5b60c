// Package reload keeps a property tree loaded from disk up to date.
package reload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	prop "github.com/signadot/prop-format"
	"github.com/signadot/prop-format/ir"
)

const DefaultDebounce = 500 * time.Millisecond

var ErrWatching = errors.New("already watching")

// Holder holds the tree loaded from a file and its includes. Access is safe
// from several goroutines. A failed reload keeps the previous tree.
type Holder struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
	loadOpts []prop.LoadOption

	loadMu sync.Mutex
	loader *prop.Loader

	mu      sync.RWMutex
	current *ir.Node
	files   []string
	watcher *fsnotify.Watcher
	dirs    map[string]bool
	done    chan struct{}

	listenMu  sync.RWMutex
	listeners []chan<- *ir.Node
}

type Option func(*Holder)

// Debounce sets how long file events must stop before a reload.
func Debounce(d time.Duration) Option {
	return func(h *Holder) { h.debounce = d }
}

func Logger(l *slog.Logger) Option {
	return func(h *Holder) { h.log = l }
}

func LoadOptions(opts ...prop.LoadOption) Option {
	return func(h *Holder) { h.loadOpts = append(h.loadOpts, opts...) }
}

// NewHolder loads path, resolving includes keyed by directive.
func NewHolder(path, directive string, opts ...Option) (*Holder, error) {
	h := &Holder{
		path:     path,
		debounce: DefaultDebounce,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With("component", "reload", "path", path)
	h.loader = prop.NewLoader(directive, h.loadOpts...)
	node, err := h.loader.Load(path)
	if err != nil {
		return nil, err
	}
	h.current = node
	h.files = h.loader.Files()
	return h, nil
}

// Get returns a copy of the current tree.
func (h *Holder) Get() *ir.Node {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Clone()
}

// Files returns the files the current tree was loaded from, plus any that a
// failed reload tried to read.
func (h *Holder) Files() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.files...)
}

// Reload loads the tree again. On error the current tree is kept.
func (h *Holder) Reload(_ context.Context) error {
	h.loadMu.Lock()
	node, err := h.loader.Load(h.path)
	files := h.loader.Files()
	h.loadMu.Unlock()
	if err != nil {
		h.log.Error("reload failed", "error", err)
		// keep watching what the failed load reached, so that creating a
		// missing include triggers the next reload
		h.mu.Lock()
		for _, f := range files {
			if !slices.Contains(h.files, f) {
				h.files = append(h.files, f)
			}
		}
		if h.watcher != nil {
			if werr := h.watchDirs(files); werr != nil {
				h.log.Error("could not watch included files", "error", werr)
			}
		}
		h.mu.Unlock()
		return fmt.Errorf("reload %s: %w", h.path, err)
	}

	h.mu.Lock()
	h.current = node
	h.files = files
	if h.watcher != nil {
		if err := h.watchDirs(files); err != nil {
			h.log.Error("could not watch included files", "error", err)
		}
	}
	h.mu.Unlock()

	h.log.Info("reloaded", "files", len(files))
	h.notify(node)
	return nil
}

// Subscribe registers ch to receive a copy of the tree after each successful
// reload. Sends never block: a full channel misses the update.
func (h *Holder) Subscribe(ch chan<- *ir.Node) {
	h.listenMu.Lock()
	defer h.listenMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notify(node *ir.Node) {
	h.listenMu.RLock()
	defer h.listenMu.RUnlock()
	for _, ch := range h.listeners {
		select {
		case ch <- node.Clone():
		default:
			h.log.Warn("listener skipped, channel full")
		}
	}
}

// Watch reloads whenever one of the loaded files is written or created,
// until ctx is done or Close is called. Directories rather than files are
// watched so that editors which replace files are followed.
func (h *Holder) Watch(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watcher != nil {
		return ErrWatching
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = w
	h.dirs = map[string]bool{}
	if err := h.watchDirs(h.files); err != nil {
		h.log.Error("could not watch included files", "error", err)
	}
	h.done = make(chan struct{})
	go h.watchLoop(ctx, w, h.done)
	h.log.Info("watching", "dirs", len(h.dirs))
	return nil
}

// watchDirs is called with h.mu held. Directories that cannot be watched
// are skipped and reported together.
func (h *Holder) watchDirs(files []string) error {
	var errs []error
	for _, f := range files {
		dir := filepath.Dir(f)
		if h.dirs[dir] {
			continue
		}
		if err := h.watcher.Add(dir); err != nil {
			errs = append(errs, fmt.Errorf("watch %s: %w", dir, err))
			continue
		}
		h.dirs[dir] = true
	}
	return errors.Join(errs...)
}

func (h *Holder) loaded(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, f := range h.files {
		if filepath.Clean(f) == filepath.Clean(name) {
			return true
		}
	}
	return false
}

func (h *Holder) watchLoop(ctx context.Context, w *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	defer w.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			h.log.Info("watch stopped")
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !h.loaded(ev.Name) {
				continue
			}
			h.log.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			_ = h.Reload(ctx)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			h.log.Error("watch error", "error", err)
		}
	}
}

// Close stops watching and waits for the watch goroutine to exit.
func (h *Holder) Close() error {
	h.mu.Lock()
	w, done := h.watcher, h.done
	h.watcher, h.done = nil, nil
	h.mu.Unlock()
	if w == nil {
		return nil
	}
	err := w.Close()
	<-done
	return err
}
