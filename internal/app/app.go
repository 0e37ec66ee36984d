// Package app implements the application layer for cradle.
package app

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/cradle/internal/adapters/watcher"
	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/cradle/internal/engine/resolver"
	"go.trai.ch/cradle/internal/engine/store"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver *resolver.Resolver
	compiler ports.Compiler
	store    *store.ArtifactStore
	watcher  ports.Watcher
	tracer   ports.Tracer
	logger   ports.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates a new App instance.
func New(
	res *resolver.Resolver,
	compiler ports.Compiler,
	artifacts *store.ArtifactStore,
	watch ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		resolver: res,
		compiler: compiler,
		store:    artifacts,
		watcher:  watch,
		tracer:   tracer,
		logger:   log,
		inflight: make(map[string]bool),
	}
}

// Locate returns the build configuration governing file.
func (a *App) Locate(ctx context.Context, file string) *domain.Configuration {
	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	return a.resolver.Resolve(ctx, abs)
}

// Flags returns the compile flags for file.
func (a *App) Flags(ctx context.Context, file string) (*domain.CompileFlags, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to absolutize "+file)
	}
	return a.resolver.Resolve(ctx, abs).Flags(ctx, abs)
}

// Load returns the artifact for file, compiling on a cache miss. While a
// compile for the same file is in flight, concurrent loads park on the
// store's pending queue instead of compiling a second time.
func (a *App) Load(ctx context.Context, file string) (*domain.Artifact, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to absolutize "+file)
	}

	if entry, ok := a.store.Lookup(abs); ok && entry.State == store.StateSuccess {
		return entry.Artifact, nil
	}

	settled, joined := a.joinInflight(abs)
	if joined {
		return awaitSettled(ctx, settled, abs)
	}
	defer a.finishInflight(abs)

	cfg := a.resolver.Resolve(ctx, abs)

	ctx, span := a.tracer.Start(ctx, "compile")
	defer span.End()
	span.SetAttribute("file", abs)

	artifact, err := a.compiler.Compile(ctx, cfg, abs)
	if err != nil {
		span.RecordError(err)
		a.store.MarkFailed(abs)
		return nil, err
	}

	a.store.Store(abs, artifact)
	return artifact, nil
}

// LoadAll preloads artifacts for files with bounded parallelism. All files
// are attempted; the errors of the failed ones are joined.
func (a *App) LoadAll(ctx context.Context, files []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		g.Go(func() error {
			_, err := a.Load(ctx, file)
			return err
		})
	}

	return g.Wait()
}

// CompilerVersion reports the compiler version as seen from file's
// project. It works without a project; the version query needs no flags.
func (a *App) CompilerVersion(ctx context.Context, file string) (string, error) {
	return a.compiler.Version(ctx, a.Locate(ctx, file))
}

// Watch re-checks file whenever sources under its project root change.
// Changed paths are evicted from the store first so the reload compiles
// against fresh state. Blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context, file string, onReload func(*domain.Artifact, error)) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return zerr.Wrap(err, "failed to absolutize "+file)
	}

	root := a.resolver.Resolve(ctx, abs).Root()
	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.Wrap(err, "failed to watch "+root)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		for _, path := range paths {
			a.store.Delete(path)
		}
		onReload(a.Load(ctx, abs))
	})

	a.logger.Info("watching " + root)
	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}

// joinInflight marks path as being compiled by this caller, or parks on
// the pending queue when another caller already is. The hit-or-park check
// inside AwaitOrDefer closes the race with a compile that settles between
// our lookup miss and the enqueue.
func (a *App) joinInflight(path string) (<-chan *store.Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.inflight[path] {
		a.inflight[path] = true
		return nil, false
	}

	settled := make(chan *store.Entry, 1)
	a.store.AwaitOrDefer(path, func(entry *store.Entry) { settled <- entry })
	return settled, true
}

func (a *App) finishInflight(path string) {
	a.mu.Lock()
	delete(a.inflight, path)
	a.mu.Unlock()
}

// awaitSettled waits for the in-flight compile to settle the entry. An
// abandoned wait is fine: the buffered channel keeps the late delivery
// from blocking anyone.
func awaitSettled(ctx context.Context, settled <-chan *store.Entry, path string) (*domain.Artifact, error) {
	select {
	case entry := <-settled:
		if entry.State != store.StateSuccess {
			return nil, zerr.With(domain.ErrCompileFailed, "file", path)
		}
		return entry.Artifact, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
