package app_test

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/cradle/internal/adapters/fs"
	"go.trai.ch/cradle/internal/adapters/telemetry"
	"go.trai.ch/cradle/internal/app"
	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports"
	"go.trai.ch/cradle/internal/core/ports/mocks"
	"go.trai.ch/cradle/internal/engine/locator"
	"go.trai.ch/cradle/internal/engine/resolver"
	"go.trai.ch/cradle/internal/engine/store"
)

// stubBackend claims every file under its root as the "Lib" or "Extra"
// module of a single-package stack project.
type stubBackend struct {
	root string
}

func (b *stubBackend) Kind() domain.ProjectKind { return domain.KindStack }

func (b *stubBackend) FindProjects(dir string) []domain.ProjectReference {
	if dir != b.root {
		return nil
	}
	return []domain.ProjectReference{{
		Kind:       domain.KindStack,
		Root:       b.root,
		ConfigPath: filepath.Join(b.root, "stack.yaml"),
	}}
}

func (b *stubBackend) ListPackages(_ context.Context, _ domain.ProjectReference) ([]*domain.Package, error) {
	return []*domain.Package{{
		Name:  "acme",
		Dir:   b.root,
		Units: []domain.Unit{{Name: "", Type: domain.UnitLibrary}},
	}}, nil
}

func (b *stubBackend) IntrospectUnit(_ context.Context, _ *domain.Package, _ domain.Unit) (*domain.UnitInfo, error) {
	return &domain.UnitInfo{Components: []domain.Component{{
		SourceDirs: []string{"."},
		Entry:      domain.EntryLibrary,
		Modules:    []string{"Lib", "Extra"},
		Flags:      []string{"-Wall"},
	}}}, nil
}

type stubWatcher struct {
	events chan ports.WatchEvent
}

func (w *stubWatcher) Start(_ context.Context, _ string) error { return nil }
func (w *stubWatcher) Stop() error                             { return nil }

func (w *stubWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

type fixture struct {
	app      *app.App
	compiler *mocks.MockCompiler
	dir      string
}

func newFixture(t *testing.T, watch ports.Watcher) *fixture {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Lib.hs"), []byte("module Lib where"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Extra.hs"), []byte("module Extra where"), 0o644))

	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	checker := mocks.NewMockToolChecker(ctrl)
	checker.EXPECT().Installed(gomock.Any()).Return(true).AnyTimes()

	backends := []ports.BuildBackend{&stubBackend{root: dir}}
	loc := locator.New(backends, checker, log)
	res := resolver.New(loc, backends, telemetry.NewNoOpTracer(), log)
	artifacts := store.New(fs.NewResolver(), fs.NewHasher(), log)
	compiler := mocks.NewMockCompiler(ctrl)

	return &fixture{
		app:      app.New(res, compiler, artifacts, watch, telemetry.NewNoOpTracer(), log),
		compiler: compiler,
		dir:      dir,
	}
}

func (f *fixture) source(name string) string {
	return filepath.Join(f.dir, name)
}

func TestApp_LoadCompilesOnceAndCaches(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	file := f.source("Lib.hs")
	artifact := &domain.Artifact{File: file, CompiledAt: time.Now()}

	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), file).
		Return(artifact, nil).
		Times(1)

	first, err := f.app.Load(context.Background(), file)
	require.NoError(t, err)
	assert.Same(t, artifact, first)

	second, err := f.app.Load(context.Background(), file)
	require.NoError(t, err)
	assert.Same(t, artifact, second)
}

func TestApp_LoadRetriesAfterFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	file := f.source("Lib.hs")

	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), file).
		Return(nil, errors.New("type error")).
		Times(2)

	_, err := f.app.Load(context.Background(), file)
	require.Error(t, err)

	// A recorded failure is not sticky; the next load compiles again.
	_, err = f.app.Load(context.Background(), file)
	require.Error(t, err)
}

func TestApp_LoadAll(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Configuration, file string) (*domain.Artifact, error) {
			return &domain.Artifact{File: file, CompiledAt: time.Now()}, nil
		}).
		Times(2)

	err := f.app.LoadAll(context.Background(), []string{f.source("Lib.hs"), f.source("Extra.hs")})
	require.NoError(t, err)
}

func TestApp_Flags(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	flags, err := f.app.Flags(context.Background(), f.source("Lib.hs"))
	require.NoError(t, err)
	assert.Equal(t, f.dir, flags.Dir)
	assert.Contains(t, flags.Args, "-Wall")
	assert.Contains(t, flags.Args, "Lib")
}

func TestApp_Locate(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	cfg := f.app.Locate(context.Background(), f.source("Lib.hs"))
	require.False(t, cfg.None())
	assert.Equal(t, "Stack", cfg.Kind())
	assert.Equal(t, f.dir, cfg.Root())
}

func TestApp_CompilerVersion(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)

	f.compiler.EXPECT().
		Version(gomock.Any(), gomock.Any()).
		Return("9.8.2", nil)

	version, err := f.app.CompilerVersion(context.Background(), f.source("Lib.hs"))
	require.NoError(t, err)
	assert.Equal(t, "9.8.2", version)
}

func TestApp_WatchReloadsOnChange(t *testing.T) {
	t.Parallel()

	w := &stubWatcher{events: make(chan ports.WatchEvent, 1)}
	f := newFixture(t, w)
	file := f.source("Lib.hs")

	// One compile for the initial load, one for the reload after the
	// change event evicts the entry.
	f.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), file).
		DoAndReturn(func(_ context.Context, _ *domain.Configuration, file string) (*domain.Artifact, error) {
			return &domain.Artifact{File: file, CompiledAt: time.Now()}, nil
		}).
		Times(2)

	_, err := f.app.Load(context.Background(), file)
	require.NoError(t, err)

	reloaded := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		done <- f.app.Watch(context.Background(), file, func(_ *domain.Artifact, err error) {
			reloaded <- err
		})
	}()

	w.events <- ports.WatchEvent{Path: file, Operation: ports.OpWrite}

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("reload never happened")
	}

	close(w.events)
	require.NoError(t, <-done)
}
