package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/cradle/cmd/cradle/commands"
	"go.trai.ch/cradle/internal/build"
	"go.trai.ch/cradle/internal/core/domain"
	"go.trai.ch/cradle/internal/core/ports/mocks"
)

type mockApp struct {
	locateFunc  func(ctx context.Context, file string) *domain.Configuration
	flagsFunc   func(ctx context.Context, file string) (*domain.CompileFlags, error)
	loadAllFunc func(ctx context.Context, files []string) error
	watchFunc   func(ctx context.Context, file string, onReload func(*domain.Artifact, error)) error
	versionFunc func(ctx context.Context, file string) (string, error)
}

func (m *mockApp) Locate(ctx context.Context, file string) *domain.Configuration {
	if m.locateFunc != nil {
		return m.locateFunc(ctx, file)
	}
	return domain.NoneConfiguration("/", "")
}

func (m *mockApp) Flags(ctx context.Context, file string) (*domain.CompileFlags, error) {
	if m.flagsFunc != nil {
		return m.flagsFunc(ctx, file)
	}
	return &domain.CompileFlags{}, nil
}

func (m *mockApp) LoadAll(ctx context.Context, files []string) error {
	if m.loadAllFunc != nil {
		return m.loadAllFunc(ctx, files)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, file string, onReload func(*domain.Artifact, error)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, file, onReload)
	}
	return nil
}

func (m *mockApp) CompilerVersion(ctx context.Context, file string) (string, error) {
	if m.versionFunc != nil {
		return m.versionFunc(ctx, file)
	}
	return "", nil
}

func newCLI(t *testing.T, app commands.Application) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().SetJSON(gomock.Any()).AnyTimes()

	cli := commands.New(app, log)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	return cli, buf
}

func TestCommands_Flags(t *testing.T) {
	t.Run("prints dir and one argument per line", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			flagsFunc: func(_ context.Context, file string) (*domain.CompileFlags, error) {
				captured = file
				return &domain.CompileFlags{
					Dir:  "/repo/pkg",
					Args: []string{"-Wall", "-i/repo/pkg/src", "Lib.Foo"},
				}, nil
			},
		}

		cli, buf := newCLI(t, mock)
		cli.SetArgs([]string{"flags", "/repo/pkg/src/Lib/Foo.hs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/repo/pkg/src/Lib/Foo.hs", captured)

		g := goldie.New(t)
		g.Assert(t, "flags", buf.Bytes())
	})

	t.Run("propagates resolution failures", func(t *testing.T) {
		mock := &mockApp{
			flagsFunc: func(context.Context, string) (*domain.CompileFlags, error) {
				return nil, errors.New("file does not belong to any component")
			},
		}

		cli, _ := newCLI(t, mock)
		cli.SetArgs([]string{"flags", "Orphan.hs"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "component")
	})
}

func TestCommands_Root(t *testing.T) {
	t.Run("prints root and kind", func(t *testing.T) {
		mock := &mockApp{
			locateFunc: func(context.Context, string) *domain.Configuration {
				return domain.NewConfiguration("/repo", "Stack", nil)
			},
		}

		cli, buf := newCLI(t, mock)
		cli.SetArgs([]string{"root", "/repo/src/Lib.hs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "root: /repo\nkind: Stack\n", buf.String())
	})

	t.Run("prints None without a project", func(t *testing.T) {
		mock := &mockApp{
			locateFunc: func(context.Context, string) *domain.Configuration {
				return domain.NoneConfiguration("/somewhere", "")
			},
		}

		cli, buf := newCLI(t, mock)
		cli.SetArgs([]string{"root", "/somewhere/Lib.hs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "root: /somewhere\nkind: None\n", buf.String())
	})
}

func TestCommands_Check(t *testing.T) {
	t.Run("loads every file", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			loadAllFunc: func(_ context.Context, files []string) error {
				captured = files
				return nil
			},
		}

		cli, buf := newCLI(t, mock)
		cli.SetArgs([]string{"check", "A.hs", "B.hs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"A.hs", "B.hs"}, captured)
		assert.Contains(t, buf.String(), "checked 2 file(s)")
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		mock := &mockApp{
			loadAllFunc: func(context.Context, []string) error {
				return errors.New("simulated compile error")
			},
		}

		cli, _ := newCLI(t, mock)
		cli.SetArgs([]string{"check", "A.hs"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated compile error")
	})

	t.Run("watch requires exactly one file", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(context.Context, string, func(*domain.Artifact, error)) error {
				panic("watch must not start")
			},
		}

		cli, _ := newCLI(t, mock)
		cli.SetArgs([]string{"check", "--watch", "A.hs", "B.hs"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--watch takes exactly one file")
	})

	t.Run("watch starts after the initial check", func(t *testing.T) {
		watched := false
		mock := &mockApp{
			watchFunc: func(_ context.Context, file string, _ func(*domain.Artifact, error)) error {
				watched = true
				assert.Equal(t, "A.hs", file)
				return nil
			},
		}

		cli, _ := newCLI(t, mock)
		cli.SetArgs([]string{"check", "--watch", "A.hs"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, watched)
	})
}

func TestCommands_Version(t *testing.T) {
	t.Run("prints the application version", func(t *testing.T) {
		cli, buf := newCLI(t, &mockApp{})
		cli.SetArgs([]string{"version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), build.Version)
	})

	t.Run("prints the compiler version on request", func(t *testing.T) {
		mock := &mockApp{
			versionFunc: func(context.Context, string) (string, error) {
				return "9.8.2", nil
			},
		}

		cli, buf := newCLI(t, mock)
		cli.SetArgs([]string{"version", "--compiler"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "ghc version 9.8.2")
	})
}
