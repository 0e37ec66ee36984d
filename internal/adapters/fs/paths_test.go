package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cradle/internal/adapters/fs"
)

func TestAncestors_Absolute(t *testing.T) {
	dirs := fs.Ancestors("/repo/sub/pkg")

	require.Equal(t, []string{"/repo/sub/pkg", "/repo/sub", "/repo", "/"}, dirs)
}

func TestAncestors_IncludesStartAndRoot(t *testing.T) {
	dirs := fs.Ancestors("/")

	require.Equal(t, []string{"/"}, dirs)
}

func TestAncestors_Relative(t *testing.T) {
	dirs := fs.Ancestors("a/b")

	require.Equal(t, []string{"a/b", "a", "."}, dirs)
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		path   string
		want   string
		wantOK bool
	}{
		{name: "direct child", dir: "/repo", path: "/repo/src/Lib.hs", want: "src/Lib.hs", wantOK: true},
		{name: "same dir", dir: "/repo", path: "/repo", want: ".", wantOK: true},
		{name: "outside", dir: "/repo/sub", path: "/repo/Main.hs", wantOK: false},
		{name: "sibling with shared prefix", dir: "/repo", path: "/repository/Main.hs", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fs.RelativeTo(tt.dir, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStripSourceDir(t *testing.T) {
	tests := []struct {
		name   string
		srcDir string
		rel    string
		want   string
		wantOK bool
	}{
		{name: "simple prefix", srcDir: "src", rel: "src/Lib/Foo.hs", want: "Lib/Foo.hs", wantOK: true},
		{name: "dot dir", srcDir: ".", rel: "Main.hs", want: "Main.hs", wantOK: true},
		{name: "empty dir", srcDir: "", rel: "Main.hs", want: "Main.hs", wantOK: true},
		{name: "no match", srcDir: "app", rel: "src/Main.hs", wantOK: false},
		{name: "partial segment is not a prefix", srcDir: "src", rel: "srcs/Main.hs", wantOK: false},
		{name: "nested source dir", srcDir: "src/gen", rel: "src/gen/Out.hs", want: "Out.hs", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fs.StripSourceDir(tt.srcDir, tt.rel)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDottedModuleName(t *testing.T) {
	tests := []struct {
		name   string
		rel    string
		want   string
		wantOK bool
	}{
		{name: "nested module", rel: "Lib/Foo.hs", want: "Lib.Foo", wantOK: true},
		{name: "top level module", rel: "Main.hs", want: "Main", wantOK: true},
		{name: "wrong extension", rel: "Lib/Foo.c", wantOK: false},
		{name: "extension only", rel: ".hs", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fs.DottedModuleName(tt.rel)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPrefixLen_LongestWins(t *testing.T) {
	file := filepath.Join("/Repo", "Sub", "X.hs")

	outer := fs.PrefixLen("/Repo", file)
	inner := fs.PrefixLen("/Repo/Sub", file)
	miss := fs.PrefixLen("/Other", file)

	assert.Greater(t, inner, outer)
	assert.Equal(t, -1, miss)
}
