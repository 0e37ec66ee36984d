// Package fs provides filesystem path utilities, canonicalization, and
// content hashing.
package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/cradle/internal/core/domain"
)

// Ancestors enumerates dir itself and each parent up to and including the
// filesystem root. For relative paths the walk ends at ".".
func Ancestors(dir string) []string {
	dir = filepath.Clean(dir)

	var dirs []string
	for {
		dirs = append(dirs, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return dirs
}

// RelativeTo strips the dir prefix from path. It reports false when path
// does not live under dir. The result uses forward slashes.
func RelativeTo(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

// StripSourceDir strips a component source-directory prefix from a
// package-relative path. srcDir "" or "." leaves the path untouched.
func StripSourceDir(srcDir, rel string) (string, bool) {
	srcDir = strings.Trim(filepath.ToSlash(srcDir), "/")
	if srcDir == "" || srcDir == "." {
		return rel, true
	}
	if rel == srcDir {
		return "", true
	}
	if strings.HasPrefix(rel, srcDir+"/") {
		return rel[len(srcDir)+1:], true
	}
	return "", false
}

// DottedModuleName converts a source-relative path into a dotted module
// name: path separators become dots and the source extension is removed.
// It reports false for paths that cannot name a module.
func DottedModuleName(rel string) (string, bool) {
	rel = filepath.ToSlash(rel)
	if !strings.HasSuffix(rel, domain.SourceFileExt) {
		return "", false
	}
	rel = strings.TrimSuffix(rel, domain.SourceFileExt)
	if rel == "" {
		return "", false
	}
	return strings.ReplaceAll(rel, "/", "."), true
}

// PrefixLen returns the length of dir as a path prefix of path, or -1 when
// dir does not prefix path. Longer values mean more specific matches.
func PrefixLen(dir, path string) int {
	if _, ok := RelativeTo(dir, path); !ok {
		return -1
	}
	return len(filepath.Clean(dir))
}
