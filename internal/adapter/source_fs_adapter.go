// Package adapter contains filesystem adapters for the archdoc CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/archdoc/internal/model"
)

// skipDirs are never descended into. Matching is by exact name against
// a path segment.
var skipDirs = map[string]struct{}{
	"target":       {},
	".git":         {},
	".github":      {},
	".idea":        {},
	".vscode":      {},
	"node_modules": {},
	"dist":         {},
}

const sourceFileExt = ".rs"

// SourceFSAdapter abstracts filesystem operations the domain layer
// relies on when scanning and rewriting user projects. It hides direct
// `os` access so the workflow logic can be tested without touching the
// disk.
type SourceFSAdapter interface {
	// Get collects candidate source files under the provided roots,
	// excluding ignored directories and paths matching any of the
	// exclude regular expressions.
	Get(roots []m.Path, exclude []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false
	// the implementation limits itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It
// is defined here to avoid leaking the standard-library type directly
// into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete implementation backed by the
// local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files for the provided roots. Roots may be plain
// files, directories, or directories with the `/...` suffix for
// recursive scanning.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Path, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var paths []m.Path

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			collect(&paths, seen, rootPath, excludes)
			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skipDirs[filepath.Base(path)]; skip && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			collect(&paths, seen, path, excludes)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func collect(paths *[]m.Path, seen map[string]struct{}, path string, excludes []*regexp.Regexp) {
	if filepath.Ext(path) != sourceFileExt {
		return
	}

	for _, re := range excludes {
		if re.MatchString(path) {
			return
		}
	}

	if _, exists := seen[path]; exists {
		return
	}

	seen[path] = struct{}{}
	*paths = append(*paths, m.Path(path))
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
