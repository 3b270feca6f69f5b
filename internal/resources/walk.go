// Package resources enumerates the asset files of a bundle by category.
package resources

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// WalkOptions controls how WalkDir collects files
type WalkOptions struct {
	// IncludeRoot keeps the walked directory as prefix of the returned paths
	IncludeRoot bool
	// Skip is consulted for every file and directory below the walked directory. Skipped entries are left out silently.
	Skip func(path string, isDir bool) bool
	// Warn is called for every file left out because of an unsupported extension
	Warn func(path string)
}

// ExtensionMatcher compiles a list of extensions into a single pattern matching file names that end in any of them.
// Returns nil if exts is empty, which is interpreted as "match everything".
func ExtensionMatcher(exts []string) *regexp.Regexp {
	if len(exts) == 0 {
		return nil
	}
	alts := make([]string, 0, len(exts))
	for _, ext := range exts {
		alts = append(alts, regexp.QuoteMeta(ext))
	}
	return regexp.MustCompile(`^.*\.(?:` + strings.Join(alts, "|") + `)$`)
}

// WalkDir recursively collects the files below dir whose names end in one of exts.
// The returned paths are relative to dir and use forward slashes, unless opts.IncludeRoot is set.
// A missing dir yields an empty result.
func WalkDir(ctx context.Context, dir string, exts []string, opts WalkOptions) ([]string, error) {
	dir = strings.TrimRight(dir, `/\`)
	res := []string{}

	stat, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !stat.IsDir() {
		return res, nil
	}

	match := ExtensionMatcher(exts)
	stripPrefix := dir + string(filepath.Separator)

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		isDir, err := isDirEntry(path, d)
		if err != nil {
			return err
		}
		if opts.Skip != nil && opts.Skip(path, isDir) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir {
			return nil
		}
		if match != nil && !match.MatchString(d.Name()) {
			if opts.Warn != nil {
				opts.Warn(path)
			}
			return nil
		}
		if !opts.IncludeRoot {
			path = strings.TrimPrefix(path, stripPrefix)
		}
		res = append(res, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isDirEntry reports whether d is a directory, following symbolic links
func isDirEntry(path string, d fs.DirEntry) (bool, error) {
	if d.IsDir() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	stat, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		// dangling link
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stat.IsDir(), nil
}
