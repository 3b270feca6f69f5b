package resources

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/three-bundles/update-index/internal/model"
	"github.com/three-bundles/update-index/internal/utils"
)

// IgnoreFile is the name of the optional file in the bundle root listing gitignore-style patterns of files to leave out
const IgnoreFile = ".bundleignore"

type Options struct {
	// IncludeRoot keeps the category directory as prefix of the returned paths
	IncludeRoot bool
	// Warn is called for each file left out because of an unsupported extension
	Warn func(path string)
}

// Enumerate lists the resources of every known category found below baseDir.
// The result contains an entry for each category, empty if the category directory is missing or has no matching files.
func Enumerate(ctx context.Context, baseDir string, opts Options) (map[string][]string, error) {
	log := utils.GetLogger(ctx, "resources.Enumerate")
	if len(baseDir) > 1 {
		baseDir = strings.TrimRight(baseDir, `/\`)
	}

	ign, err := readIgnoreFile(baseDir)
	if err != nil {
		return nil, err
	}
	skip := func(path string, isDir bool) bool {
		if ign == nil {
			return false
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return false
		}
		rel = filepath.ToSlash(rel)
		if isDir {
			rel += "/"
		}
		if ign.MatchesPath(rel) {
			log.Debug("ignoring", "path", rel)
			return true
		}
		return false
	}
	warn := func(path string) {
		log.Warn("unsupported extension", "path", path)
		if opts.Warn != nil {
			opts.Warn(path)
		}
	}

	sections := make(map[string][]string)
	for _, c := range model.Categories() {
		files, err := WalkDir(ctx, filepath.Join(baseDir, c.Name), c.Extensions, WalkOptions{
			IncludeRoot: opts.IncludeRoot,
			Skip:        skip,
			Warn:        warn,
		})
		if err != nil {
			return nil, fmt.Errorf("could not enumerate %s resources: %w", c.Name, err)
		}
		log.Debug("enumerated category", "category", c.Name, "count", len(files))
		sections[c.Name] = files
	}
	return sections, nil
}

func readIgnoreFile(baseDir string) (*ignore.GitIgnore, error) {
	lines, err := utils.ReadFileLines(filepath.Join(baseDir, IgnoreFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", IgnoreFile, err)
	}
	return ignore.CompileIgnoreLines(lines...), nil
}
