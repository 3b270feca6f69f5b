package cli

import (
	"context"
	"path/filepath"

	"github.com/three-bundles/update-index/internal/bundleindex"
	"github.com/three-bundles/update-index/internal/model"
	"github.com/three-bundles/update-index/internal/resources"
)

type UpdateOptions struct {
	Target
	// Name overrides the bundle name, which defaults to the name of the bundle directory
	Name    string
	Compact bool
	Lock    bool
	Clock   bundleindex.Clock
}

// Update enumerates the resources of a bundle and merges them into its index file
func Update(ctx context.Context, opts UpdateOptions) (model.Index, error) {
	baseDir, file, err := opts.resolve()
	if err != nil {
		Stderrf("could not determine bundle location: %v", err)
		return nil, err
	}

	Infof("Enumerating resources")
	found, err := resources.Enumerate(ctx, baseDir, resources.Options{
		Warn: func(path string) {
			Warnf("Ignoring %s: Unsupported extension", path)
		},
	})
	if err != nil {
		Stderrf("could not enumerate resources in %s: %v", baseDir, err)
		return nil, err
	}

	sections := model.Sections{}
	for category, files := range found {
		sections[category] = files
	}
	name := opts.Name
	if name == "" {
		name = filepath.Base(baseDir)
	}
	sections[model.SectionName] = name

	Infof("Writing %s", filepath.Base(file))
	idx, err := bundleindex.WriteIndex(ctx, file, sections, bundleindex.WriteOptions{
		Compact: opts.Compact,
		Lock:    opts.Lock,
		Clock:   opts.Clock,
	})
	if err != nil {
		Stderrf("could not write index: %v", err)
		return nil, err
	}
	return idx, nil
}
