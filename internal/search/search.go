// Package search provides full-text lookup of the resources listed in a bundle index.
package search

import (
	"fmt"
	"path"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/three-bundles/update-index/internal/model"
)

const defaultMaxResults = 100

// Hit is a single resource matching a query
type Hit struct {
	Category string
	Path     string
	Score    float64
}

// Index is an in-memory search index over the resources of one bundle index
type Index struct {
	idx  bleve.Index
	docs map[string]Hit
}

// NewIndex indexes every resource of every known category in bi. Each resource is indexed with the fields
// category, path, base (file name without extension) and ext.
func NewIndex(bi model.Index) (*Index, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("could not create search index: %w", err)
	}

	docs := map[string]Hit{}
	batch := idx.NewBatch()
	for _, c := range model.CategoryNames() {
		for _, p := range bi.Resources(c) {
			id := c + ":" + p
			ext := path.Ext(p)
			err := batch.Index(id, map[string]any{
				"category": c,
				"path":     p,
				"base":     strings.TrimSuffix(path.Base(p), ext),
				"ext":      strings.TrimPrefix(ext, "."),
			})
			if err != nil {
				_ = idx.Close()
				return nil, fmt.Errorf("could not index %s: %w", id, err)
			}
			docs[id] = Hit{Category: c, Path: p}
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("could not index resources: %w", err)
	}
	return &Index{idx: idx, docs: docs}, nil
}

// Search runs a bleve query string query, e.g. "wood" or "+category:texture ext:dds".
// If limit is not positive, a default limit applies.
func (i *Index) Search(query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = defaultMaxResults
	}
	q := bleve.NewQueryStringQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit, ok := i.docs[h.ID]
		if !ok {
			continue
		}
		hit.Score = h.Score
		hits = append(hits, hit)
	}
	return hits, nil
}

// Size returns the number of indexed resources
func (i *Index) Size() int {
	return len(i.docs)
}

func (i *Index) Close() error {
	return i.idx.Close()
}
