package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/three-bundles/update-index/internal/bundleindex"
	"github.com/three-bundles/update-index/internal/search"
)

// Search prints the resources of the bundle index matching query
func Search(_ context.Context, target Target, query string, limit int) error {
	_, file, err := target.resolve()
	if err != nil {
		Stderrf("could not determine bundle location: %v", err)
		return err
	}
	idx, found, err := bundleindex.ReadIndex(file)
	if err != nil {
		Stderrf("could not read index: %v", err)
		return err
	}
	if !found {
		err = fmt.Errorf("%w: %s", bundleindex.ErrNoIndex, file)
		Stderrf("%v", err)
		return err
	}

	si, err := search.NewIndex(idx)
	if err != nil {
		Stderrf("%v", err)
		return err
	}
	defer si.Close()

	hits, err := si.Search(query, limit)
	if err != nil {
		Stderrf("%v", err)
		return err
	}
	if len(hits) == 0 {
		_, _ = fmt.Fprintln(stdout, "no matching resources")
		return nil
	}
	table := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(table, "CATEGORY\tPATH\n")
	for _, h := range hits {
		_, _ = fmt.Fprintf(table, "%s\t%s\n", h.Category, h.Path)
	}
	_ = table.Flush()
	return nil
}
