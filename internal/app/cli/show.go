package cli

import (
	"context"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/three-bundles/update-index/internal/bundleindex"
	"github.com/three-bundles/update-index/internal/model"
)

// Show prints name, revision and the number of resources per category of an index file
func Show(_ context.Context, target Target) error {
	_, file, err := target.resolve()
	if err != nil {
		Stderrf("could not determine bundle location: %v", err)
		return err
	}
	sum, err := bundleindex.Summarize(file)
	if err != nil {
		Stderrf("could not read index: %v", err)
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Bundle:   %s\n", sum.Name)
	_, _ = fmt.Fprintf(stdout, "Revision: %d\n", sum.Revision)
	if len(sum.Counts) > 0 {
		table := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(table, "CATEGORY\tRESOURCES\n")
		for _, c := range model.CategoryNames() {
			if n, ok := sum.Counts[c]; ok {
				_, _ = fmt.Fprintf(table, "%s\t%d\n", c, n)
			}
		}
		_ = table.Flush()
	}
	if len(sum.Other) > 0 {
		other := slices.Clone(sum.Other)
		slices.Sort(other)
		_, _ = fmt.Fprintf(stdout, "Other sections: %v\n", other)
	}
	return nil
}
