package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/three-bundles/update-index/internal/bundleindex"
	"github.com/three-bundles/update-index/internal/model"
	"github.com/three-bundles/update-index/internal/resources"
)

var errCheckFailed = errors.New("index check failed")

type CheckResultType int

const (
	CheckOK CheckResultType = iota
	CheckWarn
	CheckErr
)

func (t CheckResultType) String() string {
	switch t {
	case CheckOK:
		return "OK"
	case CheckWarn:
		return "WARN"
	case CheckErr:
		return "ERROR"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

type CheckResult struct {
	Typ          CheckResultType
	ResourceName string
	Message      string
}

func (r CheckResult) String() string {
	return fmt.Sprintf("[%v] %s: %s", r.Typ, r.ResourceName, r.Message)
}

// Check validates the index file of a bundle: it must have the expected structure, every listed resource must exist
// with a supported extension, and every resource found in the bundle should be listed.
func Check(ctx context.Context, target Target) error {
	baseDir, file, err := target.resolve()
	if err != nil {
		Stderrf("could not determine bundle location: %v", err)
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Checking index %s ...\n", file)
	results, err := checkIndex(ctx, baseDir, file)
	if err != nil {
		Stderrf("could not check index: %v", err)
		return err
	}

	for _, res := range results {
		if res.Typ != CheckOK {
			_, _ = fmt.Fprintln(stdout, res)
		}
		if err == nil && res.Typ == CheckErr {
			err = errCheckFailed
		}
	}
	if err == nil {
		_, _ = fmt.Fprintln(stdout, "OK")
	}
	return err
}

func checkIndex(ctx context.Context, baseDir, file string) ([]CheckResult, error) {
	idx, found, err := bundleindex.ReadIndex(file)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", bundleindex.ErrNoIndex, file)
	}

	var results []CheckResult
	name := filepath.Base(file)
	if err := bundleindex.Validate(idx); err != nil {
		results = append(results, CheckResult{CheckErr, name, err.Error()})
	} else {
		results = append(results, CheckResult{CheckOK, name, "OK"})
	}

	onDisk, err := resources.Enumerate(ctx, baseDir, resources.Options{})
	if err != nil {
		return nil, err
	}

	for _, c := range model.Categories() {
		match := resources.ExtensionMatcher(c.Extensions)
		listed := idx.Resources(c.Name)
		for _, p := range listed {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			results = append(results, checkResource(baseDir, c.Name, p, match.MatchString(path.Base(p))))
		}
		for _, p := range onDisk[c.Name] {
			if !slices.Contains(listed, p) {
				results = append(results, CheckResult{CheckWarn, path.Join(c.Name, p), "not listed in index"})
			}
		}
	}
	return results, nil
}

func checkResource(baseDir, category, p string, supported bool) CheckResult {
	resName := path.Join(category, p)
	if !supported {
		return CheckResult{CheckErr, resName, "unsupported extension"}
	}
	stat, err := os.Stat(filepath.Join(baseDir, category, filepath.FromSlash(p)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return CheckResult{CheckErr, resName, "file does not exist"}
		}
		return CheckResult{CheckErr, resName, err.Error()}
	}
	if stat.IsDir() {
		return CheckResult{CheckErr, resName, "is a directory"}
	}
	return CheckResult{CheckOK, resName, "OK"}
}
