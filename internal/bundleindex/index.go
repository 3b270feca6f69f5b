// Package bundleindex reads, merges and writes bundle index files.
//
// A bundle index is a JSON object wrapped in an AMD module definition, so that module loaders can require it directly:
//
//	/* Bundle index file automatically generated at 14/10/2026 09:30:00 */
//	define([],{"name":"hello.bundle","revision":3,"texture":["wood.dds"]});
package bundleindex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/three-bundles/update-index/internal/model"
	"github.com/three-bundles/update-index/internal/utils"
)

const (
	DefaultFilename        = "index.js"
	TimestampLayout        = "02/01/2006 15:04:05"
	defaultFilePermissions = 0664
	prettyIndent           = "    "
	header                 = "/* Bundle index file automatically generated at %s */\ndefine([],%s);\n"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}

type WriteOptions struct {
	// Compact writes JSON without any whitespace. Otherwise, the JSON is indented by four spaces.
	Compact bool
	// Lock holds an advisory lock on <filename>.lock while the index is being merged and written
	Lock bool
	// Clock provides the generation timestamp. Defaults to SystemClock
	Clock Clock
}

// Parse extracts the index object from the contents of an index file
func Parse(buf []byte) (model.Index, error) {
	raw, err := ExtractObject(buf)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	idx := model.Index{}
	if err := dec.Decode(&idx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedFormat, err)
	}
	return idx, nil
}

// ReadIndex reads and parses the index file. If the file does not exist, returns an empty index and found == false.
func ReadIndex(name string) (idx model.Index, found bool, err error) {
	_, err = os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Index{}, false, nil
	}
	_, raw, err := utils.ReadRequiredFile(name)
	if err != nil {
		return nil, true, err
	}
	idx, err = Parse(raw)
	if err != nil {
		return nil, true, fmt.Errorf("could not read %s, refusing to overwrite: %w", name, err)
	}
	return idx, true, nil
}

// Merge imports sections into idx. Empty sections are removed from idx, all others replace the existing value.
// Keys of idx that are not among sections are left untouched.
func Merge(idx model.Index, sections model.Sections) {
	for name, value := range sections {
		if model.IsEmptySection(value) {
			delete(idx, name)
			continue
		}
		idx[name] = value
	}
}

// BumpRevision increments the revision of idx, starting at 1 if idx has none. Returns the new revision.
func BumpRevision(idx model.Index) (int64, error) {
	old, ok := idx[model.SectionRevision]
	if !ok {
		idx[model.SectionRevision] = int64(1)
		return 1, nil
	}
	rev, err := revisionValue(old)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRevision, old)
	}
	rev++
	idx[model.SectionRevision] = rev
	return rev, nil
}

func revisionValue(v any) (int64, error) {
	switch r := v.(type) {
	case json.Number:
		if i, err := r.Int64(); err == nil {
			return i, nil
		}
		f, err := r.Float64()
		if err != nil {
			return 0, err
		}
		return cast.ToInt64E(f)
	case string:
		return strconv.ParseInt(strings.TrimSpace(r), 10, 64)
	case nil:
		return 0, errors.New("revision is null")
	default:
		return cast.ToInt64E(v)
	}
}

// Encode renders idx as the text of an index file generated at the given time
func Encode(idx model.Index, compact bool, now time.Time) ([]byte, error) {
	indent := prettyIndent
	if compact {
		indent = ""
	}
	js, err := utils.EncodeJSONWithoutEscapeHTML(map[string]any(idx), indent)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(header, now.Format(TimestampLayout), js)), nil
}

// WriteIndex merges sections into the index stored in the named file, increments its revision and writes it back.
// A missing file is created. If the existing file cannot be parsed, it is left untouched and an error wrapping
// ErrUnrecognizedFormat is returned.
func WriteIndex(ctx context.Context, name string, sections model.Sections, opts WriteOptions) (model.Index, error) {
	log := utils.GetLogger(ctx, "bundleindex.WriteIndex")
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}

	if opts.Lock {
		unlock, err := lockIndex(ctx, name)
		defer unlock()
		if err != nil {
			return nil, err
		}
	}

	idx, found, err := ReadIndex(name)
	if err != nil {
		return nil, err
	}
	log.Debug("read existing index", "file", name, "found", found, "sections", len(idx))

	Merge(idx, sections)
	rev, err := BumpRevision(idx)
	if err != nil {
		return nil, fmt.Errorf("could not update %s: %w", name, err)
	}

	raw, err := Encode(idx, opts.Compact, clock.Now())
	if err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	err = utils.AtomicWriteFile(name, raw, defaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("could not write %s: %w", name, err)
	}
	log.Info("wrote bundle index", "file", name, "revision", rev)
	return idx, nil
}
