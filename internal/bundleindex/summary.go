package bundleindex

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/three-bundles/update-index/internal/model"
	"github.com/three-bundles/update-index/internal/utils"
)

// Summary is a short description of an index file
type Summary struct {
	Name     string
	Revision int64
	// Counts holds the number of entries of every category present in the index
	Counts map[string]int
	// Other lists top-level keys that are neither categories nor name or revision
	Other []string
}

// Summarize reads the named index file and counts its entries without decoding the whole index
func Summarize(name string) (Summary, error) {
	_, raw, err := utils.ReadRequiredFile(name)
	if err != nil {
		return Summary{}, err
	}
	obj, err := ExtractObject(raw)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Counts: map[string]int{}}
	err = jsonparser.ObjectEach(obj, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		k := string(key)
		switch {
		case k == model.SectionName:
			if dataType != jsonparser.String {
				return fmt.Errorf("%w: name is not a string", ErrUnrecognizedFormat)
			}
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return err
			}
			sum.Name = s
		case k == model.SectionRevision:
			rev, err := parseRevision(value, dataType)
			if err != nil {
				return err
			}
			sum.Revision = rev
		case model.IsCategory(k) && dataType == jsonparser.Array:
			n := 0
			_, err := jsonparser.ArrayEach(value, func(_ []byte, _ jsonparser.ValueType, _ int, _ error) {
				n++
			})
			if err != nil {
				return err
			}
			sum.Counts[k] = n
		default:
			sum.Other = append(sum.Other, k)
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("could not summarize %s: %w", name, err)
	}
	return sum, nil
}

func parseRevision(value []byte, dataType jsonparser.ValueType) (int64, error) {
	switch dataType {
	case jsonparser.Number:
		return jsonparser.ParseInt(value)
	case jsonparser.String:
		rev, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidRevision, value)
		}
		return rev, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidRevision, value)
	}
}
