package bundleindex

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/three-bundles/update-index/internal/model"
)

//go:embed bundle-index.schema.json
var indexSchema string

const indexSchemaUrl = "resource://bundle-index.schema.json"

var indexValidator = jsonschema.MustCompileString(indexSchemaUrl, indexSchema)

// Validate checks that idx has the shape of a bundle index: a name, a revision and lists of paths for the known
// categories. Unknown keys are allowed.
func Validate(idx model.Index) error {
	// round trip through JSON so that values set in memory have the same types as parsed ones
	raw, err := json.Marshal(idx)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	if err := indexValidator.Validate(v); err != nil {
		return fmt.Errorf("invalid bundle index: %w", err)
	}
	return nil
}
