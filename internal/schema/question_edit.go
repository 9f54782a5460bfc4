package schema

import (
	"encoding/json"

	"quizhub_backend/internal/util"
)

// ApplyEdit derives the partial-edit form of every variant from its create
// form: each non-"type" field of the patch is optional and overlays the
// stored payload, while "type" stays mandatory and must match the stored
// discriminant. The merged result is revalidated as a full payload, so an
// edit can never leave a question in a shape its create schema would reject.
func ApplyEdit(stored, patch json.RawMessage) (json.RawMessage, error) {
	storedType, err := peekType(stored)
	if err != nil {
		return nil, err
	}
	patchType, err := peekType(patch)
	if err != nil {
		return nil, err
	}
	if patchType != storedType {
		return nil, util.Invalid("type", "cannot change question type from %q to %q", storedType, patchType)
	}

	merged, err := mergeObjects(stored, patch)
	if err != nil {
		return nil, err
	}

	v := variants[storedType]()
	if err := decodeStrict(merged, v); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	return json.Marshal(v)
}

// mergeObjects overlays the top-level keys of patch onto stored. Fields the
// patch omits keep their stored value; fields it supplies replace the stored
// one wholesale (arrays are not spliced element by element).
func mergeObjects(stored, patch json.RawMessage) (json.RawMessage, error) {
	var base map[string]json.RawMessage
	if err := json.Unmarshal(stored, &base); err != nil {
		return nil, util.Invalid("data", "stored payload is not an object")
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return nil, util.Invalid("data", "must be a JSON object")
	}

	for k, v := range overlay {
		base[k] = v
	}
	return json.Marshal(base)
}
