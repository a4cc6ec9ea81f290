package update

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Document is a decoded release metadata object.
type Document map[string]any

// String returns the named field when it is present and holds a string.
func (d Document) String(field string) (string, bool) {
	v, ok := d[field]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ParseDocument decodes body as a single JSON object. Trailing data and
// non-object top-level values are rejected.
func ParseDocument(body []byte) (Document, error) {
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return Document(obj), nil
}
