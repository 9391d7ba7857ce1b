// Package serialize converts gateway model entities to and from their wire
// mappings. The json struct tag of each entity field holds the wire key and
// is the single source of truth for both directions.
package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag carrying the wire keys.
const TagName = "json"

// DecodeError reports a wire value that cannot be converted to the declared
// field type of the target entity.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode populates target from an untyped wire mapping. Missing keys leave
// the corresponding fields unset, unknown keys are ignored, and nested models
// and lists of models decode recursively. A present value that does not fit
// the declared field type aborts with a *DecodeError. The target must be a
// non-nil pointer.
func Decode(data map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    TagName,
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return &DecodeError{Target: fmt.Sprintf("%T", target), Err: err}
	}

	return nil
}

// Encode maps an entity back to its wire mapping through the same tag table
// Decode reads. Unset fields are absent from the result.
func Encode(entity any) (map[string]any, error) {
	content, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	wire := make(map[string]any)
	if err := json.Unmarshal(content, &wire); err != nil {
		return nil, fmt.Errorf("failed to rebuild wire mapping: %w", err)
	}

	return wire, nil
}
