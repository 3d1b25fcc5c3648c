package entities

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-faster/errors"
)

type specKind int

const (
	specPositiveNumber specKind = iota
	specString
	specBool
)

type specField struct {
	kind    specKind
	allowed []string
}

// specificationSchema is the closed set of keys accepted on a sample item.
var specificationSchema = map[string]specField{
	"width_mm":     {kind: specPositiveNumber},
	"height_mm":    {kind: specPositiveNumber},
	"gusset_mm":    {kind: specPositiveNumber},
	"thickness_um": {kind: specPositiveNumber},
	"material":     {kind: specString},
	"finish":       {kind: specString, allowed: []string{"glossy", "matte", "soft_touch"}},
	"printing":     {kind: specString, allowed: []string{"none", "one_side", "both_sides"}},
	"zipper":       {kind: specBool},
	"window":       {kind: specBool},
}

// Specifications holds schema-checked product specification values.
// Numbers are float64, strings are string and flags are bool.
type Specifications map[string]any

// SpecificationError describes the first offending key of a specification map.
type SpecificationError struct {
	Key    string
	Reason string
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("specifications.%s: %s", e.Key, e.Reason)
}

// ParseSpecifications validates raw against the specification schema and
// returns a normalised copy. Unknown keys and mistyped values are rejected.
func ParseSpecifications(raw map[string]any) (Specifications, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(Specifications, len(raw))
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		field, ok := specificationSchema[k]
		if !ok {
			return nil, &SpecificationError{Key: k, Reason: "unknown key"}
		}
		v, err := field.coerce(raw[k])
		if err != nil {
			return nil, &SpecificationError{Key: k, Reason: err.Error()}
		}
		out[k] = v
	}
	return out, nil
}

func (f specField) coerce(v any) (any, error) {
	switch f.kind {
	case specPositiveNumber:
		n, ok := toFloat(v)
		if !ok {
			return nil, errors.Errorf("expected number, got %T", v)
		}
		if n <= 0 {
			return nil, errors.New("must be positive")
		}
		return n, nil
	case specString:
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, errors.New("expected non-empty string")
		}
		if len(f.allowed) > 0 && !slices.Contains(f.allowed, s) {
			return nil, errors.Errorf("must be one of %v", f.allowed)
		}
		return s, nil
	case specBool:
		b, ok := v.(bool)
		if !ok {
			return nil, errors.Errorf("expected bool, got %T", v)
		}
		return b, nil
	}
	return nil, errors.New("unsupported field")
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
