// Package builder turns plain literals, as decoded from JSON, YAML or TOML
// project documents, into validated scene nodes. Every Make function also
// accepts an already built node and returns it unchanged.
package builder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
)

// literal is a read-only view of one decoded node. Builders never write to m.
type literal struct {
	kind string // kind being built, used in errors
	m    map[string]any
}

// asLiteral accepts the map types produced by the document decoders
func asLiteral(kind string, v any) (literal, error) {
	switch m := v.(type) {
	case map[string]any:
		return literal{kind: kind, m: m}, nil
	case map[any]any:
		// older YAML decoders produce interface keys
		converted := make(map[string]any, len(m))
		for k, val := range m {
			converted[fmt.Sprint(k)] = val
		}
		return literal{kind: kind, m: converted}, nil
	case nil:
		return literal{}, core.NewValidationError(kind, "", "literal is missing")
	}
	return literal{}, core.NewValidationError(kind, "", "expected an object, got %T", v)
}

// discriminant returns the lower-cased kind field
func (l literal) discriminant() (string, error) {
	raw, ok := l.m["kind"]
	if !ok {
		return "", core.NewValidationError(l.kind, "kind", "is required")
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", core.NewValidationError(l.kind, "kind", "must be a non-empty string, got %v", raw)
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

func (l literal) has(key string) bool {
	v, ok := l.m[key]
	return ok && v != nil
}

// first returns the first present key among aliases
func (l literal) first(keys ...string) (string, any, bool) {
	for _, k := range keys {
		if v, ok := l.m[k]; ok && v != nil {
			return k, v, true
		}
	}
	return keys[0], nil, false
}

func (l literal) float(key string) (float64, error) {
	v, ok := l.m[key]
	if !ok || v == nil {
		return 0, core.NewValidationError(l.kind, key, "is required")
	}
	f, ok := toNumber(v)
	if !ok {
		return 0, core.NewValidationError(l.kind, key, "must be a number, got %T", v)
	}
	return f, nil
}

func (l literal) optFloat(key string, def float64) (float64, error) {
	if !l.has(key) {
		return def, nil
	}
	return l.float(key)
}

func (l literal) int(key string) (int, error) {
	f, err := l.float(key)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, core.NewValidationError(l.kind, key, "must be an integer, got %g", f)
	}
	return int(f), nil
}

func (l literal) optInt(key string, def int) (int, error) {
	if !l.has(key) {
		return def, nil
	}
	return l.int(key)
}

func (l literal) vec3(key string) (core.Vec3, error) {
	v, ok := l.m[key]
	if !ok || v == nil {
		return core.Vec3{}, core.NewValidationError(l.kind, key, "is required")
	}
	vec, ok := toVec3(v)
	if !ok {
		return core.Vec3{}, core.NewValidationError(l.kind, key, "must be a 3-element numeric vector, got %v", v)
	}
	return vec, nil
}

func (l literal) optVec3(key string, def core.Vec3) (core.Vec3, error) {
	if !l.has(key) {
		return def, nil
	}
	return l.vec3(key)
}

func (l literal) string(key string) (string, error) {
	v, ok := l.m[key]
	if !ok || v == nil {
		return "", core.NewValidationError(l.kind, key, "is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", core.NewValidationError(l.kind, key, "must be a string, got %T", v)
	}
	return s, nil
}

func (l literal) optString(key, def string) (string, error) {
	if !l.has(key) {
		return def, nil
	}
	return l.string(key)
}

func (l literal) list(key string) ([]any, error) {
	v, ok := l.m[key]
	if !ok || v == nil {
		return nil, core.NewValidationError(l.kind, key, "is required")
	}
	items, ok := toList(v)
	if !ok {
		return nil, core.NewValidationError(l.kind, key, "must be a list, got %T", v)
	}
	return items, nil
}

// stringList reads a list of strings, e.g. tags
func (l literal) stringList(key string) ([]string, error) {
	if !l.has(key) {
		return nil, nil
	}
	if s, ok := l.m[key].(string); ok {
		return []string{s}, nil
	}
	items, err := l.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, core.NewValidationError(l.kind, key, "must contain strings, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}

// presence reads a marker field such as area_light: {} or area_light: true
func (l literal) presence(key string) (bool, error) {
	v, ok := l.m[key]
	if !ok || v == nil {
		return false, nil
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case map[string]any, map[any]any:
		return true, nil
	}
	return false, core.NewValidationError(l.kind, key, "must be {} or a boolean, got %T", v)
}

// keys lists the literal's fields, sorted, for error messages
func (l literal) keys() []string {
	keys := make([]string, 0, len(l.m))
	for k := range l.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// toNumber accepts every numeric type the JSON, YAML and TOML decoders produce
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func toList(v any) ([]any, bool) {
	switch items := v.(type) {
	case []any:
		return items, true
	case []float64:
		out := make([]any, len(items))
		for i, f := range items {
			out[i] = f
		}
		return out, true
	case []string:
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(items))
		for i, m := range items {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// toVec3 accepts a core.Vec3, a [3]float64 or any 3-element numeric list
func toVec3(v any) (core.Vec3, bool) {
	switch vec := v.(type) {
	case core.Vec3:
		return vec, true
	case [3]float64:
		return core.NewVec3(vec[0], vec[1], vec[2]), true
	}
	items, ok := toList(v)
	if !ok || len(items) != 3 {
		return core.Vec3{}, false
	}
	var c [3]float64
	for i, item := range items {
		f, ok := toNumber(item)
		if !ok {
			return core.Vec3{}, false
		}
		c[i] = f
	}
	return core.NewVec3(c[0], c[1], c[2]), true
}

// MakeVec3 builds a vector from a 3-element numeric list
func MakeVec3(v any) (core.Vec3, error) {
	vec, ok := toVec3(v)
	if !ok {
		return core.Vec3{}, core.NewValidationError("vec3", "", "expected 3 numbers, got %v", v)
	}
	return vec, nil
}

// wrapIndex prefixes err with the list element it came from
func wrapIndex(field string, i int, err error) error {
	return fmt.Errorf("%s[%d]: %w", field, i, err)
}
