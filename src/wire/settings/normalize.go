// Package settings converts host configuration values into JSON-safe trees
// for workspace/didChangeConfiguration.
//
// Normalized trees only contain map[string]any, []any, string, bool, nil,
// int64, uint64, float64 and json.Number. Normalize accepts those plus the
// host shapes listed on Normalize and rejects everything else.
package settings

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"lspwire/src/internal/common"
	"lspwire/src/internal/errors"
)

// Mapping is a host mapping that can enumerate its keys. Keys must be
// string or []byte.
type Mapping interface {
	Keys() []any
	Get(key any) (any, bool)
}

// Sequence is a host sequence with random access
type Sequence interface {
	Len() int
	Index(i int) any
}

// Normalize recursively converts v into a JSON-compatible tree:
//   - mappings (Go maps with string or []byte keys, Mapping, YAML mapping
//     nodes) become map[string]any
//   - sequences (slices, arrays, Sequence, YAML sequence nodes) become []any
//     in the same order
//   - []byte is decoded as UTF-8 text
//   - integers widen to int64/uint64, floats to float64
//   - strings, bools, nil and well-formed json.Number literals pass through
//   - nil pointers, including nil Mapping or Sequence pointers, become null
//
// Invalid UTF-8, non-finite floats, malformed number literals and any other
// type fail with UnsupportedConfigValueError. A value that contains itself
// fails with CyclicConfigError. Containers without an identity (value-type
// Mapping or Sequence implementations) cannot be tracked, so nesting deeper
// than maxDepth is also reported as CyclicConfigError.
func Normalize(v any) (any, error) {
	n := &normalizer{active: make(map[visitKey]struct{})}
	out, err := n.value(v, "")
	if err != nil {
		return nil, err
	}
	if common.WireLogger.Enabled(common.LogDebug) {
		common.WireLogger.Debug("config: %s", describe(out))
	}
	return out, nil
}

// maxDepth bounds container nesting
const maxDepth = 512

// numberLiteral is the JSON number grammar
var numberLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

type visitKey struct {
	kind reflect.Kind
	ptr  uintptr
}

type normalizer struct {
	// containers on the current descent path
	active map[visitKey]struct{}
	depth  int
}

// enter marks a container as being descended into. A successful enter must
// be paired with leave.
func (n *normalizer) enter(key visitKey, path string) error {
	if n.depth >= maxDepth {
		return errors.NewCyclicConfigError(path)
	}
	if key.ptr != 0 {
		if _, seen := n.active[key]; seen {
			return errors.NewCyclicConfigError(path)
		}
		n.active[key] = struct{}{}
	}
	n.depth++
	return nil
}

func (n *normalizer) leave(key visitKey) {
	n.depth--
	if key.ptr != 0 {
		delete(n.active, key)
	}
}

func (n *normalizer) value(v any, path string) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		if !utf8.ValidString(t) {
			return nil, errors.NewUnsupportedConfigValueError(path, v, "invalid UTF-8")
		}
		return t, nil
	case []byte:
		return decodeText(t, path)
	case bool:
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return uint64(t), nil
	case uint8:
		return uint64(t), nil
	case uint16:
		return uint64(t), nil
	case uint32:
		return uint64(t), nil
	case uint64:
		return t, nil
	case float32:
		return finite(float64(t), v, path)
	case float64:
		return finite(t, v, path)
	case json.Number:
		if !numberLiteral.MatchString(string(t)) {
			return nil, errors.NewUnsupportedConfigValueError(path, v, "invalid number literal")
		}
		return t, nil
	case *yaml.Node:
		return n.node(t, path)
	case yaml.Node:
		return n.node(&t, path)
	case map[string]any:
		return n.stringMap(t, path)
	case []any:
		return n.slice(t, path)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}
	switch t := v.(type) {
	case Mapping:
		return n.mapping(t, path)
	case Sequence:
		return n.sequence(t, path)
	}
	return n.reflectValue(rv, path)
}

func decodeText(b []byte, path string) (any, error) {
	if !utf8.Valid(b) {
		return nil, errors.NewUnsupportedConfigValueError(path, b, "invalid UTF-8")
	}
	return string(b), nil
}

func finite(f float64, orig any, path string) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.NewUnsupportedConfigValueError(path, orig, "not a finite number")
	}
	return f, nil
}

func (n *normalizer) stringMap(m map[string]any, path string) (any, error) {
	key := visitKey{reflect.Map, reflect.ValueOf(m).Pointer()}
	if err := n.enter(key, path); err != nil {
		return nil, err
	}
	defer n.leave(key)

	out := make(map[string]any, len(m))
	for k, v := range m {
		if !utf8.ValidString(k) {
			return nil, errors.NewUnsupportedConfigValueError(path, k, "invalid UTF-8 key")
		}
		nv, err := n.value(v, childPath(path, k))
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func (n *normalizer) slice(s []any, path string) (any, error) {
	key := visitKey{reflect.Slice, sliceKey(reflect.ValueOf(s))}
	if err := n.enter(key, path); err != nil {
		return nil, err
	}
	defer n.leave(key)

	out := make([]any, len(s))
	for i, v := range s {
		nv, err := n.value(v, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func (n *normalizer) mapping(m Mapping, path string) (any, error) {
	key := visitKey{reflect.Interface, pointerOf(m)}
	if err := n.enter(key, path); err != nil {
		return nil, err
	}
	defer n.leave(key)

	keys := m.Keys()
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		name, err := keyText(k, path)
		if err != nil {
			return nil, err
		}
		// A key without a value reads as null, like a dictionary get()
		v, _ := m.Get(k)
		nv, err := n.value(v, childPath(path, name))
		if err != nil {
			return nil, err
		}
		out[name] = nv
	}
	return out, nil
}

func (n *normalizer) sequence(s Sequence, path string) (any, error) {
	key := visitKey{reflect.Interface, pointerOf(s)}
	if err := n.enter(key, path); err != nil {
		return nil, err
	}
	defer n.leave(key)

	out := make([]any, s.Len())
	for i := range out {
		nv, err := n.value(s.Index(i), indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

// reflectValue covers named and typed maps and slices such as
// map[string]string or []int.
func (n *normalizer) reflectValue(rv reflect.Value, path string) (any, error) {
	switch rv.Kind() {
	case reflect.Map:
		key := visitKey{reflect.Map, rv.Pointer()}
		if err := n.enter(key, path); err != nil {
			return nil, err
		}
		defer n.leave(key)

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			name, err := keyText(iter.Key().Interface(), path)
			if err != nil {
				return nil, err
			}
			nv, err := n.value(iter.Value().Interface(), childPath(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = nv
		}
		return out, nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return decodeText(rv.Bytes(), path)
		}
		key := visitKey{reflect.Slice, sliceKey(rv)}
		if err := n.enter(key, path); err != nil {
			return nil, err
		}
		defer n.leave(key)
		return n.elements(rv, path)
	case reflect.Array:
		return n.elements(rv, path)
	case reflect.String:
		return n.value(rv.String(), path)
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float(), rv.Interface(), path)
	}
	return nil, errors.NewUnsupportedConfigValueError(path, rv.Interface(), "")
}

func (n *normalizer) elements(rv reflect.Value, path string) (any, error) {
	out := make([]any, rv.Len())
	for i := range out {
		nv, err := n.value(rv.Index(i).Interface(), indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}

func keyText(k any, path string) (string, error) {
	switch t := k.(type) {
	case string:
		if !utf8.ValidString(t) {
			return "", errors.NewUnsupportedConfigValueError(path, k, "invalid UTF-8 key")
		}
		return t, nil
	case []byte:
		if !utf8.Valid(t) {
			return "", errors.NewUnsupportedConfigValueError(path, k, "invalid UTF-8 key")
		}
		return string(t), nil
	}
	rv := reflect.ValueOf(k)
	if rv.Kind() == reflect.String {
		return keyText(rv.String(), path)
	}
	return "", errors.NewUnsupportedConfigValueError(path, k, "mapping keys must be text")
}

// sliceKey identifies a slice by its backing array. Empty slices have no
// elements to recurse into and are never tracked.
func sliceKey(rv reflect.Value) uintptr {
	if rv.Len() == 0 {
		return 0
	}
	return rv.Pointer()
}

func pointerOf(v any) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.UnsafePointer:
		return rv.Pointer()
	case reflect.Slice:
		return sliceKey(rv)
	}
	return 0
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func describe(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unprintable>"
	}
	return string(b)
}
