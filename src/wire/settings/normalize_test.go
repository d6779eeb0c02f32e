package settings

import (
	"math"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lspwire/src/internal/errors"
)

// hostDict mimics an editor dictionary that only exposes key enumeration
// and lookup, with keys stored in the editor's byte encoding.
type hostDict struct {
	keys   [][]byte
	values map[string]any
}

func (d *hostDict) Keys() []any {
	out := make([]any, len(d.keys))
	for i, k := range d.keys {
		out[i] = k
	}
	return out
}

func (d *hostDict) Get(key any) (any, bool) {
	v, ok := d.values[string(key.([]byte))]
	return v, ok
}

type hostKey string

type hostList struct {
	items []any
}

func (l *hostList) Len() int        { return len(l.items) }
func (l *hostList) Index(i int) any { return l.items[i] }

// echoDict is a value-type mapping whose only entry is itself
type echoDict struct{}

func (echoDict) Keys() []any           { return []any{"next"} }
func (d echoDict) Get(any) (any, bool) { return d, true }

func TestNormalizeScalars(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected any
	}{
		{"nil", nil, nil},
		{"string", "gopls", "gopls"},
		{"bytes", []byte("caf\xc3\xa9"), "café"},
		{"bool", true, true},
		{"int", 42, int64(42)},
		{"int8", int8(-3), int64(-3)},
		{"uint16", uint16(7), uint64(7)},
		{"float32", float32(0.5), 0.5},
		{"float64", 2.25, 2.25},
		{"json number", json.Number("12.5"), json.Number("12.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNormalizeNestedGoValues(t *testing.T) {
	in := map[string]any{
		"python": map[any]any{
			"analysis":       map[string]string{"typeCheckingMode": "strict"},
			hostKey("paths"): []string{"src", "lib"},
		},
		"limits": []int{1, 2, 3},
		"flags":  [2]bool{true, false},
	}

	out, err := Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"python": map[string]any{
			"analysis": map[string]any{"typeCheckingMode": "strict"},
			"paths":    []any{"src", "lib"},
		},
		"limits": []any{int64(1), int64(2), int64(3)},
		"flags":  []any{true, false},
	}, out)
}

func TestNormalizeHostContainers(t *testing.T) {
	dict := &hostDict{
		keys: [][]byte{[]byte("formatter"), []byte("exclude"), []byte("missing")},
		values: map[string]any{
			"formatter": []byte("black"),
			"exclude":   &hostList{items: []any{[]byte("build"), 3}},
		},
	}

	out, err := Normalize(dict)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"formatter": "black",
		"exclude":   []any{"build", int64(3)},
		"missing":   nil,
	}, out)
}

func TestNormalizeRejectsUnsupportedValues(t *testing.T) {
	type point struct{ X, Y int }

	tests := []struct {
		name string
		in   any
		path string
	}{
		{"struct", map[string]any{"a": []any{1, point{1, 2}}}, "a[1]"},
		{"channel", make(chan int), ""},
		{"func", map[string]any{"cb": func() {}}, "cb"},
		{"pointer", map[string]any{"p": new(int)}, "p"},
		{"nan", map[string]any{"ratio": math.NaN()}, "ratio"},
		{"inf", []any{math.Inf(1)}, "[0]"},
		{"invalid utf8 string", map[string]any{"s": "\xff"}, "s"},
		{"invalid utf8 bytes", []any{[]byte{0xfe}}, "[0]"},
		{"non text key", map[int]string{1: "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(tt.in)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.IsUnsupportedConfigValueError(err), "got %v", err)

			var unsupported *errors.UnsupportedConfigValueError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.path, unsupported.Path)
		})
	}
}

func TestNormalizeDetectsCycles(t *testing.T) {
	m := map[string]any{"name": "x"}
	m["self"] = m
	_, err := Normalize(m)
	require.Error(t, err)
	assert.True(t, errors.IsCyclicConfigError(err))
	assert.Contains(t, err.Error(), "self")

	s := make([]any, 1)
	s[0] = s
	_, err = Normalize(s)
	assert.True(t, errors.IsCyclicConfigError(err))

	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	seq.Content = []*yaml.Node{{Kind: yaml.AliasNode, Alias: seq}}
	_, err = Normalize(seq)
	require.Error(t, err)
	var cyclic *errors.CyclicConfigError
	require.ErrorAs(t, err, &cyclic)
	assert.Equal(t, "[0]", cyclic.Path)
}

func TestNormalizeSharedValuesAreNotCycles(t *testing.T) {
	shared := map[string]any{"enabled": true}
	out, err := Normalize(map[string]any{"a": shared, "b": []any{shared, shared}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{"enabled": true},
		"b": []any{map[string]any{"enabled": true}, map[string]any{"enabled": true}},
	}, out)
}

func TestNormalizeYAML(t *testing.T) {
	src := `
gopls:
  usePlaceholders: true
  completionBudget: 100
  ratio: 0.5
  quoted: "123"
  analyses:
    unusedparams: true
  buildFlags: ["-tags", "integration"]
  env: ~
`
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	out, err := Normalize(&doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"gopls": map[string]any{
			"usePlaceholders":  true,
			"completionBudget": int64(100),
			"ratio":            0.5,
			"quoted":           "123",
			"analyses":         map[string]any{"unusedparams": true},
			"buildFlags":       []any{"-tags", "integration"},
			"env":              nil,
		},
	}, out)
}

func TestNormalizeYAMLAnchorsAndMerge(t *testing.T) {
	src := `
base: &base
  a: 1
  b: 2
derived:
  <<: *base
  b: 3
copy: *base
`
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	out, err := Normalize(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"base":    map[string]any{"a": int64(1), "b": int64(2)},
		"derived": map[string]any{"a": int64(1), "b": int64(3)},
		"copy":    map[string]any{"a": int64(1), "b": int64(2)},
	}, out)
}

func TestNormalizeEmptyYAMLDocument(t *testing.T) {
	out, err := Normalize(&yaml.Node{Kind: yaml.DocumentNode})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []any{
		nil,
		"text",
		7,
		map[string]any{"a": []any{1, "two", 3.5, nil, true}, "b": map[any]any{"c": []byte("d")}},
		[]any{map[string]string{"x": "y"}, []int{1}},
		&hostDict{keys: [][]byte{[]byte("k")}, values: map[string]any{"k": uint8(9)}},
	}

	for _, in := range inputs {
		once, err := Normalize(in)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeNumberLiterals(t *testing.T) {
	for _, lit := range []string{"0", "-0", "12", "-3.25", "1e9", "6.02E+23", "1.5e-7"} {
		out, err := Normalize(json.Number(lit))
		require.NoError(t, err, lit)
		assert.Equal(t, json.Number(lit), out)
	}

	for _, lit := range []string{"not-a-number", "", "01", "1.", ".5", "+1", "1e", "0x10", "NaN", "1 "} {
		t.Run(lit, func(t *testing.T) {
			out, err := Normalize(map[string]any{"n": json.Number(lit)})
			assert.Nil(t, out)
			var unsupported *errors.UnsupportedConfigValueError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, "n", unsupported.Path)
			assert.Equal(t, "invalid number literal", unsupported.Reason)
		})
	}
}

func TestNormalizeNilPointersBecomeNull(t *testing.T) {
	out, err := Normalize(map[string]any{
		"dict": (*hostDict)(nil),
		"list": (*hostList)(nil),
		"int":  (*int)(nil),
		"node": (*yaml.Node)(nil),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"dict": nil, "list": nil, "int": nil, "node": nil}, out)

	out, err = Normalize((*hostDict)(nil))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestNormalizeValueTypeCycle(t *testing.T) {
	_, err := Normalize(echoDict{})
	require.Error(t, err)
	assert.True(t, errors.IsCyclicConfigError(err))

	var cyclic *errors.CyclicConfigError
	require.ErrorAs(t, err, &cyclic)
	assert.True(t, strings.HasPrefix(cyclic.Path, "next.next."))
}

func TestNormalizeDeepAcyclicValue(t *testing.T) {
	var v any = "leaf"
	for i := 0; i < maxDepth-1; i++ {
		v = []any{v}
	}
	_, err := Normalize(v)
	require.NoError(t, err)

	_, err = Normalize([]any{[]any{v}})
	assert.True(t, errors.IsCyclicConfigError(err))
}
