package dbg

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrTypeNotFound        = errors.New("type not found")
	ErrConstructorMismatch = errors.New("constructor mismatch")
	ErrShapeMismatch       = errors.New("shape mismatch")
)

// Field is a single key-value pair of an encoded object or mapping.
type Field struct {
	Key   string
	Value any
}

// Map is an order-preserving string-keyed mapping. [Encode] produces Map
// nodes for mappings and objects so that serialization emits keys in the
// order they were declared, which encoding/json's map handling would not.
type Map []Field

// Get returns the value for key, or nil if the key is absent.
func (m Map) Get(key string) any {
	for _, f := range m {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// MarshalJSON writes the mapping as a JSON object with keys in declared
// order. HTML characters are left unescaped, matching [JSONEncode].
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalJSON(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalJSON(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the mapping as a YAML mapping node in declared order.
func (m Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range m {
		var key, val yaml.Node
		key.SetString(f.Key)
		if err := val.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// Tuple is a fixed-size ordered sequence. [Encode] produces Tuple nodes for
// array values so the rendered tree keeps them distinct from lists; at the
// JSON layer both serialize to an array.
type Tuple []any

// Fielder is the serialization capability for object values. A type that
// implements it is encoded as a mapping of {"class": <type name>} merged
// with its declared fields, in declared order. Fields computed on the fly
// rather than stored are captured only if the implementation returns them.
type Fielder interface {
	Fields() []Field
}

// Constructor builds a value of a registered type from its decoded fields.
// It should reject field sets that do not match the type's shape.
type Constructor func(fields map[string]any) (any, error)

// Registry maps class-tag names to constructors for [JSONDecode]. The zero
// value resolves nothing; populate it at initialization with [Registry.Register].
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register associates a class-tag name with a constructor, replacing any
// previous registration under the same name.
func (r *Registry) Register(name string, ctor Constructor) {
	if r.ctors == nil {
		r.ctors = make(map[string]Constructor)
	}
	r.ctors[name] = ctor
}

func (r *Registry) lookup(name string) (Constructor, bool) {
	if r == nil {
		return nil, false
	}
	ctor, ok := r.ctors[name]
	return ctor, ok
}

// marshalJSON is json.Marshal with HTML escaping off and no trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
