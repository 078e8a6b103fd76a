package dbg

import (
	"encoding/json"
	"fmt"
)

// JSONDecode parses a JSON document and walks the result bottom-up. Any
// mapping carrying a "class" key is resolved through reg: the named
// constructor is called with the remaining fields. An unregistered name
// fails with [ErrTypeNotFound]; a constructor rejecting the fields fails
// with [ErrConstructorMismatch]. Untagged mappings and sequences decode to
// plain map[string]any and []any. A nil registry resolves nothing.
func JSONDecode(s string, reg *Registry) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return decodeValue(v, reg)
}

func decodeValue(v any, reg *Registry) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			dv, err := decodeValue(val, reg)
			if err != nil {
				return nil, err
			}
			out[k] = dv
		}
		name, ok := out["class"].(string)
		if !ok {
			return out, nil
		}
		ctor, ok := reg.lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
		}
		delete(out, "class")
		obj, err := ctor(out)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrConstructorMismatch, name, err)
		}
		return obj, nil
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			dv, err := decodeValue(e, reg)
			if err != nil {
				return nil, err
			}
			out[i] = dv
		}
		return out, nil
	}
	return v, nil
}
