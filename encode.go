package dbg

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeLayout is the fixed rendering of timestamp values: second precision,
// no timezone, no sub-second component.
const TimeLayout = "2006-01-02 15:04:05"

// Encode renders an arbitrary value as a tree composed only of nil, bools,
// numbers, strings, []any, [Tuple], and [Map]. The traversal is a single
// pass and always terminates for acyclic input; cyclic values are out of
// scope. Every value renders: the final fallback is the value's %v form.
//
// Dispatch order: nil pointers of any type render as null; primitives pass
// through; [time.Time] values and pointers render via [TimeLayout]; errors
// render as their %+v text; [fmt.Stringer] values render as their String()
// output; [Fielder] values render as a class-tagged mapping. A non-nil
// pointer dispatches with its base type's capabilities (a pointer's method
// set includes its base's) and is otherwise dereferenced. Everything else
// goes by kind: slices and arrays recurse elementwise, maps recurse with
// keys sorted by their rendered string, channels and iterator functions are
// drained into a sequence first.
func Encode(v any) any {
	if v == nil {
		return nil
	}
	// Typed nil pointers must short-circuit here: a capability implemented
	// on the base type's value receiver is in the pointer's method set, and
	// calling it through nil panics.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	if t, ok := v.(*time.Time); ok {
		return t.Format(TimeLayout)
	}
	switch x := v.(type) {
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, string:
		return x
	case time.Time:
		return x.Format(TimeLayout)
	case error:
		return fmt.Sprintf("%+v", x)
	case fmt.Stringer:
		return x.String()
	case Fielder:
		fields := x.Fields()
		out := make(Map, 0, len(fields)+1)
		out = append(out, Field{Key: "class", Value: typeName(x)})
		for _, f := range fields {
			out = append(out, Field{Key: f.Key, Value: Encode(f.Value)})
		}
		return out
	case Map:
		out := make(Map, 0, len(x))
		for _, f := range x {
			out = append(out, Field{Key: f.Key, Value: Encode(f.Value)})
		}
		return out
	case Tuple:
		out := make(Tuple, len(x))
		for i, e := range x {
			out[i] = Encode(e)
		}
		return out
	}
	return encodeKind(v)
}

func encodeKind(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Encode(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Encode(rv.Index(i).Interface())
		}
		return out
	case reflect.Array:
		out := make(Tuple, rv.Len())
		for i := range out {
			out[i] = Encode(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		return encodeMap(rv)
	case reflect.Chan:
		return Encode(drainChan(rv))
	case reflect.Func:
		if items, ok := drainSeq(rv); ok {
			return Encode(items)
		}
	}
	return printed(v)
}

// encodeMap renders a Go map. Go maps carry no insertion order, so keys are
// sorted by their rendered string to keep the output deterministic.
func encodeMap(rv reflect.Value) Map {
	out := make(Map, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out = append(out, Field{
			Key:   keyString(it.Key().Interface()),
			Value: Encode(it.Value().Interface()),
		})
	}
	slices.SortStableFunc(out, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}

// keyString renders a mapping key as a JSON object key.
func keyString(k any) string {
	switch x := Encode(k).(type) {
	case nil:
		return "null"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// drainChan receives until the channel is closed. The caller owns closing;
// an unclosed channel blocks.
func drainChan(rv reflect.Value) []any {
	var items []any
	for {
		v, ok := rv.Recv()
		if !ok {
			return items
		}
		items = append(items, v.Interface())
	}
}

// drainSeq materializes an iter.Seq[T] or iter.Seq2[K, V] of any element
// type into a slice, consuming the sequence exactly once. Seq2 pairs become
// two-element tuples. Reports false for functions of any other shape.
func drainSeq(rv reflect.Value) ([]any, bool) {
	t := rv.Type()
	if rv.IsNil() || t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	yt := t.In(0)
	if yt.Kind() != reflect.Func || yt.NumOut() != 1 || yt.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	if n := yt.NumIn(); n != 1 && n != 2 {
		return nil, false
	}
	var items []any
	yield := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
		if len(args) == 2 {
			items = append(items, Tuple{args[0].Interface(), args[1].Interface()})
		} else {
			items = append(items, args[0].Interface())
		}
		return []reflect.Value{reflect.ValueOf(true)}
	})
	rv.Call([]reflect.Value{yield})
	return items, true
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// printed is the total fallback: the value's console display form, with
// literal \n escape sequences unescaped into real newlines.
func printed(v any) string {
	return unescapeNewlines(fmt.Sprintf("%v", v))
}

func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// JSONEncode renders v through [Encode] and serializes the tree as a JSON
// document with non-ASCII and HTML characters left unescaped, then unescapes
// literal \n sequences into real newlines. The unescaping means the result
// is not strictly valid JSON when a value embeds newlines; readability of
// multi-line values wins over machine parseability here.
func JSONEncode(v any) string {
	b, err := marshalJSON(Encode(v))
	if err != nil {
		return printed(v)
	}
	return unescapeNewlines(string(b))
}

// YAMLEncode renders v through [Encode] and serializes the tree as a YAML
// document. Mapping keys keep the same order JSONEncode would emit.
func YAMLEncode(v any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Encode(v)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
