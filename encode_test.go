package dbg_test

import (
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/nkraal/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: field capability ---

type Foo struct {
	A int
	B string
}

func (f Foo) Fields() []dbg.Field {
	return []dbg.Field{{Key: "a", Value: f.A}, {Key: "b", Value: f.B}}
}

type Outer struct {
	Name  string
	Inner Foo
}

func (o Outer) Fields() []dbg.Field {
	return []dbg.Field{{Key: "name", Value: o.Name}, {Key: "inner", Value: o.Inner}}
}

// --- Test types: string capability ---

type color int

func (c color) String() string { return "red" }

func TestEncodePrimitives(t *testing.T) {
	t.Parallel()
	assert.Nil(t, dbg.Encode(nil))
	assert.Equal(t, true, dbg.Encode(true))
	assert.Equal(t, 42, dbg.Encode(42))
	assert.Equal(t, 1.5, dbg.Encode(1.5))
	assert.Equal(t, "hi", dbg.Encode("hi"))
}

func TestEncodeTimestamp(t *testing.T) {
	t.Parallel()
	ts := time.Date(2023, 1, 5, 8, 9, 10, 123456789, time.UTC)
	assert.Equal(t, "2023-01-05 08:09:10", dbg.Encode(ts))
	assert.Equal(t, `"2023-01-05 08:09:10"`, dbg.JSONEncode(ts))
}

func TestEncodeError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "boom", dbg.Encode(errors.New("boom")))
}

func TestEncodeStringer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "red", dbg.Encode(color(0)))
}

func TestEncodeFielder(t *testing.T) {
	t.Parallel()
	got := dbg.Encode(Foo{A: 1, B: "x"})
	require.IsType(t, dbg.Map{}, got)
	assert.Equal(t, dbg.Map{
		{Key: "class", Value: "Foo"},
		{Key: "a", Value: 1},
		{Key: "b", Value: "x"},
	}, got)
	assert.Equal(t, `{"class":"Foo","a":1,"b":"x"}`, dbg.JSONEncode(Foo{A: 1, B: "x"}))
}

func TestEncodeFielderNested(t *testing.T) {
	t.Parallel()
	out := dbg.JSONEncode(Outer{Name: "o", Inner: Foo{A: 2, B: "y"}})
	assert.Equal(t, `{"class":"Outer","name":"o","inner":{"class":"Foo","a":2,"b":"y"}}`, out)
}

func TestEncodeFielderPointer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"class":"Foo","a":1,"b":"x"}`, dbg.JSONEncode(&Foo{A: 1, B: "x"}))
}

func TestEncodeSlice(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []any{1, "x", nil}, dbg.Encode([]any{1, "x", nil}))
	assert.Equal(t, []any{1, 2, 3}, dbg.Encode([]int{1, 2, 3}))
	assert.Nil(t, dbg.Encode([]int(nil)))
}

func TestEncodeArrayIsTuple(t *testing.T) {
	t.Parallel()
	assert.Equal(t, dbg.Tuple{1, 2}, dbg.Encode([2]int{1, 2}))
	assert.Equal(t, `[1,2]`, dbg.JSONEncode([2]int{1, 2}))
}

func TestEncodeMapSortsKeys(t *testing.T) {
	t.Parallel()
	got := dbg.Encode(map[string]int{"b": 2, "a": 1})
	assert.Equal(t, dbg.Map{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, got)
	assert.Equal(t, `{"a":1,"b":2}`, dbg.JSONEncode(map[string]int{"b": 2, "a": 1}))
}

func TestEncodeMapNonStringKeys(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"1":"a","2":"b"}`, dbg.JSONEncode(map[int]string{2: "b", 1: "a"}))
}

func TestEncodeChannelDrains(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	assert.Equal(t, []any{1, 2, 3}, dbg.Encode(ch))
}

func TestEncodeSeqMaterializes(t *testing.T) {
	t.Parallel()
	seq := iter.Seq[int](func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	})
	assert.Equal(t, []any{1, 2, 3}, dbg.Encode(seq))
}

func TestEncodeSeq2Pairs(t *testing.T) {
	t.Parallel()
	seq := iter.Seq2[string, int](func(yield func(string, int) bool) {
		_ = yield("a", 1) && yield("b", 2)
	})
	assert.Equal(t, []any{dbg.Tuple{"a", 1}, dbg.Tuple{"b", 2}}, dbg.Encode(seq))
}

func TestEncodeChunksSequence(t *testing.T) {
	t.Parallel()
	got := dbg.Encode(dbg.ChunksList([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, []any{[]any{1, 2}, []any{3, 4}, []any{5}}, got)
}

func TestEncodeFallback(t *testing.T) {
	t.Parallel()
	type plain struct{ X int }
	assert.Equal(t, "{3}", dbg.Encode(plain{X: 3}))
}

func TestEncodeNilPointer(t *testing.T) {
	t.Parallel()
	// Typed nil pointers render as null even when the base type implements
	// a capability with a value receiver; dispatching the capability would
	// call the method through nil.
	var p *Foo
	assert.Nil(t, dbg.Encode(p))
	var tm *time.Time
	assert.Nil(t, dbg.Encode(tm))
	var c *color
	assert.Nil(t, dbg.Encode(c))
	assert.Equal(t, `[null]`, dbg.JSONEncode([]any{p}))
}

func TestEncodeTimestampPointer(t *testing.T) {
	t.Parallel()
	ts := time.Date(2023, 1, 5, 8, 9, 10, 0, time.UTC)
	assert.Equal(t, "2023-01-05 08:09:10", dbg.Encode(&ts))
}

func TestEncodePointerError(t *testing.T) {
	t.Parallel()
	// Stdlib errors are pointers with pointer-receiver Error methods; the
	// error capability must survive pointer dispatch.
	err := errors.New("boom")
	assert.Equal(t, "boom", dbg.Encode(err))
}

func TestJSONEncodeUnescapesNewlines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "\"a\nb\"", dbg.JSONEncode("a\nb"))
}

func TestJSONEncodeNoHTMLEscaping(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `"<a & b>"`, dbg.JSONEncode("<a & b>"))
	assert.Equal(t, `"héllo"`, dbg.JSONEncode("héllo"))
}

func TestYAMLEncode(t *testing.T) {
	t.Parallel()
	out, err := dbg.YAMLEncode(map[string]int{"b": 1, "a": 2})
	require.NoError(t, err)
	assert.Equal(t, "a: 2\nb: 1\n", out)
}

func TestYAMLEncodeFielder(t *testing.T) {
	t.Parallel()
	out, err := dbg.YAMLEncode(Foo{A: 1, B: "x"})
	require.NoError(t, err)
	assert.Equal(t, "class: Foo\na: 1\nb: x\n", out)
}

func TestMapGet(t *testing.T) {
	t.Parallel()
	m := dbg.Map{{Key: "a", Value: 1}}
	assert.Equal(t, 1, m.Get("a"))
	assert.Nil(t, m.Get("missing"))
}
