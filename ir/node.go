package ir

import (
	"maps"
	"slices"
)

// Node is a tagged-union value in an input tree. The Type field selects
// which of the remaining fields carry the payload.
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Keys are StringType or
// SymbolType nodes; the encoder rejects anything else. Field order is
// the caller's insertion order and is never changed here.
//
// For ArrayType nodes only Values is populated.
type Node struct {
	Type Type

	Fields []*Node
	Values []*Node

	String  string
	Int64   *int64
	Float64 *float64
	Value   any
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromSymbol wraps an identifier-like token. Symbols behave like strings
// except that they are never quoted on output.
func FromSymbol(v string) *Node {
	return &Node{Type: SymbolType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromValue wraps any value outside the closed set of tree kinds. Such
// values encode via their best-effort string form.
func FromValue(v any) *Node {
	return &Node{Type: OtherType, Value: v}
}

func FromBool(v bool) *Node {
	return FromValue(v)
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object from a Go map, ordering fields by sorted key
// so the result is deterministic. Callers who care about a specific
// order use FromKeyVals.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(m))
	res.Values = make([]*Node, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = m[key]
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// Get returns the value under field, or nil if y has no such field.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] != nil && y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}
