package gomap

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/beji/to-yaml/ir"
)

// ToIR converts a plain Go value to an ir tree by reflection.
//
// Strings, signed and unsigned integers, floats and bools map to the
// corresponding scalar nodes. Maps with string keys become objects with
// fields in sorted key order, so the result is deterministic. Structs
// become objects in declared field order, honoring `yaml:"name"` and
// `yaml:"-"` tags. Slices and arrays become arrays; pointers and
// interfaces are dereferenced, with nil converting to a best-effort
// null value.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.FromValue(nil), nil
	}
	return toIRValue(reflect.ValueOf(v), "")
}

func toIRValue(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.FromValue(nil), nil
	}

	typ := val.Type()
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return ir.FromValue(nil), nil
		}
		return toIRValue(val.Elem(), fieldPath)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// may overflow for very large uint64, the tree carries int64
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath)

	case reflect.Map:
		return toIRMap(val, fieldPath)

	case reflect.Struct:
		return toIRStruct(val, fieldPath)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func toIRSlice(val reflect.Value, fieldPath string) (*ir.Node, error) {
	n := val.Len()
	items := make([]*ir.Node, n)
	for i := range n {
		item, err := toIRValue(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return ir.FromSlice(items), nil
}

func toIRMap(val reflect.Value, fieldPath string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported map key type: %s", val.Type().Key()),
		}
	}
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, key := range keys {
		v, err := toIRValue(val.MapIndex(reflect.ValueOf(key).Convert(val.Type().Key())), appendPath(fieldPath, key))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

func toIRStruct(val reflect.Value, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	kvs := make([]ir.KeyVal, 0, typ.NumField())
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := fieldName(sf)
		if name == "" {
			continue
		}
		v, err := toIRValue(val.Field(i), appendPath(fieldPath, name))
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(name), Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

// fieldName resolves the output key for a struct field, "" when the
// field is skipped.
func fieldName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("yaml")
	if !ok {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	default:
		return name
	}
}

func appendPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}
