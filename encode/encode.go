package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beji/to-yaml/indent"
	"github.com/beji/to-yaml/ir"
	"github.com/beji/to-yaml/token"
)

type EncState struct {
	depth  int
	indCfg indent.Config
	ind    *indent.Indenter

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as block-style YAML at depth 0. The node must
// be an object; values dispatch on their type, objects and arrays
// recursing one depth level down. Errors abort immediately, so on error
// w may have received a prefix of the document.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indCfg: indent.Default(),
	}
	for _, opt := range opts {
		opt(es)
	}
	ind, err := indent.New(es.indCfg)
	if err != nil {
		return err
	}
	es.ind = ind
	if _, err := es.ind.At(es.depth); err != nil {
		return err
	}
	if node == nil || node.Type != ir.ObjectType {
		return fmt.Errorf("%w: got %s", ErrInvalidInput, nodeType(node))
	}
	return encodeObject(node, w, es, es.depth)
}

// EncodeAt is Encode starting at an explicit depth, for composing
// fragments of a larger document.
func EncodeAt(depth int, node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return Encode(node, w, append([]EncodeOption{Depth(depth)}, opts...)...)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	for i, field := range node.Fields {
		pre, err := es.ind.At(depth)
		if err != nil {
			return err
		}
		if err := writeString(w, pre); err != nil {
			return err
		}
		if err := writeField(field, w, es); err != nil {
			return err
		}
		if err := encodeValue(node.Values[i], w, es, depth); err != nil {
			return err
		}
	}
	return nil
}

// encodeValue writes everything after "key:" for a value sitting at
// depth: nested objects and arrays start on the next line, scalars
// follow a single space and end the line.
func encodeValue(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	switch nodeType(node) {
	case ir.ObjectType:
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		return encodeObject(node, w, es, depth+1)
	case ir.ArrayType:
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		return encodeArray(node, w, es, depth)
	default:
		v, err := scalarText(node, es)
		if err != nil {
			return err
		}
		return writeString(w, " "+v+"\n")
	}
}

// encodeArray writes the items of an array whose key sits at depth.
// Items are indented one level below the key. Object items put their
// first pair on the dash line and the remaining pairs one level below
// the dash; everything else, nested arrays included, hangs off a bare
// dash.
func encodeArray(node *ir.Node, w io.Writer, es *EncState, depth int) error {
	for _, item := range node.Values {
		if nodeType(item) == ir.ObjectType {
			if err := encodeArrayObject(item, w, es, depth); err != nil {
				return err
			}
			continue
		}
		pre, err := es.ind.At(depth + 1)
		if err != nil {
			return err
		}
		if err := writeString(w, pre+dash(es)); err != nil {
			return err
		}
		if err := encodeValue(item, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func encodeArrayObject(item *ir.Node, w io.Writer, es *EncState, depth int) error {
	if len(item.Fields) == 0 {
		return fmt.Errorf("%w", ErrEmptyMappingItem)
	}
	pre, err := es.ind.At(depth + 1)
	if err != nil {
		return err
	}
	if err := writeString(w, pre+dash(es)+" "); err != nil {
		return err
	}
	if err := writeField(item.Fields[0], w, es); err != nil {
		return err
	}
	if err := encodeValue(item.Values[0], w, es, depth+1); err != nil {
		return err
	}
	for i := 1; i < len(item.Fields); i++ {
		pre, err := es.ind.At(depth + 2)
		if err != nil {
			return err
		}
		if err := writeString(w, pre); err != nil {
			return err
		}
		if err := writeField(item.Fields[i], w, es); err != nil {
			return err
		}
		if err := encodeValue(item.Values[i], w, es, depth+2); err != nil {
			return err
		}
	}
	return nil
}

// writeField writes "key:". Keys pass through unquoted and unvalidated,
// so a key containing a colon or space yields text a reader would
// misparse.
func writeField(field *ir.Node, w io.Writer, es *EncState) error {
	f, err := keyText(field)
	if err != nil {
		return err
	}
	sep := ":"
	if es.Color != nil {
		f = es.Color(ir.ObjectType, FieldColor, f)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+sep)
}

func keyText(field *ir.Node) (string, error) {
	if field == nil {
		return "", fmt.Errorf("%w: nil key", ErrUnsupportedKey)
	}
	switch field.Type {
	case ir.StringType, ir.SymbolType:
		return field.String, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKey, field.Type)
	}
}

func scalarText(node *ir.Node, es *EncState) (string, error) {
	if node == nil {
		return applyValueColor(es, ir.OtherType, fmt.Sprint(nil)), nil
	}
	switch node.Type {
	case ir.StringType:
		v := node.String
		if token.NeedsQuote(v) {
			v = token.Quote(v)
		}
		return applyValueColor(es, ir.StringType, v), nil
	case ir.SymbolType:
		return applyValueColor(es, ir.SymbolType, node.String), nil
	case ir.NumberType:
		return applyValueColor(es, ir.NumberType, numberText(node)), nil
	default:
		return applyValueColor(es, ir.OtherType, fmt.Sprint(node.Value)), nil
	}
}

// numberText renders a number in plain decimal form.
func numberText(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		v := strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		// Ensure zero floats encode as "0.0" not "0"
		switch v {
		case "0":
			v = "0.0"
		case "-0":
			v = "-0.0"
		}
		return v
	}
	return "0"
}

func dash(es *EncState) string {
	sep := "-"
	if es.Color != nil {
		sep = es.Color(ir.ArrayType, SepColor, sep)
	}
	return sep
}

func applyValueColor(es *EncState, t ir.Type, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, ValueColor, v)
}

func nodeType(node *ir.Node) ir.Type {
	if node == nil {
		return ir.OtherType
	}
	return node.Type
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
