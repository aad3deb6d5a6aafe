package encode

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	"github.com/beji/to-yaml/ir"
)

// With colors disabled the color table must be byte-transparent so the
// structure of the document never depends on it.
func TestColorsDisabledAreTransparent(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	node := obj(
		kv("name", ir.FromString("web")),
		kv("port", ir.FromInt(80)),
		kv("tags", ir.FromSlice([]*ir.Node{ir.FromString("a")})),
	)
	plain := MustString(node)
	colored := MustString(node, EncodeColors(NewColors()))
	if plain != colored {
		t.Errorf("colored output differs with colors disabled:\n%q\n%q", plain, colored)
	}
}

func TestColorsFallBackToDefault(t *testing.T) {
	c := NewColors()
	// no entry for (ArrayType, ValueColor), the default passthrough applies
	if got := c.Color(ir.ArrayType, ValueColor, "x"); got != "x" {
		t.Errorf("Color fallback = %q, want x", got)
	}
}

func TestColorsForWriter(t *testing.T) {
	if c := ColorsForWriter(&bytes.Buffer{}); c != nil {
		t.Error("non-file writer should get no colors")
	}
}
