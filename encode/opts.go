package encode

import "github.com/beji/to-yaml/indent"

type EncodeOption func(*EncState)

// Depth sets the starting depth, for composing partial documents.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Indent overrides the default two-space indentation.
func Indent(cfg indent.Config) EncodeOption {
	return func(es *EncState) { es.indCfg = cfg }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
