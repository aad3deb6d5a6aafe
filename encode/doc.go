// Package encode renders ir trees as block-style YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("port"), Val: ir.FromInt(80)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Or to a string, optionally starting at a depth
//	out, err := encode.String(node, encode.Depth(1))
//
// Output is deterministic: object fields emit in insertion order, each
// line carries the indentation of its depth and ends with a newline.
// Only the block style is produced; there are no anchors, tags, flow
// collections or document markers.
//
// # Related Packages
//
//   - github.com/beji/to-yaml/ir - the input tree
//   - github.com/beji/to-yaml/indent - indentation configuration
//   - github.com/beji/to-yaml/token - scalar quoting policy
package encode
