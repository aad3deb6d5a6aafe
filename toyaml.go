// Package toyaml serializes in-memory ordered trees into block-style
// YAML text, the subset sufficient for configuration artifacts such as
// Kubernetes manifests. It produces text only; writing it somewhere is
// the caller's business.
package toyaml

import (
	"github.com/beji/to-yaml/encode"
	"github.com/beji/to-yaml/gomap"
	"github.com/beji/to-yaml/ir"
)

// Encode renders tree at depth 0.
func Encode(tree *ir.Node) (string, error) {
	return encode.String(tree)
}

// EncodeAt renders tree with every line indented at the given depth,
// for splicing into a larger document.
func EncodeAt(depth int, tree *ir.Node) (string, error) {
	return encode.String(tree, encode.Depth(depth))
}

// Marshal converts a Go value to a tree and renders it.
func Marshal(v any) (string, error) {
	node, err := gomap.ToIR(v)
	if err != nil {
		return "", err
	}
	return encode.String(node)
}
