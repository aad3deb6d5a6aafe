// Package ir defines the tree of values the encoder serializes.
//
// A tree is built from Node values forming a recursive tagged union:
//
//   - StringType: a text scalar
//   - SymbolType: an identifier-like token, never quoted
//   - NumberType: an int64 or float64
//   - ObjectType: ordered key/value pairs (Fields and Values)
//   - ArrayType: an ordered list (Values)
//   - OtherType: anything else, rendered by its best-effort string form
//
// Use the constructor functions to create nodes:
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromSymbol("age"), Val: ir.FromInt(30)},
//	})
//
// Objects keep their fields exactly as inserted; nothing reorders or
// deduplicates them. Trees are plain data with no synchronization; a
// tree must not be mutated while an encode call is reading it.
package ir
