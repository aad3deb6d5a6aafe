// Package gomap converts plain Go values into ir trees.
//
// It exists for callers who assemble configuration from Go structs and
// maps rather than building ir nodes by hand:
//
//	type Service struct {
//	    Name string `yaml:"name"`
//	    Port int    `yaml:"port"`
//	}
//	node, err := gomap.ToIR(Service{Name: "web", Port: 80})
//
// Struct fields convert in declared order; map keys are sorted. For an
// order other than those, build the tree with ir.FromKeyVals directly.
package gomap
