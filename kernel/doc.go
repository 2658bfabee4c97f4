// Package kernel parses declarative kernel descriptions and lowers
// them to IR through the weave builders.
//
// A kernel description is a YAML document naming a function, its
// addressable buffer arguments, a rectangular loop nest with constant
// bounds, and a list of assignment statements executed at the
// innermost scope. Every load and store is indexed by the nest's
// induction variables, outermost first, so each buffer's rank must
// equal the nest depth.
//
//	name: scale
//	buffers:
//	  - {name: src, rank: 2}
//	  - {name: dst, rank: 2}
//	loops:
//	  - {lower: 0, upper: 64, step: 1}
//	  - {lower: 0, upper: 64, step: 1}
//	ops:
//	  - target: dst
//	    expr: {mul: [{load: src}, {const: 2}]}
//
// The pipeline is Parse → Lower → ir.Print; Compile runs all three.
package kernel
