// Package ir defines the intermediate representation that weave builds.
//
// The IR is a minimal loop-level representation:
//   - Functions own arenas of values and operations
//   - Blocks hold operations in emission order
//   - Loop operations carry bound lists, a step, and a nested body block
//   - Values are opaque handles produced by arguments, induction
//     variables, and operation results
//
// # Structure
//
// A Module contains an ordered list of Functions. Each Function has an
// entry Block; loop operations nest further Blocks beneath it. All
// operations are appended through a Builder, which carries the current
// insertion point. Handles are indices into per-function arenas, so a
// Value or OperationHandle is only meaningful together with the
// Function that produced it.
//
// # Construction
//
// Code is emitted by moving the Builder's insertion point and calling
// the Create* methods:
//
//	fn := ir.NewFunction("axpy")
//	x := fn.AddArgument("x", 1)
//	b := ir.NewBuilder(fn)
//	lo := b.CreateConstant(0)
//	hi := b.CreateConstant(128)
//	body, i := b.CreateLoop([]ir.Value{lo}, []ir.Value{hi}, 1)
//	b.SetInsertionPoint(ir.At(body))
//	v := b.CreateLoad(x, []ir.Value{i})
//	b.CreateStore(b.CreateBinary(ir.BinaryAdd, v, v), x, []ir.Value{i})
//
// Higher-level composition (loop nests, infix-style expressions,
// indexed values) lives in the root weave package.
package ir
