// Package weave provides declarative builders for emitting structured
// IR fragments: nested loop constructs and arithmetic/logical/comparison
// expression trees.
//
// The package composes the creation API of the ir package so that loop
// nests and addressable-value read/write sequences can be written
// without manually sequencing individual operation creations:
//
//	fn := ir.NewFunction("scale")
//	src := fn.AddArgument("src", 2)
//	dst := fn.AddArgument("dst", 2)
//	b := ir.NewBuilder(fn)
//
//	zero := b.CreateConstant(0)
//	n := b.CreateConstant(64)
//	two := b.CreateConstant(2)
//
//	var i, j ir.Value
//	weave.NewLoopNest(b,
//		[]*ir.Value{&i, &j},
//		[]ir.Value{zero, zero},
//		[]ir.Value{n, n},
//		[]int64{1, 1},
//	).Build(func() {
//		s := weave.Indexed(b, weave.MemAccessor{}, src, i, j)
//		d := weave.Indexed(b, weave.MemAccessor{}, dst, i, j)
//		d.Assign(weave.Mul(b, s.Load(), two))
//	})
//
// # Emission order
//
// Every function in this package emits exactly one operation at the
// builder's cursor and returns the fresh result handle. Nothing is
// retained or deferred: a composed call such as
//
//	weave.Add(b, x, weave.Mul(b, y, z))
//
// emits the multiply before the add, because Go evaluates call
// arguments left to right. That left-to-right order is the fixed,
// documented emission order for composed expressions.
//
// # Builders are single-shot
//
// A LoopNest's Build method runs at most once; builders and the
// underlying ir.Builder are confined to one goroutine. Mismatched
// bound/step list lengths and zero steps are caller-contract
// violations and panic.
package weave
