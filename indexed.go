package weave

import "github.com/gogpu/weave/ir"

// Accessor synthesizes loads and stores for one addressable-value
// variant. Implementations emit exactly one operation per call.
type Accessor interface {
	Load(b *ir.Builder, base ir.Value, indices []ir.Value) ir.Value
	Store(b *ir.Builder, value, base ir.Value, indices []ir.Value) ir.Value
}

// MemAccessor loads and stores through the builder's plain memory
// operations.
type MemAccessor struct{}

// Load emits a load from base at indices.
func (MemAccessor) Load(b *ir.Builder, base ir.Value, indices []ir.Value) ir.Value {
	return b.CreateLoad(base, indices)
}

// Store emits a store of value to base at indices.
func (MemAccessor) Store(b *ir.Builder, value, base ir.Value, indices []ir.Value) ir.Value {
	return b.CreateStore(value, base, indices)
}

// IndexedValue is a transient view over an addressable base value and
// an index list. It owns neither: it only synthesizes load and store
// operations through its Accessor. Every read is explicit — nothing is
// emitted until Load, a combinator, or an assignment is called.
type IndexedValue struct {
	b       *ir.Builder
	acc     Accessor
	base    ir.Value
	indices []ir.Value
}

// Indexed returns a view over base at the given indices.
func Indexed(b *ir.Builder, acc Accessor, base ir.Value, indices ...ir.Value) IndexedValue {
	return IndexedValue{b: b, acc: acc, base: base, indices: indices}
}

// Load emits a load at the current index list and returns the loaded
// handle.
func (v IndexedValue) Load() ir.Value {
	return v.acc.Load(v.b, v.base, v.indices)
}

// Base returns the underlying base handle.
func (v IndexedValue) Base() ir.Value {
	return v.base
}

// Indices returns the view's index handles.
func (v IndexedValue) Indices() []ir.Value {
	return v.indices
}

// Assign stores e to the view's base and indices and returns the
// store's result handle.
func (v IndexedValue) Assign(e ir.Value) ir.Value {
	return v.acc.Store(v.b, e, v.base, v.indices)
}

// combine loads the current value and applies op against e.
func (v IndexedValue) combine(op ir.BinaryOp, e ir.Value) ir.Value {
	return v.b.CreateBinary(op, v.Load(), e)
}

// assign loads the current value, applies op against e, and stores the
// result back. Exactly one load and one store are emitted.
func (v IndexedValue) assign(op ir.BinaryOp, e ir.Value) ir.Value {
	return v.Assign(v.combine(op, e))
}

// Non-mutating combinators: load, combine, no write-back.

// Add emits load + e.
func (v IndexedValue) Add(e ir.Value) ir.Value { return v.combine(ir.BinaryAdd, e) }

// Sub emits load - e.
func (v IndexedValue) Sub(e ir.Value) ir.Value { return v.combine(ir.BinarySub, e) }

// Mul emits load * e.
func (v IndexedValue) Mul(e ir.Value) ir.Value { return v.combine(ir.BinaryMul, e) }

// Div emits load / e.
func (v IndexedValue) Div(e ir.Value) ir.Value { return v.combine(ir.BinaryDiv, e) }

// Rem emits the remainder of load / e.
func (v IndexedValue) Rem(e ir.Value) ir.Value { return v.combine(ir.BinaryRem, e) }

// And emits load && e.
func (v IndexedValue) And(e ir.Value) ir.Value { return v.combine(ir.BinaryAnd, e) }

// Or emits load || e.
func (v IndexedValue) Or(e ir.Value) ir.Value { return v.combine(ir.BinaryOr, e) }

// Xor emits load ^ e.
func (v IndexedValue) Xor(e ir.Value) ir.Value { return v.combine(ir.BinaryXor, e) }

// Eq emits load == e.
func (v IndexedValue) Eq(e ir.Value) ir.Value { return v.combine(ir.BinaryEq, e) }

// Ne emits load != e.
func (v IndexedValue) Ne(e ir.Value) ir.Value { return v.combine(ir.BinaryNe, e) }

// Lt emits load < e.
func (v IndexedValue) Lt(e ir.Value) ir.Value { return v.combine(ir.BinaryLt, e) }

// Le emits load <= e.
func (v IndexedValue) Le(e ir.Value) ir.Value { return v.combine(ir.BinaryLe, e) }

// Gt emits load > e.
func (v IndexedValue) Gt(e ir.Value) ir.Value { return v.combine(ir.BinaryGt, e) }

// Ge emits load >= e.
func (v IndexedValue) Ge(e ir.Value) ir.Value { return v.combine(ir.BinaryGe, e) }

// Compound assignments: load, combine, store to the same base and
// indices, returning the store's result handle.

// AddAssign emits store(load + e).
func (v IndexedValue) AddAssign(e ir.Value) ir.Value { return v.assign(ir.BinaryAdd, e) }

// SubAssign emits store(load - e).
func (v IndexedValue) SubAssign(e ir.Value) ir.Value { return v.assign(ir.BinarySub, e) }

// MulAssign emits store(load * e).
func (v IndexedValue) MulAssign(e ir.Value) ir.Value { return v.assign(ir.BinaryMul, e) }

// DivAssign emits store(load / e).
func (v IndexedValue) DivAssign(e ir.Value) ir.Value { return v.assign(ir.BinaryDiv, e) }

// RemAssign emits store(load % e).
func (v IndexedValue) RemAssign(e ir.Value) ir.Value { return v.assign(ir.BinaryRem, e) }

// XorAssign emits store(load ^ e).
func (v IndexedValue) XorAssign(e ir.Value) ir.Value { return v.assign(ir.BinaryXor, e) }
