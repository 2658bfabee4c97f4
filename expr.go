package weave

import "github.com/gogpu/weave/ir"

// Arithmetic operators. Each call emits one operation at the builder's
// cursor and returns the fresh result handle.

// Add emits lhs + rhs.
func Add(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryAdd, lhs, rhs)
}

// Sub emits lhs - rhs.
func Sub(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinarySub, lhs, rhs)
}

// Mul emits lhs * rhs.
func Mul(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryMul, lhs, rhs)
}

// Div emits lhs / rhs.
func Div(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryDiv, lhs, rhs)
}

// Rem emits the remainder of lhs / rhs.
func Rem(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryRem, lhs, rhs)
}

// FloorDiv emits lhs / rhs rounded toward negative infinity.
func FloorDiv(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryFloorDiv, lhs, rhs)
}

// CeilDiv emits lhs / rhs rounded toward positive infinity.
func CeilDiv(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryCeilDiv, lhs, rhs)
}

// Logical operators.

// And emits lhs && rhs.
func And(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryAnd, lhs, rhs)
}

// Or emits lhs || rhs.
func Or(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryOr, lhs, rhs)
}

// Xor emits lhs ^ rhs.
func Xor(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryXor, lhs, rhs)
}

// Negate emits the logical negation of v.
func Negate(b *ir.Builder, v ir.Value) ir.Value {
	return b.CreateUnary(ir.UnaryNot, v)
}

// Comparison operators.

// Eq emits lhs == rhs.
func Eq(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryEq, lhs, rhs)
}

// Ne emits lhs != rhs.
func Ne(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryNe, lhs, rhs)
}

// Lt emits lhs < rhs.
func Lt(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryLt, lhs, rhs)
}

// Le emits lhs <= rhs.
func Le(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryLe, lhs, rhs)
}

// Gt emits lhs > rhs.
func Gt(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryGt, lhs, rhs)
}

// Ge emits lhs >= rhs.
func Ge(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	return b.CreateBinary(ir.BinaryGe, lhs, rhs)
}
