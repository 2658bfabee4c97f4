package ir

import "fmt"

// InsertPoint is a position where new operations are appended.
// Operations always append to the end of a block.
type InsertPoint struct {
	block *Block
}

// At returns the insertion point at the end of block.
func At(block *Block) InsertPoint {
	return InsertPoint{block: block}
}

// Valid reports whether the insertion point refers to a block.
func (p InsertPoint) Valid() bool {
	return p.block != nil
}

// Block returns the block the insertion point appends to, or nil.
func (p InsertPoint) Block() *Block {
	return p.block
}

// Builder is the construction context for one function. It carries the
// insertion cursor and is the only way to append operations.
//
// A Builder is confined to a single goroutine. Semantic failures
// (unknown handles, rank mismatches, malformed bounds) panic: the
// inputs are caller-contract violations, not recoverable conditions.
type Builder struct {
	fn     *Function
	ip     InsertPoint
	consts map[int64]Value
}

// NewBuilder creates a builder for fn with the cursor at the end of
// the entry block.
func NewBuilder(fn *Function) *Builder {
	return &Builder{
		fn:     fn,
		ip:     At(fn.Entry),
		consts: make(map[int64]Value),
	}
}

// Function returns the function under construction.
func (b *Builder) Function() *Function {
	return b.fn
}

// InsertionPoint returns the current cursor.
func (b *Builder) InsertionPoint() InsertPoint {
	return b.ip
}

// SetInsertionPoint moves the cursor.
func (b *Builder) SetInsertionPoint(ip InsertPoint) {
	b.ip = ip
}

// CreateConstant returns a value holding the integer constant v.
// Constants are deduplicated per function: repeated calls with the
// same v return the same handle. The defining operation is emitted at
// the cursor position of the first call.
func (b *Builder) CreateConstant(v int64) Value {
	if c, ok := b.consts[v]; ok {
		return c
	}
	c := b.emit(OpConstant{Value: v}, true)
	b.consts[v] = c
	return c
}

// CreateBinary emits one binary operation and returns its result.
func (b *Builder) CreateBinary(op BinaryOp, lhs, rhs Value) Value {
	b.fn.def(lhs)
	b.fn.def(rhs)
	return b.emit(OpBinary{Op: op, LHS: lhs, RHS: rhs}, true)
}

// CreateUnary emits one unary operation and returns its result.
func (b *Builder) CreateUnary(op UnaryOp, operand Value) Value {
	b.fn.def(operand)
	return b.emit(OpUnary{Op: op, Operand: operand}, true)
}

// CreateLoad emits a load from base at indices. The index count must
// equal the base's rank.
func (b *Builder) CreateLoad(base Value, indices []Value) Value {
	b.checkAccess("load", base, indices)
	return b.emit(OpLoad{Base: base, Indices: cloneValues(indices)}, true)
}

// CreateStore emits a store of value to base at indices and returns
// the store's result handle.
func (b *Builder) CreateStore(value, base Value, indices []Value) Value {
	b.fn.def(value)
	b.checkAccess("store", base, indices)
	return b.emit(OpStore{Value: value, Base: base, Indices: cloneValues(indices)}, true)
}

// CreateLoop emits one loop operation at the cursor and returns its
// body block together with the induction variable bound inside it.
// Multiple lower bounds combine by max, multiple upper bounds by min.
// The cursor is left unchanged; callers position it inside the body
// themselves.
func (b *Builder) CreateLoop(lowerBounds, upperBounds []Value, step int64) (*Block, Value) {
	if len(lowerBounds) == 0 || len(upperBounds) == 0 {
		panic("ir: loop requires at least one lower and one upper bound")
	}
	if step == 0 {
		panic("ir: loop step must be nonzero")
	}
	for _, v := range lowerBounds {
		b.fn.def(v)
	}
	for _, v := range upperBounds {
		b.fn.def(v)
	}

	iv := b.fn.newValue(valueDef{kind: valueInduction})
	body := &Block{Arg: iv}
	b.emit(OpFor{
		LowerBounds: cloneValues(lowerBounds),
		UpperBounds: cloneValues(upperBounds),
		Step:        step,
		Body:        body,
	}, false)
	return body, iv
}

// emit appends one operation at the cursor, allocating a result value
// when the operation produces one.
func (b *Builder) emit(kind OpKind, hasResult bool) Value {
	if !b.ip.Valid() {
		panic("ir: builder has no insertion point")
	}
	op := Operation{Kind: kind, Result: InvalidValue}
	if hasResult {
		op.Result = b.fn.newValue(valueDef{kind: valueResult})
	}
	h := OperationHandle(len(b.fn.ops))
	b.fn.ops = append(b.fn.ops, op)
	b.ip.block.Ops = append(b.ip.block.Ops, h)
	return op.Result
}

func (b *Builder) checkAccess(what string, base Value, indices []Value) {
	rank := b.fn.def(base).rank
	if rank == 0 {
		panic(fmt.Sprintf("ir: %s base %d is not addressable", what, base))
	}
	if len(indices) != rank {
		panic(fmt.Sprintf("ir: %s with %d indices on rank-%d base", what, len(indices), rank))
	}
	for _, v := range indices {
		b.fn.def(v)
	}
}

func cloneValues(vs []Value) []Value {
	out := make([]Value, len(vs))
	copy(out, vs)
	return out
}
