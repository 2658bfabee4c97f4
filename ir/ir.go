package ir

import "fmt"

// Value is an opaque handle to a single IR value: a function argument,
// a loop induction variable, or an operation result. Values are
// identity-comparable and only meaningful within the Function that
// produced them.
type Value uint32

// InvalidValue is the zero-information sentinel. Operations without a
// result carry it in their Result slot.
const InvalidValue Value = ^Value(0)

// OperationHandle references an operation in a function's arena.
type OperationHandle uint32

// valueKind records how a value came to exist.
type valueKind uint8

const (
	valueArgument valueKind = iota
	valueInduction
	valueResult
)

// valueDef is the arena entry behind a Value handle.
type valueDef struct {
	kind valueKind
	name string // argument name; empty otherwise
	rank int    // addressable rank; 0 for scalar values
}

// Operation is one emitted IR operation. Kind holds the
// operation-specific payload.
type Operation struct {
	Kind   OpKind
	Result Value
}

// Block is an ordered sequence of operations. Loop bodies are blocks
// with the loop's induction variable as their argument.
type Block struct {
	// Ops lists the block's operations in emission order.
	Ops []OperationHandle

	// Arg is the induction variable for loop bodies, InvalidValue for
	// the entry block.
	Arg Value
}

// Function owns the value and operation arenas for one function and
// its entry block.
type Function struct {
	Name  string
	Entry *Block

	args   []Value
	values []valueDef
	ops    []Operation
}

// NewFunction creates an empty function with a fresh entry block.
func NewFunction(name string) *Function {
	return &Function{
		Name:  name,
		Entry: &Block{Arg: InvalidValue},
	}
}

// AddArgument appends a function argument and returns its handle.
// Rank is the argument's addressable rank: 0 for plain values, n for
// an n-dimensional addressable base.
func (f *Function) AddArgument(name string, rank int) Value {
	if rank < 0 {
		panic(fmt.Sprintf("ir: argument %q has negative rank %d", name, rank))
	}
	v := f.newValue(valueDef{kind: valueArgument, name: name, rank: rank})
	f.args = append(f.args, v)
	return v
}

// Arguments returns the function's argument handles in declaration order.
func (f *Function) Arguments() []Value {
	return f.args
}

// Rank returns the addressable rank of v: 0 for scalar values, n for
// an n-dimensional base.
func (f *Function) Rank(v Value) int {
	return f.def(v).rank
}

// Op returns the operation behind a handle.
func (f *Function) Op(h OperationHandle) Operation {
	if int(h) >= len(f.ops) {
		panic(fmt.Sprintf("ir: operation handle %d out of range (max %d)", h, len(f.ops)))
	}
	return f.ops[h]
}

// NumOps returns the total number of operations emitted into f,
// across all blocks.
func (f *Function) NumOps() int {
	return len(f.ops)
}

func (f *Function) newValue(def valueDef) Value {
	v := Value(len(f.values))
	f.values = append(f.values, def)
	return v
}

func (f *Function) def(v Value) valueDef {
	if int(v) >= len(f.values) {
		panic(fmt.Sprintf("ir: value handle %d out of range (max %d)", v, len(f.values)))
	}
	return f.values[v]
}

// Module is an ordered collection of functions.
type Module struct {
	Functions []*Function
}

// AddFunction appends fn to the module.
func (m *Module) AddFunction(fn *Function) {
	m.Functions = append(m.Functions, fn)
}
