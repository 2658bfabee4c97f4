package ir

// OpKind is the operation-specific payload of an Operation.
type OpKind interface {
	opKind()
}

// OpConstant materializes an integer constant.
type OpConstant struct {
	Value int64
}

func (OpConstant) opKind() {}

// OpBinary applies a binary arithmetic, logical, or comparison
// operator to two values.
type OpBinary struct {
	Op  BinaryOp
	LHS Value
	RHS Value
}

func (OpBinary) opKind() {}

// OpUnary applies a unary operator to one value.
type OpUnary struct {
	Op      UnaryOp
	Operand Value
}

func (OpUnary) opKind() {}

// OpLoad reads from an addressable base at an index list. The index
// count must match the base's rank.
type OpLoad struct {
	Base    Value
	Indices []Value
}

func (OpLoad) opKind() {}

// OpStore writes a value to an addressable base at an index list.
type OpStore struct {
	Value   Value
	Base    Value
	Indices []Value
}

func (OpStore) opKind() {}

// OpFor is a counted loop. Multiple lower bounds combine by max,
// multiple upper bounds by min. The induction variable is the body
// block's argument.
type OpFor struct {
	LowerBounds []Value
	UpperBounds []Value
	Step        int64
	Body        *Block
}

func (OpFor) opKind() {}

// BinaryOp enumerates the binary operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryRem
	BinaryFloorDiv
	BinaryCeilDiv
	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryEq
	BinaryNe
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
)

// String returns the operator's textual mnemonic.
func (op BinaryOp) String() string {
	switch op {
	case BinaryAdd:
		return "add"
	case BinarySub:
		return "sub"
	case BinaryMul:
		return "mul"
	case BinaryDiv:
		return "div"
	case BinaryRem:
		return "rem"
	case BinaryFloorDiv:
		return "floordiv"
	case BinaryCeilDiv:
		return "ceildiv"
	case BinaryAnd:
		return "and"
	case BinaryOr:
		return "or"
	case BinaryXor:
		return "xor"
	case BinaryEq:
		return "eq"
	case BinaryNe:
		return "ne"
	case BinaryLt:
		return "lt"
	case BinaryLe:
		return "le"
	case BinaryGt:
		return "gt"
	case BinaryGe:
		return "ge"
	default:
		return "unknown"
	}
}

// IsComparison reports whether op is one of the comparison operators.
func (op BinaryOp) IsComparison() bool {
	return op >= BinaryEq && op <= BinaryGe
}

// UnaryOp enumerates the unary operators.
type UnaryOp uint8

const (
	// UnaryNot is logical negation.
	UnaryNot UnaryOp = iota
)

// String returns the operator's textual mnemonic.
func (op UnaryOp) String() string {
	switch op {
	case UnaryNot:
		return "not"
	default:
		return "unknown"
	}
}
