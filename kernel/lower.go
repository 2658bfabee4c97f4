package kernel

import (
	"fmt"

	"github.com/gogpu/weave"
	"github.com/gogpu/weave/ir"
)

// binaryFns maps operator names to the expression layer.
var binaryFns = map[string]func(*ir.Builder, ir.Value, ir.Value) ir.Value{
	"add":      weave.Add,
	"sub":      weave.Sub,
	"mul":      weave.Mul,
	"div":      weave.Div,
	"rem":      weave.Rem,
	"floordiv": weave.FloorDiv,
	"ceildiv":  weave.CeilDiv,
	"and":      weave.And,
	"or":       weave.Or,
	"xor":      weave.Xor,
	"eq":       weave.Eq,
	"ne":       weave.Ne,
	"lt":       weave.Lt,
	"le":       weave.Le,
	"gt":       weave.Gt,
	"ge":       weave.Ge,
}

// Lower builds the kernel's loop nest and body into a fresh module.
func Lower(k *Kernel) (*ir.Module, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}

	fn := ir.NewFunction(k.Name)
	bases := make(map[string]ir.Value, len(k.Buffers))
	for _, buf := range k.Buffers {
		bases[buf.Name] = fn.AddArgument(buf.Name, buf.Rank)
	}
	b := ir.NewBuilder(fn)

	depth := len(k.Loops)
	ivs := make([]ir.Value, depth)
	slots := make([]*ir.Value, depth)
	lbs := make([]ir.Value, depth)
	ubs := make([]ir.Value, depth)
	steps := make([]int64, depth)
	for i, loop := range k.Loops {
		slots[i] = &ivs[i]
		lbs[i] = b.CreateConstant(loop.Lower)
		ubs[i] = b.CreateConstant(loop.Upper)
		steps[i] = loop.Step
	}

	var lowerErr error
	weave.NewLoopNest(b, slots, lbs, ubs, steps).Build(func() {
		for i, a := range k.Ops {
			val, err := lowerExpr(b, a.Expr, bases, ivs)
			if err != nil {
				lowerErr = fmt.Errorf("op %d: %w", i, err)
				return
			}
			target := weave.Indexed(b, weave.MemAccessor{}, bases[a.Target], ivs...)
			switch a.Update {
			case "":
				target.Assign(val)
			case "add":
				target.AddAssign(val)
			case "sub":
				target.SubAssign(val)
			case "mul":
				target.MulAssign(val)
			case "div":
				target.DivAssign(val)
			case "rem":
				target.RemAssign(val)
			case "xor":
				target.XorAssign(val)
			}
		}
	})
	if lowerErr != nil {
		return nil, lowerErr
	}

	m := &ir.Module{}
	m.AddFunction(fn)
	return m, nil
}

func lowerExpr(b *ir.Builder, e *Expr, bases map[string]ir.Value, ivs []ir.Value) (ir.Value, error) {
	switch {
	case e.Load != "":
		return weave.Indexed(b, weave.MemAccessor{}, bases[e.Load], ivs...).Load(), nil
	case e.Const != nil:
		return b.CreateConstant(*e.Const), nil
	case e.Op == "not":
		arg, err := lowerExpr(b, e.Args[0], bases, ivs)
		if err != nil {
			return ir.InvalidValue, err
		}
		return weave.Negate(b, arg), nil
	default:
		fn, ok := binaryFns[e.Op]
		if !ok {
			return ir.InvalidValue, fmt.Errorf("unknown operator %q", e.Op)
		}
		lhs, err := lowerExpr(b, e.Args[0], bases, ivs)
		if err != nil {
			return ir.InvalidValue, err
		}
		rhs, err := lowerExpr(b, e.Args[1], bases, ivs)
		if err != nil {
			return ir.InvalidValue, err
		}
		return fn(b, lhs, rhs), nil
	}
}

// Compile parses, lowers, and prints a kernel description in one step.
func Compile(src []byte) (string, error) {
	k, err := Parse(src)
	if err != nil {
		return "", err
	}
	m, err := Lower(k)
	if err != nil {
		return "", fmt.Errorf("lowering kernel %q: %w", k.Name, err)
	}
	return ir.Print(m), nil
}
