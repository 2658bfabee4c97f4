package ir

import (
	"fmt"
	"io"
	"strings"
)

// Print returns the textual form of a module. Output is deterministic:
// values are numbered in creation order within each function.
func Print(m *Module) string {
	var w writer
	for i, fn := range m.Functions {
		if i > 0 {
			w.out.WriteByte('\n')
		}
		w.writeFunction(fn)
	}
	return w.out.String()
}

// PrintFunction returns the textual form of a single function.
func PrintFunction(fn *Function) string {
	var w writer
	w.writeFunction(fn)
	return w.out.String()
}

// Fprint writes the textual form of a module to w.
func Fprint(w io.Writer, m *Module) error {
	_, err := io.WriteString(w, Print(m))
	return err
}

// writer generates the textual IR form.
type writer struct {
	out    strings.Builder
	indent int

	fn    *Function
	names map[Value]string

	resultCount    int
	inductionCount int
}

func (w *writer) writeFunction(fn *Function) {
	w.fn = fn
	w.names = make(map[Value]string, len(fn.values))
	w.resultCount = 0
	w.inductionCount = 0

	w.out.WriteString("func @")
	w.out.WriteString(fn.Name)
	w.out.WriteByte('(')
	for i, arg := range fn.args {
		if i > 0 {
			w.out.WriteString(", ")
		}
		def := fn.def(arg)
		w.names[arg] = "%" + def.name
		fmt.Fprintf(&w.out, "%%%s: %s", def.name, rankString(def.rank))
	}
	w.out.WriteString(") {\n")
	w.indent++
	w.writeBlock(fn.Entry)
	w.indent--
	w.out.WriteString("}\n")
}

func (w *writer) writeBlock(block *Block) {
	for _, h := range block.Ops {
		w.writeOp(w.fn.Op(h))
	}
}

func (w *writer) writeOp(op Operation) {
	switch kind := op.Kind.(type) {
	case OpConstant:
		w.line("%s = const %d", w.result(op.Result), kind.Value)
	case OpBinary:
		w.line("%s = %s %s, %s", w.result(op.Result), kind.Op, w.name(kind.LHS), w.name(kind.RHS))
	case OpUnary:
		w.line("%s = %s %s", w.result(op.Result), kind.Op, w.name(kind.Operand))
	case OpLoad:
		w.line("%s = load %s[%s]", w.result(op.Result), w.name(kind.Base), w.nameList(kind.Indices))
	case OpStore:
		w.line("%s = store %s, %s[%s]", w.result(op.Result), w.name(kind.Value), w.name(kind.Base), w.nameList(kind.Indices))
	case OpFor:
		iv := w.induction(kind.Body.Arg)
		w.line("for %s = %s to %s step %d {", iv, w.bound("max", kind.LowerBounds), w.bound("min", kind.UpperBounds), kind.Step)
		w.indent++
		w.writeBlock(kind.Body)
		w.indent--
		w.line("}")
	default:
		w.line("unknown op %T", kind)
	}
}

// bound renders a bound list: a single bound prints bare, multiple
// bounds print wrapped in the combining function.
func (w *writer) bound(combine string, bounds []Value) string {
	if len(bounds) == 1 {
		return w.name(bounds[0])
	}
	return combine + "(" + w.nameList(bounds) + ")"
}

func (w *writer) result(v Value) string {
	name := fmt.Sprintf("%%%d", w.resultCount)
	w.resultCount++
	w.names[v] = name
	return name
}

func (w *writer) induction(v Value) string {
	name := fmt.Sprintf("%%i%d", w.inductionCount)
	w.inductionCount++
	w.names[v] = name
	return name
}

func (w *writer) name(v Value) string {
	if name, ok := w.names[v]; ok {
		return name
	}
	// Forward references cannot happen with append-only construction.
	return fmt.Sprintf("%%?%d", v)
}

func (w *writer) nameList(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = w.name(v)
	}
	return strings.Join(parts, ", ")
}

func (w *writer) line(format string, args ...any) {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("  ")
	}
	fmt.Fprintf(&w.out, format, args...)
	w.out.WriteByte('\n')
}

func rankString(rank int) string {
	if rank == 0 {
		return "val"
	}
	return fmt.Sprintf("mem<%d>", rank)
}
