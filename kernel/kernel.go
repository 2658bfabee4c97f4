package kernel

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Kernel is a parsed kernel description.
type Kernel struct {
	Name    string   `yaml:"name"`
	Buffers []Buffer `yaml:"buffers"`
	Loops   []Loop   `yaml:"loops"`
	Ops     []Assign `yaml:"ops"`
}

// Buffer declares one addressable function argument.
type Buffer struct {
	Name string `yaml:"name"`
	Rank int    `yaml:"rank"`
}

// Loop declares one nest level with constant bounds.
type Loop struct {
	Lower int64 `yaml:"lower"`
	Upper int64 `yaml:"upper"`
	Step  int64 `yaml:"step"`
}

// Assign is one innermost-scope statement: evaluate Expr and write it
// to Target, either directly or combined with the target's current
// value.
type Assign struct {
	Target string `yaml:"target"`
	// Update selects a read-modify-write: one of "add", "sub", "mul",
	// "div", "rem", "xor". Empty means a plain store.
	Update string `yaml:"update,omitempty"`
	Expr   *Expr  `yaml:"expr"`
}

// Expr is one node of an expression tree. Exactly one of the fields is
// set, according to the single mapping key in the YAML form:
// {load: buffer}, {const: n}, {not: expr}, or {<binop>: [lhs, rhs]}.
type Expr struct {
	Load  string
	Const *int64
	Op    string
	Args  []*Expr
}

var binaryOps = map[string]struct{}{
	"add": {}, "sub": {}, "mul": {}, "div": {}, "rem": {},
	"floordiv": {}, "ceildiv": {},
	"and": {}, "or": {}, "xor": {},
	"eq": {}, "ne": {}, "lt": {}, "le": {}, "gt": {}, "ge": {},
}

// UnmarshalYAML decodes the single-key mapping form of an expression
// node.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("expression node must be a mapping with a single key (line %d)", node.Line)
	}
	key := node.Content[0].Value
	val := node.Content[1]

	switch {
	case key == "load":
		return val.Decode(&e.Load)
	case key == "const":
		var n int64
		if err := val.Decode(&n); err != nil {
			return err
		}
		e.Const = &n
		return nil
	case key == "not":
		var arg Expr
		if err := val.Decode(&arg); err != nil {
			return err
		}
		e.Op = "not"
		e.Args = []*Expr{&arg}
		return nil
	default:
		if _, ok := binaryOps[key]; !ok {
			return fmt.Errorf("unknown expression operator %q (line %d)", key, node.Line)
		}
		var args []*Expr
		if err := val.Decode(&args); err != nil {
			return err
		}
		if len(args) != 2 {
			return fmt.Errorf("operator %q takes 2 operands, got %d (line %d)", key, len(args), node.Line)
		}
		e.Op = key
		e.Args = args
		return nil
	}
}

// Parse decodes and validates a kernel description.
func Parse(src []byte) (*Kernel, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var k Kernel
	if err := dec.Decode(&k); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty kernel description")
		}
		return nil, fmt.Errorf("decoding kernel: %w", err)
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return &k, nil
}

func (k *Kernel) validate() error {
	if k.Name == "" {
		return fmt.Errorf("kernel has no name")
	}
	if len(k.Loops) == 0 {
		return fmt.Errorf("kernel %q has no loops", k.Name)
	}
	depth := len(k.Loops)

	buffers := make(map[string]struct{}, len(k.Buffers))
	for _, buf := range k.Buffers {
		if buf.Name == "" {
			return fmt.Errorf("kernel %q: buffer has no name", k.Name)
		}
		if _, dup := buffers[buf.Name]; dup {
			return fmt.Errorf("kernel %q: duplicate buffer %q", k.Name, buf.Name)
		}
		if buf.Rank != depth {
			return fmt.Errorf("kernel %q: buffer %q has rank %d but the nest has depth %d",
				k.Name, buf.Name, buf.Rank, depth)
		}
		buffers[buf.Name] = struct{}{}
	}

	for i, loop := range k.Loops {
		if loop.Step == 0 {
			return fmt.Errorf("kernel %q: loop %d has zero step", k.Name, i)
		}
	}

	for i, a := range k.Ops {
		if _, ok := buffers[a.Target]; !ok {
			return fmt.Errorf("kernel %q: op %d targets unknown buffer %q", k.Name, i, a.Target)
		}
		switch a.Update {
		case "", "add", "sub", "mul", "div", "rem", "xor":
		default:
			return fmt.Errorf("kernel %q: op %d has unknown update kind %q", k.Name, i, a.Update)
		}
		if err := k.validateExpr(a.Expr, buffers); err != nil {
			return fmt.Errorf("kernel %q: op %d: %w", k.Name, i, err)
		}
	}
	return nil
}

func (k *Kernel) validateExpr(e *Expr, buffers map[string]struct{}) error {
	switch {
	case e == nil:
		return fmt.Errorf("missing expression")
	case e.Load != "":
		if _, ok := buffers[e.Load]; !ok {
			return fmt.Errorf("load from unknown buffer %q", e.Load)
		}
		return nil
	case e.Const != nil:
		return nil
	case e.Op != "":
		for _, arg := range e.Args {
			if err := k.validateExpr(arg, buffers); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("empty expression node")
	}
}
