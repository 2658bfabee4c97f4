package ir

import (
	"testing"
)

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic (%s), got none", want)
		}
	}()
	fn()
}

func TestBuilder_ConstantDeduplication(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)

	c1 := b.CreateConstant(42)
	c2 := b.CreateConstant(42)
	if c1 != c2 {
		t.Errorf("expected same handle for identical constants, got %d and %d", c1, c2)
	}
	if fn.NumOps() != 1 {
		t.Errorf("expected 1 op after deduplicated constants, got %d", fn.NumOps())
	}

	c3 := b.CreateConstant(7)
	if c3 == c1 {
		t.Error("different constants should have different handles")
	}
	if fn.NumOps() != 2 {
		t.Errorf("expected 2 ops, got %d", fn.NumOps())
	}
}

func TestBuilder_EmitOrder(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)

	x := b.CreateConstant(1)
	y := b.CreateConstant(2)
	b.CreateBinary(BinaryAdd, x, y)
	b.CreateBinary(BinarySub, x, y)

	if len(fn.Entry.Ops) != 4 {
		t.Fatalf("expected 4 ops in entry block, got %d", len(fn.Entry.Ops))
	}
	wantKinds := []BinaryOp{BinaryAdd, BinarySub}
	for i, h := range fn.Entry.Ops[2:] {
		bin, ok := fn.Op(h).Kind.(OpBinary)
		if !ok {
			t.Fatalf("op %d: expected OpBinary, got %T", i, fn.Op(h).Kind)
		}
		if bin.Op != wantKinds[i] {
			t.Errorf("op %d: expected %s, got %s", i, wantKinds[i], bin.Op)
		}
	}
}

func TestBuilder_CursorSaveRestore(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)

	lo := b.CreateConstant(0)
	hi := b.CreateConstant(8)
	body, _ := b.CreateLoop([]Value{lo}, []Value{hi}, 1)

	saved := b.InsertionPoint()
	if saved.Block() != fn.Entry {
		t.Fatal("cursor should start at the entry block")
	}

	b.SetInsertionPoint(At(body))
	b.CreateBinary(BinaryAdd, lo, hi)
	if len(body.Ops) != 1 {
		t.Errorf("expected 1 op in loop body, got %d", len(body.Ops))
	}

	b.SetInsertionPoint(saved)
	b.CreateBinary(BinarySub, lo, hi)
	if len(fn.Entry.Ops) != 4 {
		t.Errorf("expected 4 ops in entry block, got %d", len(fn.Entry.Ops))
	}
}

func TestBuilder_LoopHandles(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)

	lo := b.CreateConstant(0)
	hi := b.CreateConstant(8)
	body, iv := b.CreateLoop([]Value{lo}, []Value{hi}, 2)

	if body.Arg != iv {
		t.Errorf("induction variable should be the body block argument, got %d and %d", body.Arg, iv)
	}
	forOp, ok := fn.Op(fn.Entry.Ops[2]).Kind.(OpFor)
	if !ok {
		t.Fatalf("expected OpFor, got %T", fn.Op(fn.Entry.Ops[2]).Kind)
	}
	if forOp.Step != 2 {
		t.Errorf("expected step 2, got %d", forOp.Step)
	}
	if forOp.Body != body {
		t.Error("loop op should reference the returned body block")
	}
}

func TestBuilder_LoopContractViolations(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)
	lo := b.CreateConstant(0)
	hi := b.CreateConstant(8)

	mustPanic(t, "zero step", func() { b.CreateLoop([]Value{lo}, []Value{hi}, 0) })
	mustPanic(t, "empty lower bounds", func() { b.CreateLoop(nil, []Value{hi}, 1) })
	mustPanic(t, "empty upper bounds", func() { b.CreateLoop([]Value{lo}, nil, 1) })
}

func TestBuilder_AccessRankChecks(t *testing.T) {
	fn := NewFunction("f")
	buf := fn.AddArgument("buf", 2)
	scalar := fn.AddArgument("s", 0)
	b := NewBuilder(fn)
	i := b.CreateConstant(0)

	mustPanic(t, "index count below rank", func() { b.CreateLoad(buf, []Value{i}) })
	mustPanic(t, "load from scalar", func() { b.CreateLoad(scalar, []Value{i}) })
	mustPanic(t, "store rank mismatch", func() { b.CreateStore(i, buf, []Value{i, i, i}) })

	v := b.CreateLoad(buf, []Value{i, i})
	if v == InvalidValue {
		t.Fatal("load should produce a result")
	}
}

func TestBuilder_StoreYieldsFreshResult(t *testing.T) {
	fn := NewFunction("f")
	buf := fn.AddArgument("buf", 1)
	b := NewBuilder(fn)
	i := b.CreateConstant(0)

	r1 := b.CreateStore(i, buf, []Value{i})
	r2 := b.CreateStore(i, buf, []Value{i})
	if r1 == InvalidValue || r2 == InvalidValue {
		t.Fatal("store should produce a result handle")
	}
	if r1 == r2 {
		t.Error("each store should yield a distinct result handle")
	}
}

func TestBuilder_UnknownHandlePanics(t *testing.T) {
	fn := NewFunction("f")
	b := NewBuilder(fn)
	mustPanic(t, "out-of-range operand", func() { b.CreateBinary(BinaryAdd, Value(99), Value(100)) })
}
