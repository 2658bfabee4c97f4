package weave

import (
	"fmt"

	"github.com/gogpu/weave/ir"
)

// loopLevel describes one level of a loop nest: its bound lists, step,
// and the slot that captures the induction variable once the level is
// emitted.
type loopLevel struct {
	iv   *ir.Value
	lbs  []ir.Value
	ubs  []ir.Value
	step int64
}

// emit creates the level's loop operation at the builder's cursor,
// writes the induction variable through the capture slot, and returns
// the insertion point inside the body.
func (l *loopLevel) emit(b *ir.Builder) ir.InsertPoint {
	body, iv := b.CreateLoop(l.lbs, l.ubs, l.step)
	if l.iv != nil {
		*l.iv = iv
	}
	return ir.At(body)
}

// LoopNest builds a sequence of nested loop operations and runs a body
// callback exactly once at the innermost scope.
//
// A LoopNest is single-shot: Build may be called at most once per
// instance, and the instance must stay on the goroutine that created
// its builder.
type LoopNest struct {
	b      *ir.Builder
	levels []loopLevel
	built  bool
}

// NewLoop returns a single-level nest. Multiple lower bounds combine
// by max and multiple upper bounds by min, so the effective range is
// [max(lbs), min(ubs)). The induction variable is written through iv
// when Build emits the loop; iv may be nil if the body does not need
// it.
//
// Zero step panics.
func NewLoop(b *ir.Builder, iv *ir.Value, lbs, ubs []ir.Value, step int64) *LoopNest {
	if step == 0 {
		panic("weave: loop step must be nonzero")
	}
	return &LoopNest{
		b:      b,
		levels: []loopLevel{{iv: iv, lbs: lbs, ubs: ubs, step: step}},
	}
}

// NewLoopNest returns a nest with one level per entry of the parallel
// lists, outermost first. Each level has a single lower and upper
// bound; the induction variable of level i is written through ivs[i]
// when Build emits that level, so outer induction variables are
// usable while emitting inner bounds only if the nest is built level
// by level with NewLoop.
//
// Mismatched list lengths and zero steps panic.
func NewLoopNest(b *ir.Builder, ivs []*ir.Value, lbs, ubs []ir.Value, steps []int64) *LoopNest {
	if len(ivs) != len(lbs) || len(lbs) != len(ubs) || len(ubs) != len(steps) {
		panic(fmt.Sprintf("weave: loop nest list lengths differ: %d ivs, %d lower bounds, %d upper bounds, %d steps",
			len(ivs), len(lbs), len(ubs), len(steps)))
	}
	levels := make([]loopLevel, len(ivs))
	for i := range ivs {
		if steps[i] == 0 {
			panic(fmt.Sprintf("weave: loop nest step %d must be nonzero", i))
		}
		levels[i] = loopLevel{
			iv:   ivs[i],
			lbs:  []ir.Value{lbs[i]},
			ubs:  []ir.Value{ubs[i]},
			step: steps[i],
		}
	}
	return &LoopNest{b: b, levels: levels}
}

// Build emits one loop operation per level, outer to inner, then runs
// body once with the cursor inside the innermost block. A nil body
// leaves the loops empty.
//
// The builder's cursor is restored to its pre-Build position on every
// exit path, including a panicking body.
func (n *LoopNest) Build(body func()) {
	if n.built {
		panic("weave: loop nest already built")
	}
	n.built = true

	saved := n.b.InsertionPoint()
	defer n.b.SetInsertionPoint(saved)

	for i := range n.levels {
		n.b.SetInsertionPoint(n.levels[i].emit(n.b))
	}
	if body != nil {
		body()
	}
}
