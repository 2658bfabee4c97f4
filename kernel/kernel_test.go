package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/weave/kernel"
)

const saxpySrc = `
name: saxpy
buffers:
  - {name: x, rank: 1}
  - {name: y, rank: 1}
loops:
  - {lower: 0, upper: 1024, step: 1}
ops:
  - target: y
    update: add
    expr: {mul: [{load: x}, {const: 2}]}
`

func TestParse_Valid(t *testing.T) {
	k, err := kernel.Parse([]byte(saxpySrc))
	require.NoError(t, err)

	assert.Equal(t, "saxpy", k.Name)
	require.Len(t, k.Buffers, 2)
	assert.Equal(t, "x", k.Buffers[0].Name)
	assert.Equal(t, 1, k.Buffers[0].Rank)
	require.Len(t, k.Loops, 1)
	assert.Equal(t, int64(1024), k.Loops[0].Upper)
	require.Len(t, k.Ops, 1)
	assert.Equal(t, "y", k.Ops[0].Target)
	assert.Equal(t, "add", k.Ops[0].Update)

	expr := k.Ops[0].Expr
	require.NotNil(t, expr)
	assert.Equal(t, "mul", expr.Op)
	require.Len(t, expr.Args, 2)
	assert.Equal(t, "x", expr.Args[0].Load)
	require.NotNil(t, expr.Args[1].Const)
	assert.Equal(t, int64(2), *expr.Args[1].Const)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "empty document",
			src:     "",
			wantErr: "empty kernel description",
		},
		{
			name: "missing name",
			src: `
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
`,
			wantErr: "no name",
		},
		{
			name: "no loops",
			src: `
name: k
buffers: [{name: x, rank: 1}]
`,
			wantErr: "no loops",
		},
		{
			name: "rank does not match nest depth",
			src: `
name: k
buffers: [{name: x, rank: 2}]
loops: [{lower: 0, upper: 4, step: 1}]
`,
			wantErr: "rank 2 but the nest has depth 1",
		},
		{
			name: "zero step",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 0}]
`,
			wantErr: "zero step",
		},
		{
			name: "duplicate buffer",
			src: `
name: k
buffers: [{name: x, rank: 1}, {name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
`,
			wantErr: "duplicate buffer",
		},
		{
			name: "unknown target",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
ops:
  - {target: z, expr: {const: 1}}
`,
			wantErr: `unknown buffer "z"`,
		},
		{
			name: "unknown update kind",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
ops:
  - {target: x, update: shift, expr: {const: 1}}
`,
			wantErr: "unknown update kind",
		},
		{
			name: "load from unknown buffer",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
ops:
  - {target: x, expr: {load: w}}
`,
			wantErr: `unknown buffer "w"`,
		},
		{
			name: "unknown operator",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
ops:
  - {target: x, expr: {shl: [{const: 1}, {const: 2}]}}
`,
			wantErr: "unknown expression operator",
		},
		{
			name: "wrong operand count",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
ops:
  - {target: x, expr: {add: [{const: 1}]}}
`,
			wantErr: "takes 2 operands",
		},
		{
			name: "missing expression",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
ops:
  - {target: x}
`,
			wantErr: "missing expression",
		},
		{
			name: "unknown field",
			src: `
name: k
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 4, step: 1}]
threads: 8
`,
			wantErr: "field threads not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.Parse([]byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCompile_Saxpy(t *testing.T) {
	got, err := kernel.Compile([]byte(saxpySrc))
	require.NoError(t, err)

	want := `func @saxpy(%x: mem<1>, %y: mem<1>) {
  %0 = const 0
  %1 = const 1024
  for %i0 = %0 to %1 step 1 {
    %2 = load %x[%i0]
    %3 = const 2
    %4 = mul %2, %3
    %5 = load %y[%i0]
    %6 = add %5, %4
    %7 = store %6, %y[%i0]
  }
}
`
	assert.Equal(t, want, got)
}

func TestLower_PlainStore(t *testing.T) {
	src := `
name: fill
buffers: [{name: out, rank: 1}]
loops: [{lower: 0, upper: 8, step: 1}]
ops:
  - {target: out, expr: {const: 7}}
`
	got, err := kernel.Compile([]byte(src))
	require.NoError(t, err)

	want := `func @fill(%out: mem<1>) {
  %0 = const 0
  %1 = const 8
  for %i0 = %0 to %1 step 1 {
    %2 = const 7
    %3 = store %2, %out[%i0]
  }
}
`
	assert.Equal(t, want, got)
}

func TestLower_NotOperator(t *testing.T) {
	src := `
name: invert
buffers: [{name: x, rank: 1}]
loops: [{lower: 0, upper: 8, step: 1}]
ops:
  - {target: x, expr: {not: {load: x}}}
`
	got, err := kernel.Compile([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, got, "= not %")
}

func TestLower_RejectsInvalidKernel(t *testing.T) {
	_, err := kernel.Lower(&kernel.Kernel{Name: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loops")
}
