package script

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/mobject/pkg/math"
	"github.com/Faultbox/mobject/pkg/mobject"
)

const hierarchyScript = `
name: hierarchy
steps:
  - {op: create, node: parent}
  - {op: create, node: child}
  - {op: add_child, node: parent, child: child}
  - {op: add_point, node: child, point: [1, 0, 0]}
  - {op: shift, node: parent, vector: [1, 0, 0]}
  - {op: scale, node: parent, factor: 2}
  - {op: dump, node: child}
  - {op: remove_child, node: parent, child: child}
`

func run(t *testing.T, src string, opts ...mobject.Option) (*Runner, *mobject.Registry, string, error) {
	t.Helper()
	s, err := Parse([]byte(src))
	require.NoError(t, err)

	reg := mobject.New(opts...)
	var out bytes.Buffer
	r := NewRunner(reg, &out, nil)
	err = r.Run(s)
	return r, reg, out.String(), err
}

func TestRunHierarchyScript(t *testing.T) {
	r, reg, out, err := run(t, hierarchyScript)
	require.NoError(t, err)

	child, ok := r.ID("child")
	require.True(t, ok)
	parent, ok := r.ID("parent")
	require.True(t, ok)

	ps, err := reg.Positions(child)
	require.NoError(t, err)
	assert.Equal(t, []math.Vec3{math.V3(4, 0, 0)}, ps)

	n, _ := reg.ChildCount(parent)
	assert.Zero(t, n)
	n, _ = reg.ParentCount(child)
	assert.Zero(t, n)

	assert.Contains(t, out, "== child")
	assert.Contains(t, out, "[0]: (4.000000, 0.000000, 0.000000)")
}

func TestRunColorAndRotate(t *testing.T) {
	src := `
steps:
  - {op: create, node: a}
  - {op: set_points, node: a, points: [[1, 0, 0], [0, 1, 0]]}
  - {op: set_opacity, node: a, value: 0.3}
  - {op: set_color, node: a, color: red}
  - {op: rotate, node: a, degrees: 90, axis: [0, 0, 1]}
  - {op: resize, node: a, length: 3}
`
	r, reg, _, err := run(t, src)
	require.NoError(t, err)

	a, _ := r.ID("a")
	entries, err := reg.Points(a)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.InDelta(t, 0, entries[0].Position.X, 1e-5)
	assert.InDelta(t, 1, entries[0].Position.Y, 1e-5)
	assert.InDelta(t, -1, entries[1].Position.X, 1e-5)
	assert.Equal(t, math.Origin, entries[2].Position)
	for _, e := range entries {
		assert.Equal(t, math.RGBA(1, 0, 0, 0.3), e.Color)
	}
}

func TestRunHexColor(t *testing.T) {
	src := `
steps:
  - {op: create, node: a}
  - {op: set_color, node: a, color: "#00F"}
`
	r, reg, _, err := run(t, src)
	require.NoError(t, err)
	a, _ := r.ID("a")
	c, err := reg.Color(a)
	require.NoError(t, err)
	assert.Equal(t, math.Blue, c)
}

func TestRunDestroyForgetsLabel(t *testing.T) {
	src := `
steps:
  - {op: create, node: a}
  - {op: create, node: b}
  - {op: add_child, node: a, child: b}
  - {op: destroy, node: b}
  - {op: clear_children, node: a}
  - {op: create, node: b}
`
	r, reg, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	a, _ := r.ID("a")
	n, _ := reg.ChildCount(a)
	assert.Zero(t, n)
}

func TestRunStopsAtFailure(t *testing.T) {
	src := `
steps:
  - {op: create, node: a}
  - {op: add_point, node: a, point: [1, 2, 3]}
  - {op: add_point, node: a, point: [4, 5, 6]}
  - {op: shift, node: a, vector: [1, 0, 0]}
`
	r, reg, _, err := run(t, src, mobject.WithPointLimit(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, mobject.ErrAllocation)
	assert.Contains(t, err.Error(), "step 3 (add_point)")

	a, _ := r.ID("a")
	ps, err := reg.Positions(a)
	require.NoError(t, err)
	assert.Equal(t, []math.Vec3{math.V3(1, 2, 3)}, ps, "step 4 must not have run")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown label", "steps: [{op: shift, node: ghost, vector: [1,0,0]}]", ErrUnknownLabel},
		{"unknown op", "steps: [{op: create, node: a}, {op: explode, node: a}]", ErrUnknownOp},
		{"short vector", "steps: [{op: create, node: a}, {op: shift, node: a, vector: [1]}]", ErrBadStep},
		{"bad color", "steps: [{op: create, node: a}, {op: set_color, node: a, color: mauve}]", math.ErrInvalidHexColor},
		{"duplicate label", "steps: [{op: create, node: a}, {op: create, node: a}]", ErrBadStep},
		{"negative resize", "steps: [{op: create, node: a}, {op: resize, node: a, length: -2}]", mobject.ErrInvalidArgument},
		{"scale without factor", "steps: [{op: create, node: a}, {op: scale, node: a}]", ErrBadStep},
		{"opacity without value", "steps: [{op: create, node: a}, {op: set_opacity, node: a}]", ErrBadStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := run(t, tt.src)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheck(t *testing.T) {
	s, err := Parse([]byte(hierarchyScript))
	require.NoError(t, err)
	assert.NoError(t, s.Check())

	bad := []struct {
		src  string
		want error
	}{
		{"steps: [{op: add_point, node: a, point: [0,0,0]}]", ErrUnknownLabel},
		{"steps: [{op: create, node: a}, {op: add_child, node: a, child: b}]", ErrUnknownLabel},
		{"steps: [{op: create, node: a}, {op: destroy, node: a}, {op: dump, node: a}]", ErrUnknownLabel},
		{"steps: [{op: create, node: a}, {op: teleport, node: a}]", ErrUnknownOp},
		{"steps: [{op: create}]", ErrBadStep},
		{"steps: [{op: create, node: a}, {op: rotate, node: a, angle: 1, axis: [0, 1]}]", ErrBadStep},
		{"steps: [{op: create, node: a}, {op: resize, node: a, length: -1}]", ErrBadStep},
		{"steps: [{op: create, node: a}, {op: scale, node: a}]", ErrBadStep},
		{"steps: [{op: create, node: a}, {op: set_opacity, node: a}]", ErrBadStep},
	}
	for _, tt := range bad {
		s, err := Parse([]byte(tt.src))
		require.NoError(t, err)
		assert.ErrorIs(t, s.Check(), tt.want, tt.src)
	}
}

func TestDumpEach(t *testing.T) {
	s, err := Parse([]byte("steps: [{op: create, node: b}, {op: create, node: a}]"))
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner(mobject.New(), &out, nil)
	r.SetDumpEach(true)
	require.NoError(t, r.Run(s))

	// One dump after step 1, two (sorted) after step 2.
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("== ")))
	assert.Less(t, bytes.LastIndex(out.Bytes(), []byte("== a")), bytes.LastIndex(out.Bytes(), []byte("== b")))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hierarchyScript), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hierarchy", s.Name)
	assert.Len(t, s.Steps, 8)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("steps: {not: a list"))
	assert.Error(t, err)
}

func TestExplicitZeroArguments(t *testing.T) {
	src := `
steps:
  - {op: create, node: a}
  - {op: add_point, node: a, point: [1, 2, 3]}
  - {op: set_opacity, node: a, value: 0}
  - {op: scale, node: a, factor: 0}
`
	s, err := Parse([]byte(src))
	require.NoError(t, err)
	require.NoError(t, s.Check())

	r, reg, _, err := run(t, src)
	require.NoError(t, err)
	a, _ := r.ID("a")

	ps, err := reg.Positions(a)
	require.NoError(t, err)
	assert.Equal(t, []math.Vec3{math.Origin}, ps)
	op, err := reg.Opacity(a)
	require.NoError(t, err)
	assert.Zero(t, op)
}
