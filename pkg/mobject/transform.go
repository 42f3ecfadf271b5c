package mobject

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mobject/pkg/math"
)

type frame struct {
	id    ID
	m     *mobject
	depth int
}

// walk visits root and its descendants depth-first, children in order,
// down to MaxDepth levels below root. With once, every mobject within
// MaxDepth of root along some path is visited exactly once. Without once,
// a mobject reachable along several paths is visited once per path, and
// a cycle is followed until the depth cap stops it.
func (r *Registry) walk(root ID, op string, once bool, visit func(ID, *mobject)) error {
	m, err := r.lookup(root)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// seen holds the shallowest depth each mobject was reached at. A
	// mobject is visited on first arrival only, but reaching it again
	// closer to root expands its children again so the cap is measured
	// along the shortest path.
	var seen map[ID]int
	if once {
		seen = make(map[ID]int)
	}

	skipped := 0
	stack := []frame{{id: root, m: m}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		first := true
		if seen != nil {
			d, ok := seen[f.id]
			if ok && f.depth >= d {
				continue
			}
			seen[f.id] = f.depth
			first = !ok
		}
		if first {
			visit(f.id, f.m)
		}

		children := f.m.children.Slice()
		if f.depth >= r.opts.MaxDepth {
			skipped += len(children)
			continue
		}
		// Push in reverse so the first child is visited first.
		for i := len(children) - 1; i >= 0; i-- {
			if c := r.get(children[i]); c != nil {
				stack = append(stack, frame{id: children[i], m: c, depth: f.depth + 1})
			}
		}
	}

	if skipped > 0 {
		r.log.Debug("propagation stopped at depth cap",
			zap.String("op", op),
			zap.Stringer("root", root),
			zap.Int("max_depth", r.opts.MaxDepth),
			zap.Int("skipped", skipped),
		)
	}
	return nil
}

// propagate applies fn to root and its descendants.
func (r *Registry) propagate(root ID, op string, fn func(*mobject)) error {
	return r.walk(root, op, r.opts.VisitGuard, func(_ ID, m *mobject) {
		fn(m)
	})
}

// Shift moves every point of id and its descendants by v.
func (r *Registry) Shift(id ID, v math.Vec3) error {
	return r.propagate(id, "shift", func(m *mobject) {
		entries := m.points.Slice()
		for i := range entries {
			entries[i].Position = entries[i].Position.Add(v)
		}
	})
}

// Scale multiplies every point of id and its descendants by factor,
// about the world origin. To scale about another point, shift it to the
// origin first and back afterwards.
func (r *Registry) Scale(id ID, factor float32) error {
	return r.propagate(id, "scale", func(m *mobject) {
		entries := m.points.Slice()
		for i := range entries {
			entries[i].Position = entries[i].Position.Scale(factor)
		}
	})
}

// Rotate rotates every point of id and its descendants by angle radians
// about axis through the world origin. A zero axis is not an error: the
// points are scaled by cos(angle) instead.
func (r *Registry) Rotate(id ID, angle float32, axis math.Vec3) error {
	rot := math.Rotator(angle, axis)
	return r.propagate(id, "rotate", func(m *mobject) {
		entries := m.points.Slice()
		for i := range entries {
			entries[i].Position = rot(entries[i].Position)
		}
	})
}

// SetColor sets the red, green and blue channels of id and its
// descendants, on the mobject color and on every point. Alpha is owned
// by SetOpacity and is left as is.
func (r *Registry) SetColor(id ID, c math.Color) error {
	return r.propagate(id, "set color", func(m *mobject) {
		m.color = m.color.WithRGB(c)
		entries := m.points.Slice()
		for i := range entries {
			entries[i].Color = entries[i].Color.WithRGB(c)
		}
	})
}

// SetOpacity clamps opacity to [0, 1] and sets it on id and its
// descendants, writing only alpha channels.
func (r *Registry) SetOpacity(id ID, opacity float32) error {
	opacity = math.Clamp01(opacity)
	return r.propagate(id, "set opacity", func(m *mobject) {
		m.opacity = opacity
		m.color.A = opacity
		entries := m.points.Slice()
		for i := range entries {
			entries[i].Color.A = opacity
		}
	})
}
