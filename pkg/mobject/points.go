package mobject

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mobject/pkg/math"
)

// SetPoints replaces all points of id. Every point takes the mobject's
// color with alpha equal to its opacity. An empty slice clears the points.
func (r *Registry) SetPoints(id ID, points []math.Vec3) error {
	m, err := r.lookup(id)
	if err != nil {
		return fmt.Errorf("set points: %w", err)
	}
	if err := m.points.SetLen(len(points)); err != nil {
		r.allocFailed("set points", id, err)
		return fmt.Errorf("set points on %v: %w", id, err)
	}

	c := m.pointColor()
	entries := m.points.Slice()
	for i, p := range points {
		entries[i] = PointEntry{Position: p, Color: c}
	}
	return nil
}

// AddPoint appends a point with the mobject's color and opacity.
func (r *Registry) AddPoint(id ID, p math.Vec3) error {
	m, err := r.lookup(id)
	if err != nil {
		return fmt.Errorf("add point: %w", err)
	}
	if err := m.points.Push(PointEntry{Position: p, Color: m.pointColor()}); err != nil {
		r.allocFailed("add point", id, err)
		return fmt.Errorf("add point to %v: %w", id, err)
	}
	return nil
}

// ResizePoints changes the number of points. New points sit at the
// origin with the mobject's color and opacity. Shrinking only drops
// points from the end.
func (r *Registry) ResizePoints(id ID, n int) error {
	m, err := r.lookup(id)
	if err != nil {
		return fmt.Errorf("resize points: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative point count %d", ErrInvalidArgument, n)
	}

	old := m.points.Len()
	if err := m.points.SetLen(n); err != nil {
		r.allocFailed("resize points", id, err)
		return fmt.Errorf("resize points of %v: %w", id, err)
	}

	c := m.pointColor()
	entries := m.points.Slice()
	for i := old; i < n; i++ {
		entries[i] = PointEntry{Position: math.Origin, Color: c}
	}
	return nil
}

// PointCount returns the number of points of id.
func (r *Registry) PointCount(id ID) (int, error) {
	m, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	return m.points.Len(), nil
}

// Point returns the i-th point of id.
func (r *Registry) Point(id ID, i int) (PointEntry, error) {
	m, err := r.lookup(id)
	if err != nil {
		return PointEntry{}, err
	}
	if i < 0 || i >= m.points.Len() {
		return PointEntry{}, fmt.Errorf("%w: point index %d out of range [0,%d)", ErrInvalidArgument, i, m.points.Len())
	}
	return m.points.At(i), nil
}

// Points returns a copy of the points of id, in order.
func (r *Registry) Points(id ID) ([]PointEntry, error) {
	m, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]PointEntry(nil), m.points.Slice()...), nil
}

// Positions returns a copy of the point positions of id, in order.
func (r *Registry) Positions(id ID) ([]math.Vec3, error) {
	m, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]math.Vec3, m.points.Len())
	for i, e := range m.points.Slice() {
		out[i] = e.Position
	}
	return out, nil
}

func (r *Registry) allocFailed(op string, id ID, err error) {
	r.log.Warn("buffer growth failed",
		zap.String("op", op),
		zap.Stringer("id", id),
		zap.Error(err),
	)
}
