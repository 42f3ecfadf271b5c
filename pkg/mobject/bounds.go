package mobject

import "github.com/Faultbox/mobject/pkg/math"

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max math.Vec3
}

// Size returns the box extents along each axis.
func (b Box3) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box3) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// BoundingBox returns the box enclosing the points of id and its family.
// A family without points yields the zero box.
func (r *Registry) BoundingBox(id ID) (Box3, error) {
	var box Box3
	found := false
	err := r.walk(id, "bounding box", true, func(_ ID, m *mobject) {
		for _, e := range m.points.Slice() {
			if !found {
				box = Box3{Min: e.Position, Max: e.Position}
				found = true
				continue
			}
			box.Min = box.Min.Min(e.Position)
			box.Max = box.Max.Max(e.Position)
		}
	})
	if err != nil {
		return Box3{}, err
	}
	return box, nil
}

// Center returns the center of the bounding box of id.
func (r *Registry) Center(id ID) (math.Vec3, error) {
	box, err := r.BoundingBox(id)
	if err != nil {
		return math.Vec3{}, err
	}
	return box.Center(), nil
}
