package mobject

import (
	"fmt"
	"strings"
)

// DebugDump returns a human-readable listing of the points and child
// count of id. The format is for diagnostics and may change.
func (r *Registry) DebugDump(id ID) (string, error) {
	m, err := r.lookup(id)
	if err != nil {
		return "", fmt.Errorf("debug dump: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Mobject %v:\n", id)
	fmt.Fprintf(&sb, "  Points: %d\n", m.points.Len())
	for i, e := range m.points.Slice() {
		p := e.Position
		fmt.Fprintf(&sb, "    [%d]: (%f, %f, %f)\n", i, p.X, p.Y, p.Z)
	}
	fmt.Fprintf(&sb, "  Submobjects: %d\n", m.children.Len())
	fmt.Fprintf(&sb, "  Parents: %d\n", m.parents.Len())
	fmt.Fprintf(&sb, "  Color: %s opacity %.3f\n", m.color.Hex(), m.opacity)
	return sb.String(), nil
}
