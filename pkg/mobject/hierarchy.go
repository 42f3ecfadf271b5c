package mobject

import (
	"fmt"

	"github.com/Faultbox/mobject/pkg/buffer"
)

func indexOf(b *buffer.Buffer[ID], id ID) int {
	return b.Index(func(v ID) bool { return v == id })
}

// removeID drops the first occurrence of id from b, keeping order.
func removeID(b *buffer.Buffer[ID], id ID) {
	if i := indexOf(b, id); i >= 0 {
		b.RemoveAt(i)
	}
}

// AddChild adds the edge parent -> child. Adding an existing edge is a
// no-op. The edge is recorded on both ends or not at all.
// The graph is not checked for cycles; a mobject may be its own child.
func (r *Registry) AddChild(parent, child ID) error {
	p, err := r.lookup(parent)
	if err != nil {
		return fmt.Errorf("add child: parent: %w", err)
	}
	c, err := r.lookup(child)
	if err != nil {
		return fmt.Errorf("add child: child: %w", err)
	}

	inParent := indexOf(&p.children, child) >= 0
	inChild := indexOf(&c.parents, parent) >= 0
	if inParent && inChild {
		return nil
	}

	// Reserve room on both ends before linking either.
	if !inParent {
		if err := p.children.EnsureCapacity(p.children.Len() + 1); err != nil {
			r.allocFailed("add child", parent, err)
			return fmt.Errorf("add child %v to %v: %w", child, parent, err)
		}
	}
	if !inChild {
		if err := c.parents.EnsureCapacity(c.parents.Len() + 1); err != nil {
			r.allocFailed("add child", child, err)
			return fmt.Errorf("add child %v to %v: %w", child, parent, err)
		}
	}

	// Capacity is reserved, so neither push can fail.
	if !inParent {
		_ = p.children.Push(child)
	}
	if !inChild {
		_ = c.parents.Push(parent)
	}
	return nil
}

// RemoveChild removes the edge parent -> child. The remaining children
// of parent and parents of child keep their relative order. Removing a
// missing edge is a no-op.
func (r *Registry) RemoveChild(parent, child ID) error {
	p, err := r.lookup(parent)
	if err != nil {
		return fmt.Errorf("remove child: parent: %w", err)
	}
	c, err := r.lookup(child)
	if err != nil {
		return fmt.Errorf("remove child: child: %w", err)
	}
	removeID(&p.children, child)
	removeID(&c.parents, parent)
	return nil
}

// ClearChildren removes every child edge of parent, first child first.
func (r *Registry) ClearChildren(parent ID) error {
	p, err := r.lookup(parent)
	if err != nil {
		return fmt.Errorf("clear children: %w", err)
	}
	for p.children.Len() > 0 {
		child := p.children.At(0)
		p.children.RemoveAt(0)
		if c := r.get(child); c != nil {
			removeID(&c.parents, parent)
		}
	}
	return nil
}

// detachAll removes every edge incident to id.
func (r *Registry) detachAll(id ID, m *mobject) {
	for _, pid := range m.parents.Slice() {
		if p := r.get(pid); p != nil {
			removeID(&p.children, id)
		}
	}
	m.parents.Clear()

	for _, cid := range m.children.Slice() {
		if c := r.get(cid); c != nil {
			removeID(&c.parents, id)
		}
	}
	m.children.Clear()
}

// ChildCount returns the number of children of id.
func (r *Registry) ChildCount(id ID) (int, error) {
	m, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	return m.children.Len(), nil
}

// ParentCount returns the number of parents of id.
func (r *Registry) ParentCount(id ID) (int, error) {
	m, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	return m.parents.Len(), nil
}

// Children returns a copy of the children of id, in order.
func (r *Registry) Children(id ID) ([]ID, error) {
	m, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]ID(nil), m.children.Slice()...), nil
}

// Parents returns a copy of the parents of id, in order.
func (r *Registry) Parents(id ID) ([]ID, error) {
	m, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]ID(nil), m.parents.Slice()...), nil
}

// HasChild reports whether the edge parent -> child exists.
// Unknown IDs report false.
func (r *Registry) HasChild(parent, child ID) bool {
	p := r.get(parent)
	return p != nil && indexOf(&p.children, child) >= 0
}

// Family returns id followed by every mobject reachable through child
// edges, in depth-first pre-order, each listed once. Mobjects deeper
// than MaxDepth below id are not listed.
func (r *Registry) Family(id ID) ([]ID, error) {
	var family []ID
	err := r.walk(id, "family", true, func(cur ID, _ *mobject) {
		family = append(family, cur)
	})
	if err != nil {
		return nil, err
	}
	return family, nil
}
