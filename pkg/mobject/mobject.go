// Package mobject implements the scene-graph core of the animation model.
//
// A Registry owns every mobject. Callers hold IDs, which are non-owning
// handles: a slot index plus a generation, so a handle to a destroyed
// mobject is detected instead of reaching a recycled slot.
//
// Mobjects form a directed graph through child edges. A mobject may have
// several parents and the graph is never checked for cycles. Transforms
// applied to a mobject propagate depth-first into its children up to
// Options.MaxDepth levels below it; anything deeper is skipped silently.
//
// The registry is not safe for concurrent use.
package mobject

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/mobject/pkg/buffer"
	"github.com/Faultbox/mobject/pkg/math"
)

// Errors returned by registry operations.
var (
	// ErrAllocation is returned when a point or edge buffer cannot grow.
	ErrAllocation = buffer.ErrAllocation

	// ErrInvalidArgument is returned for unknown or destroyed IDs and
	// for inconsistent lengths or indices.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Buffer seed capacities.
const (
	pointSeed  = 8
	childSeed  = 4
	parentSeed = 2
)

// DefaultMaxDepth is the default propagation depth cap.
const DefaultMaxDepth = 100

// ID identifies a mobject in a Registry.
type ID struct {
	index uint32
	gen   uint32
}

// Nil is the zero ID. It never refers to a mobject.
var Nil ID

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool { return id == Nil }

// String returns "#index.generation".
func (id ID) String() string {
	if id.IsNil() {
		return "#nil"
	}
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

// PointEntry is a single point with its color.
type PointEntry struct {
	Position math.Vec3
	Color    math.Color
}

// Appearance holds the rendering parameters a mobject carries but that
// transforms never touch.
type Appearance struct {
	FixedInFrame bool       `yaml:"fixed_in_frame"`
	DepthTest    bool       `yaml:"depth_test"`
	Shading      [3]float32 `yaml:"shading"`    // reflectiveness, gloss, shadow
	ClipPlane    [4]float32 `yaml:"clip_plane"` // a, b, c, d
}

type mobject struct {
	points   buffer.Buffer[PointEntry]
	children buffer.Buffer[ID]
	parents  buffer.Buffer[ID]

	color      math.Color
	opacity    float32
	appearance Appearance
}

// pointColor is the color given to points added to m.
func (m *mobject) pointColor() math.Color {
	return m.color.WithAlpha(m.opacity)
}

type slot struct {
	gen uint32
	mob *mobject
}

// Registry owns mobjects and the edges between them.
type Registry struct {
	slots []slot // slots[0] is unused so the zero ID stays invalid
	free  []uint32
	live  int

	opts Options
	log  *zap.Logger
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return NewFromOptions(o)
}

// NewFromOptions returns an empty registry configured by o.
func NewFromOptions(o Options) *Registry {
	if o.MaxDepth < 0 {
		o.MaxDepth = 0
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		slots: make([]slot, 1),
		opts:  o,
		log:   log,
	}
}

// Options returns the registry configuration.
func (r *Registry) Options() Options {
	return r.opts
}

// Len returns the number of live mobjects.
func (r *Registry) Len() int {
	return r.live
}

// Create adds an empty mobject: no points, no edges, opacity 1 and
// the default color.
func (r *Registry) Create() ID {
	m := &mobject{
		points:   buffer.New[PointEntry](pointSeed, r.opts.PointLimit),
		children: buffer.New[ID](childSeed, r.opts.EdgeLimit),
		parents:  buffer.New[ID](parentSeed, r.opts.EdgeLimit),
		color:    math.DefaultColor,
		opacity:  1,
	}

	var id ID
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].mob = m
		id = ID{index: idx, gen: r.slots[idx].gen}
	} else {
		idx := uint32(len(r.slots))
		r.slots = append(r.slots, slot{gen: 1, mob: m})
		id = ID{index: idx, gen: 1}
	}
	r.live++

	r.log.Debug("mobject created", zap.Stringer("id", id))
	return id
}

// Destroy severs every edge to and from id, then releases its points.
// The ID is invalid afterwards.
func (r *Registry) Destroy(id ID) error {
	m, err := r.lookup(id)
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}

	r.detachAll(id, m)
	m.points.Release()
	m.children.Release()
	m.parents.Release()

	s := &r.slots[id.index]
	s.mob = nil
	s.gen++
	r.free = append(r.free, id.index)
	r.live--

	r.log.Debug("mobject destroyed", zap.Stringer("id", id))
	return nil
}

// Valid reports whether id refers to a live mobject.
func (r *Registry) Valid(id ID) bool {
	return r.get(id) != nil
}

// get returns the mobject for id, or nil.
func (r *Registry) get(id ID) *mobject {
	if id.index == 0 || int(id.index) >= len(r.slots) {
		return nil
	}
	s := r.slots[id.index]
	if s.gen != id.gen {
		return nil
	}
	return s.mob
}

func (r *Registry) lookup(id ID) (*mobject, error) {
	m := r.get(id)
	if m == nil {
		return nil, fmt.Errorf("%w: unknown mobject %v", ErrInvalidArgument, id)
	}
	return m, nil
}

// Color returns the mobject's default color. Its alpha equals the opacity.
func (r *Registry) Color(id ID) (math.Color, error) {
	m, err := r.lookup(id)
	if err != nil {
		return math.Color{}, err
	}
	return m.color, nil
}

// Opacity returns the mobject's opacity.
func (r *Registry) Opacity(id ID) (float32, error) {
	m, err := r.lookup(id)
	if err != nil {
		return 0, err
	}
	return m.opacity, nil
}

// Appearance returns the mobject's carried rendering parameters.
func (r *Registry) Appearance(id ID) (Appearance, error) {
	m, err := r.lookup(id)
	if err != nil {
		return Appearance{}, err
	}
	return m.appearance, nil
}

// SetAppearance replaces the mobject's carried rendering parameters.
// It affects only id, never its children.
func (r *Registry) SetAppearance(id ID, a Appearance) error {
	m, err := r.lookup(id)
	if err != nil {
		return err
	}
	m.appearance = a
	return nil
}
