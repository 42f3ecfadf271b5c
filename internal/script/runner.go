package script

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/mobject/pkg/math"
	"github.com/Faultbox/mobject/pkg/mobject"
)

// Runner applies scripts to a registry.
type Runner struct {
	reg      *mobject.Registry
	ids      map[string]mobject.ID
	out      io.Writer
	log      *zap.Logger
	dumpEach bool
}

// NewRunner returns a runner writing dumps to out.
func NewRunner(reg *mobject.Registry, out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		reg: reg,
		ids: make(map[string]mobject.ID),
		out: out,
		log: log,
	}
}

// SetDumpEach makes the runner dump every live labelled mobject after
// each step.
func (r *Runner) SetDumpEach(on bool) {
	r.dumpEach = on
}

// ID returns the mobject a label refers to.
func (r *Runner) ID(label string) (mobject.ID, bool) {
	id, ok := r.ids[label]
	return id, ok
}

// Run executes the steps in order and stops at the first failure. Steps
// already applied stay applied.
func (r *Runner) Run(s *Script) error {
	r.log.Info("running script", zap.String("name", s.Name), zap.Int("steps", len(s.Steps)))
	for i, st := range s.Steps {
		r.log.Debug("step", zap.Int("n", i+1), zap.String("op", st.Op), zap.String("node", st.Node))
		if err := r.step(st); err != nil {
			r.log.Error("step failed", zap.Int("n", i+1), zap.String("op", st.Op), zap.Error(err))
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		if r.dumpEach {
			if err := r.dumpAll(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) node(label string) (mobject.ID, error) {
	id, ok := r.ids[label]
	if !ok {
		return mobject.Nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return id, nil
}

func (r *Runner) step(st Step) error {
	if st.Op == OpCreate {
		if _, ok := r.ids[st.Node]; ok {
			return fmt.Errorf("%w: label %q already in use", ErrBadStep, st.Node)
		}
		r.ids[st.Node] = r.reg.Create()
		return nil
	}

	id, err := r.node(st.Node)
	if err != nil {
		return err
	}

	switch st.Op {
	case OpDestroy:
		if err := r.reg.Destroy(id); err != nil {
			return err
		}
		delete(r.ids, st.Node)
		return nil
	case OpAddChild, OpRemoveChild:
		child, err := r.node(st.Child)
		if err != nil {
			return err
		}
		if st.Op == OpAddChild {
			return r.reg.AddChild(id, child)
		}
		return r.reg.RemoveChild(id, child)
	case OpClearChildren:
		return r.reg.ClearChildren(id)
	case OpSetPoints:
		pts := make([]math.Vec3, len(st.Points))
		for i, p := range st.Points {
			if pts[i], err = vec(p); err != nil {
				return err
			}
		}
		return r.reg.SetPoints(id, pts)
	case OpAddPoint:
		p, err := vec(st.Point)
		if err != nil {
			return err
		}
		return r.reg.AddPoint(id, p)
	case OpResize:
		return r.reg.ResizePoints(id, st.Length)
	case OpShift:
		v, err := vec(st.Vector)
		if err != nil {
			return err
		}
		return r.reg.Shift(id, v)
	case OpScale:
		f, err := scalar(st.Factor, "factor")
		if err != nil {
			return err
		}
		return r.reg.Scale(id, f)
	case OpRotate:
		axis, err := vec(st.Axis)
		if err != nil {
			return err
		}
		return r.reg.Rotate(id, st.angle(), axis)
	case OpSetColor:
		c, err := ParseColor(st.Color)
		if err != nil {
			return err
		}
		return r.reg.SetColor(id, c)
	case OpSetOpacity:
		v, err := scalar(st.Value, "value")
		if err != nil {
			return err
		}
		return r.reg.SetOpacity(id, v)
	case OpDump:
		return r.dump(st.Node, id)
	default:
		return ErrUnknownOp
	}
}

func (r *Runner) dump(label string, id mobject.ID) error {
	text, err := r.reg.DebugDump(id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "== %s\n%s", label, text)
	return err
}

func (r *Runner) dumpAll() error {
	labels := make([]string, 0, len(r.ids))
	for label := range r.ids {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		if err := r.dump(label, r.ids[label]); err != nil {
			return err
		}
	}
	return nil
}
