// Package script runs YAML operation scripts against a mobject registry.
//
// A script names mobjects by labels local to the script and lists the
// operations to apply, in order:
//
//	steps:
//	  - {op: create, node: square}
//	  - {op: set_points, node: square, points: [[0,0,0], [1,0,0], [1,1,0]]}
//	  - {op: shift, node: square, vector: [2, 0, 0]}
//	  - {op: dump, node: square}
//
// Scripts drive the API for diagnostics; nothing is written back.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/mobject/pkg/math"
)

// Script errors.
var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrUnknownLabel = errors.New("unknown node label")
	ErrBadStep      = errors.New("malformed step")
)

// Ops understood by the runner.
const (
	OpCreate        = "create"
	OpDestroy       = "destroy"
	OpAddChild      = "add_child"
	OpRemoveChild   = "remove_child"
	OpClearChildren = "clear_children"
	OpSetPoints     = "set_points"
	OpAddPoint      = "add_point"
	OpResize        = "resize"
	OpShift         = "shift"
	OpScale         = "scale"
	OpRotate        = "rotate"
	OpSetColor      = "set_color"
	OpSetOpacity    = "set_opacity"
	OpDump          = "dump"
)

// Script is a parsed operation script.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single operation. Which fields apply depends on Op.
type Step struct {
	Op      string      `yaml:"op"`
	Node    string      `yaml:"node"`
	Child   string      `yaml:"child,omitempty"`
	Point   []float32   `yaml:"point,omitempty"`
	Points  [][]float32 `yaml:"points,omitempty"`
	Vector  []float32   `yaml:"vector,omitempty"`
	Axis    []float32   `yaml:"axis,omitempty"`
	Factor  *float32    `yaml:"factor,omitempty"`
	Angle   float32     `yaml:"angle,omitempty"`   // radians
	Degrees float32     `yaml:"degrees,omitempty"` // alternative to angle
	Color   string      `yaml:"color,omitempty"`   // "#RRGGBB", "#RGB" or a color name
	Value   *float32    `yaml:"value,omitempty"`
	Length  int         `yaml:"length,omitempty"`
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	return &s, nil
}

// Load reads and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Check validates every step without running anything: ops must be
// known, their arguments well formed, and labels created before use.
func (s *Script) Check() error {
	labels := make(map[string]bool)
	for i, st := range s.Steps {
		if err := st.check(labels); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

func (st Step) check(labels map[string]bool) error {
	if st.Node == "" {
		return fmt.Errorf("%w: missing node", ErrBadStep)
	}
	if st.Op == OpCreate {
		if labels[st.Node] {
			return fmt.Errorf("%w: label %q already in use", ErrBadStep, st.Node)
		}
		labels[st.Node] = true
		return nil
	}
	if !labels[st.Node] {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, st.Node)
	}

	switch st.Op {
	case OpDestroy:
		delete(labels, st.Node)
	case OpAddChild, OpRemoveChild:
		if !labels[st.Child] {
			return fmt.Errorf("%w: child %q", ErrUnknownLabel, st.Child)
		}
	case OpSetPoints:
		for _, p := range st.Points {
			if _, err := vec(p); err != nil {
				return err
			}
		}
	case OpAddPoint:
		if _, err := vec(st.Point); err != nil {
			return err
		}
	case OpShift:
		if _, err := vec(st.Vector); err != nil {
			return err
		}
	case OpRotate:
		if _, err := vec(st.Axis); err != nil {
			return err
		}
	case OpSetColor:
		if _, err := ParseColor(st.Color); err != nil {
			return err
		}
	case OpResize:
		if st.Length < 0 {
			return fmt.Errorf("%w: negative length %d", ErrBadStep, st.Length)
		}
	case OpScale:
		if _, err := scalar(st.Factor, "factor"); err != nil {
			return err
		}
	case OpSetOpacity:
		if _, err := scalar(st.Value, "value"); err != nil {
			return err
		}
	case OpClearChildren, OpDump:
	default:
		return ErrUnknownOp
	}
	return nil
}

func vec(v []float32) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: vector needs 3 components, got %d", ErrBadStep, len(v))
	}
	return math.V3(v[0], v[1], v[2]), nil
}

// scalar returns a required numeric argument. Zero is a valid value.
func scalar(v *float32, name string) (float32, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing %s", ErrBadStep, name)
	}
	return *v, nil
}

var namedColors = map[string]math.Color{
	"white":  math.White,
	"black":  math.Black,
	"red":    math.Red,
	"green":  math.Green,
	"blue":   math.Blue,
	"yellow": math.Yellow,
}

// ParseColor accepts a hex color or one of the named colors.
func ParseColor(s string) (math.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return math.ParseHex(s)
}

// angle returns the rotation angle in radians.
func (st Step) angle() float32 {
	if st.Degrees != 0 {
		return st.Degrees * math.DegToRad
	}
	return st.Angle
}
