// Package math provides the vector and color value types used by mobjects.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Named directions.
var (
	Origin = Vec3{0, 0, 0}
	Up     = Vec3{0, 1, 0}
	Down   = Vec3{0, -1, 0}
	Left   = Vec3{-1, 0, 0}
	Right  = Vec3{1, 0, 0}
	Out    = Vec3{0, 0, 1}
	In     = Vec3{0, 0, -1}

	XAxis = Right
	YAxis = Up
	ZAxis = Out
)

// DegToRad is the number of radians per degree.
const DegToRad = 3.14159265358979323846264338327950288419716939937510582097494459 / 180

// V3 returns the vector (x, y, z).
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude (Euclidean norm).
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector, or the zero vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Rotate rotates v by angle radians about axis through the origin
// (Rodrigues' formula). The axis is normalized first; a zero axis
// leaves only the cos(angle) term, so the result is v scaled rather
// than rotated.
func (v Vec3) Rotate(angle float32, axis Vec3) Vec3 {
	k := axis.Normalize()
	sin, cos := math32.Sincos(angle)
	return rotate(v, k, sin, cos)
}

// rotate applies Rodrigues' formula with a pre-normalized axis and
// precomputed sin/cos, so callers rotating many points pay for the
// trig once.
func rotate(v, k Vec3, sin, cos float32) Vec3 {
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// Rotator returns a function rotating points by angle about axis.
func Rotator(angle float32, axis Vec3) func(Vec3) Vec3 {
	k := axis.Normalize()
	sin, cos := math32.Sincos(angle)
	return func(v Vec3) Vec3 {
		return rotate(v, k, sin, cos)
	}
}

// ApproxEqual reports whether every component of v is within tol of other.
func (v Vec3) ApproxEqual(other Vec3, tol float32) bool {
	return math32.Abs(v.X-other.X) <= tol &&
		math32.Abs(v.Y-other.Y) <= tol &&
		math32.Abs(v.Z-other.Z) <= tol
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math32.Min(v.X, other.X), math32.Min(v.Y, other.Y), math32.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math32.Max(v.X, other.X), math32.Max(v.Y, other.Y), math32.Max(v.Z, other.Z)}
}
