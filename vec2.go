package geom

import (
	"fmt"
	"math"
)

// Vector2 is a displacement in the plane. It is not normalized.
type Vector2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vector2 {
	return Vector2{
		X: x,
		Y: y,
	}
}

func (v Vector2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Hypot returns the magnitude of the vector.
func (v Vector2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vector2.Hypot].
func (v Vector2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x). The result for the zero vector is
// 0, which callers shouldn't rely on.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

func (v Vector2) Mul(f float64) Vector2 {
	return Vector2{
		X: v.X * f,
		Y: v.Y * f,
	}
}
