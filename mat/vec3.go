// Package mat provides the 3-component vector used to store points.
package mat

import (
	"math"
)

// Vec3 is a point or a direction in 3D space.
// Index 0, 1 and 2 are x, y and z respectively.
// Vec3 is a value type; arithmetic returns a new value and never modifies
// its operands. Two vectors are equal when all components are exactly equal.
type Vec3 [3]float32

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float32 {
	return v[0]
}

func (v Vec3) Y() float32 {
	return v[1]
}

func (v Vec3) Z() float32 {
	return v[2]
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) NormSq() float32 {
	return v.Dot(v)
}

func (v Vec3) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

// Min returns componentwise minimum of v and a.
func (v Vec3) Min(a Vec3) Vec3 {
	out := v
	for i := range out {
		if a[i] < out[i] {
			out[i] = a[i]
		}
	}
	return out
}

// Max returns componentwise maximum of v and a.
func (v Vec3) Max(a Vec3) Vec3 {
	out := v
	for i := range out {
		if a[i] > out[i] {
			out[i] = a[i]
		}
	}
	return out
}

// Equal reports exact equality. No tolerance is applied.
func (v Vec3) Equal(a Vec3) bool {
	return v == a
}
