package pointcloud

import (
	"github.com/seqsense/pointcloud-playground/mat"
)

// Box is a closed axis-aligned box.
type Box struct {
	Min, Max mat.Vec3
}

// IsValid returns false if Min exceeds Max on any axis.
func (b Box) IsValid() bool {
	return b.Min[0] <= b.Max[0] &&
		b.Min[1] <= b.Max[1] &&
		b.Min[2] <= b.Max[2]
}

// IsInside returns true if v is inside the box.
// Points on the faces are inside. NaN is never inside.
func (b Box) IsInside(v mat.Vec3) bool {
	return b.Min[0] <= v[0] && v[0] <= b.Max[0] &&
		b.Min[1] <= v[1] && v[1] <= b.Max[1] &&
		b.Min[2] <= v[2] && v[2] <= b.Max[2]
}

// Center returns the middle point of the box.
func (b Box) Center() mat.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box.
func (b Box) Size() mat.Vec3 {
	return b.Max.Sub(b.Min)
}

// Intersection returns the overlapping region of a and b.
// The result is invalid if they don't overlap.
func Intersection(a, b Box) Box {
	return Box{
		Min: a.Min.Max(b.Min),
		Max: a.Max.Min(b.Max),
	}
}

// SubBox returns a cloud containing only the points within the closed box
// [min, max], keeping their relative order.
//
// SubBox consumes pc: the storage is handed over to the returned cloud and
// pc is left empty. pc must not be used after the call.
// If min exceeds max on any axis, the result is empty.
func (pc *PointCloud) SubBox(min, max mat.Vec3) *PointCloud {
	b := Box{Min: min, Max: max}
	out := pc.points[:0]
	for _, p := range pc.points {
		if b.IsInside(p) {
			out = append(out, p)
		}
	}
	pc.points = nil
	return &PointCloud{points: out}
}
