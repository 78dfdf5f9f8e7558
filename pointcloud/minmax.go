package pointcloud

import (
	"github.com/seqsense/pointcloud-playground/mat"
)

// Boundaries returns the axis-aligned bounding box of the cloud.
// Each component of min and max is reduced independently in one pass.
//
// An empty cloud returns zero vectors for both min and max.
// Since a cloud with a single point at the origin gives the same result,
// use IsEmpty to distinguish them.
func (pc *PointCloud) Boundaries() (min, max mat.Vec3) {
	if pc.IsEmpty() {
		return mat.Vec3{}, mat.Vec3{}
	}
	min, max = pc.points[0], pc.points[0]
	for _, v := range pc.points[1:] {
		for i := range v {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}

// Bounds is same as Boundaries but returns the result as a Box.
func (pc *PointCloud) Bounds() Box {
	min, max := pc.Boundaries()
	return Box{Min: min, Max: max}
}
