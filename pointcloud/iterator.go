package pointcloud

import (
	"github.com/seqsense/pointcloud-playground/mat"
)

// Vec3Iterator is a forward iterator over points.
type Vec3Iterator interface {
	Incr()
	IsValid() bool
	Vec3() mat.Vec3
}

type vec3Iterator struct {
	data []mat.Vec3
	pos  int
}

func (i *vec3Iterator) Incr() {
	i.pos++
}

func (i *vec3Iterator) IsValid() bool {
	return i.pos < len(i.data)
}

func (i *vec3Iterator) Vec3() mat.Vec3 {
	return i.data[i.pos]
}

// Vec3Iterator returns an iterator pointing the first point.
// Each call starts a new traversal in insertion order. The iterator shares
// the cloud's storage; adding points to the cloud while an iterator is in
// use is undefined behavior.
func (pc *PointCloud) Vec3Iterator() Vec3Iterator {
	return &vec3Iterator{data: pc.points}
}

// Iterate calls fn for each point in insertion order until fn returns false.
func (pc *PointCloud) Iterate(fn func(i int, p mat.Vec3) bool) {
	for i, p := range pc.points {
		if !fn(i, p) {
			return
		}
	}
}
