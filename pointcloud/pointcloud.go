// Package pointcloud implements an ordered in-memory collection of 3D points
// with bounding box and box filtering queries.
//
// A PointCloud is not safe for concurrent use. At any time it may have
// either one goroutine appending to it, or any number of readers.
package pointcloud

import (
	"github.com/seqsense/pointcloud-playground/mat"
)

// PointCloud is an insertion-ordered sequence of points.
// Its zero value is an empty cloud ready to use.
type PointCloud struct {
	points []mat.Vec3
}

func New() *PointCloud {
	return &PointCloud{}
}

// NewWithPrealloc returns an empty cloud with room for n points.
func NewWithPrealloc(n int) *PointCloud {
	return &PointCloud{
		points: make([]mat.Vec3, 0, n),
	}
}

// Add appends p to the end of the cloud.
func (pc *PointCloud) Add(p mat.Vec3) {
	pc.points = append(pc.points, p)
}

func (pc *PointCloud) Len() int {
	return len(pc.points)
}

func (pc *PointCloud) IsEmpty() bool {
	return len(pc.points) == 0
}

// Vec3At returns i-th point. It panics if i is out of range.
func (pc *PointCloud) Vec3At(i int) mat.Vec3 {
	return pc.points[i]
}
