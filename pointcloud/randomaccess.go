package pointcloud

import (
	"github.com/seqsense/pointcloud-playground/mat"
)

// Vec3RandomAccessor gives read-only indexed access to points.
// *PointCloud implements it.
type Vec3RandomAccessor interface {
	Vec3At(int) mat.Vec3
	Len() int
}
