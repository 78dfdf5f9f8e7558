package main

import (
	"errors"
	"fmt"
	"math"

	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc/filter/voxelgrid"

	"github.com/seqsense/pointcloud-playground/mat"
	"github.com/seqsense/pointcloud-playground/pointcloud"
)

var errInvalidLeafSize = errors.New("leaf size must be positive")

// editor owns the point cloud being worked on.
// Crop and Downsample replace the owned cloud. Operations modifying the
// cloud can be reverted by Undo.
type editor struct {
	pc      *pointcloud.PointCloud
	history *history
}

func newEditor() *editor {
	return &editor{
		pc:      pointcloud.New(),
		history: newHistory(defaultMaxHistory),
	}
}

func (e *editor) Set(pc *pointcloud.PointCloud) {
	e.history.push(e.pc)
	e.pc = pc
}

func (e *editor) PointCloud() *pointcloud.PointCloud {
	return e.pc
}

func (e *editor) Add(p mat.Vec3) {
	e.history.push(e.pc)
	e.pc.Add(p)
}

func (e *editor) Bounds() (mat.Vec3, mat.Vec3, bool) {
	min, max := e.pc.Boundaries()
	return min, max, !e.pc.IsEmpty()
}

func (e *editor) Sum() mat.Vec3 {
	var sum mat.Vec3
	for it := e.pc.Vec3Iterator(); it.IsValid(); it.Incr() {
		sum = sum.Add(it.Vec3())
	}
	return sum
}

// Crop keeps only the points inside the box and returns the number of
// removed points.
func (e *editor) Crop(min, max mat.Vec3) int {
	n := e.pc.Len()
	e.history.push(e.pc)
	e.pc = e.pc.SubBox(min, max)
	return n - e.pc.Len()
}

// Downsample replaces the cloud by the centroids of the points in each
// occupied voxel of the given size.
func (e *editor) Downsample(leafSize float32) error {
	if !(leafSize > 0) || math.IsInf(float64(leafSize), 1) {
		return errInvalidLeafSize
	}
	if e.pc.IsEmpty() {
		return nil
	}
	pp, err := pointcloud.ToPCD(e.pc)
	if err != nil {
		return err
	}
	vg := voxelgrid.New(pcmat.Vec3{leafSize, leafSize, leafSize})
	filtered, err := vg.Filter(pp)
	if err != nil {
		return err
	}
	pc, err := pointcloud.FromPCD(filtered)
	if err != nil {
		return err
	}
	e.history.push(e.pc)
	e.pc = pc
	return nil
}

// Undo reverts the last modification.
func (e *editor) Undo() bool {
	pc, ok := e.history.pop()
	if !ok {
		return false
	}
	e.pc = pc
	return true
}

func formatVec3(v mat.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
