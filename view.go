package main

import (
	"math"

	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/pointcloud-playground/mat"
	"github.com/seqsense/pointcloud-playground/pointcloud"
)

const (
	defaultDistance = 10.0
	defaultPitch    = math.Pi / 6
	minDistance     = 0.1
	maxDistance     = 1000.0
	yDeadband       = 20
)

// view is an orbit camera in the viewer frame.
// The viewer frame is y-up: a point (x, y, z) is drawn at (y, z, x).
type view struct {
	fov        float64
	yaw, pitch float64
	distance   float64
	center     mat.Vec3

	x0, y0       int
	button       int
	dragging     bool
	yaw0, pitch0 float64
	center0      mat.Vec3
}

func newView() *view {
	return &view{
		fov:      math.Pi / 3,
		distance: defaultDistance,
		pitch:    defaultPitch,
	}
}

func toViewFrame(p mat.Vec3) mat.Vec3 {
	return mat.Vec3{p[1], p[2], p[0]}
}

// vertexBuffer returns the point coordinates in the viewer frame.
func vertexBuffer(ra pointcloud.Vec3RandomAccessor) []float32 {
	n := ra.Len()
	buf := make([]float32, 0, n*3)
	for i := 0; i < n; i++ {
		p := toViewFrame(ra.Vec3At(i))
		buf = append(buf, p[0], p[1], p[2])
	}
	return buf
}

// fit moves the camera to look at the center of the box from the distance
// where the whole box is in the field of view.
func (v *view) fit(b pointcloud.Box) {
	if !b.IsValid() {
		v.center = mat.Vec3{}
		v.distance = defaultDistance
		return
	}
	v.center = toViewFrame(b.Center())
	r := float64(b.Size().Norm()) / 2
	d := r / math.Tan(v.fov/2)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		d = defaultDistance
	}
	v.distance = clamp(d+r, minDistance, maxDistance)
	v.pitch = defaultPitch
	v.yaw = 0
}

func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// wheel zooms by 10% per normalized wheel step.
func (v *view) wheel(delta float64) {
	v.distance = clamp(v.distance+delta*(v.distance*0.1), minDistance, maxDistance)
}

func (v *view) dragStart(x, y, button int) {
	v.x0, v.y0 = x, y
	v.button = button
	v.dragging = true
	v.yaw0 = v.yaw
	v.pitch0 = v.pitch
	v.center0 = v.center
}

func (v *view) dragEnd(x, y int) {
	if !v.dragging {
		return
	}
	v.drag(x, y)
	v.dragging = false
}

func (v *view) drag(x, y int) {
	if !v.dragging {
		return
	}
	xDiff := float64(x - v.x0)
	yDiff := float64(y - v.y0)
	switch v.button {
	case 0:
		v.yaw = math.Remainder(v.yaw0+0.01*xDiff, 2*math.Pi)
		if yDiff < -yDeadband {
			yDiff += yDeadband
		} else if yDiff > yDeadband {
			yDiff -= yDeadband
		} else {
			yDiff = 0
		}
		v.pitch = clamp(v.pitch0+0.01*yDiff, -math.Pi/2, math.Pi/2)
	case 1, 2:
		// Pan on the ground plane.
		k := 0.002 * v.distance
		s, c := math.Sincos(v.yaw)
		v.center = v.center0.Add(mat.Vec3{
			float32(k * (-xDiff*c - yDiff*s)),
			0,
			float32(k * (xDiff*s - yDiff*c)),
		})
	}
}

func (v *view) modelViewMatrix() pcmat.Mat4 {
	return pcmat.Translate(0, 0, -float32(v.distance)).
		MulAffine(pcmat.Rotate(1, 0, 0, float32(v.pitch))).
		MulAffine(pcmat.Rotate(0, 1, 0, float32(v.yaw))).
		MulAffine(pcmat.Translate(-v.center[0], -v.center[1], -v.center[2]))
}

func (v *view) projectionMatrix(width, height int) pcmat.Mat4 {
	return pcmat.Perspective(
		float32(v.fov),
		float32(width)/float32(height),
		float32(minDistance/10), float32(maxDistance*2),
	)
}
