package pointcloud

import (
	"io"

	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/pointcloud-playground/mat"
)

// ToPCD converts c to a PCD point cloud with float32 x, y and z fields.
func ToPCD(c *PointCloud) (*pc.PointCloud, error) {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   0.7,
			Fields:    []string{"x", "y", "z"},
			Size:      []int{4, 4, 4},
			Type:      []string{"F", "F", "F"},
			Count:     []int{1, 1, 1},
			Width:     c.Len(),
			Height:    1,
			Viewpoint: []float32{0, 0, 0, 1, 0, 0, 0},
		},
		Points: c.Len(),
	}
	pp.Data = make([]byte, c.Len()*pp.Stride())
	if c.IsEmpty() {
		return pp, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for _, p := range c.points {
		it.SetVec3(pcmat.Vec3(p))
		it.Incr()
	}
	return pp, nil
}

// FromPCD copies x, y and z fields of pp into a new cloud.
func FromPCD(pp *pc.PointCloud) (*PointCloud, error) {
	c := NewWithPrealloc(pp.Points)
	if pp.Points == 0 {
		return c, nil
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for ; it.IsValid(); it.Incr() {
		c.Add(mat.Vec3(it.Vec3()))
	}
	return c, nil
}

// ReadPCD loads a cloud from PCD data.
// Errors are reported as *ParseError like Parse.
func ReadPCD(r io.Reader) (*PointCloud, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	c, err := FromPCD(pp)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return c, nil
}

// WritePCD writes c in PCD format.
func WritePCD(w io.Writer, c *PointCloud) error {
	pp, err := ToPCD(c)
	if err != nil {
		return err
	}
	return pc.Marshal(pp, w)
}
