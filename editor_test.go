package main

import (
	"math"
	"sort"
	"testing"

	"github.com/seqsense/pointcloud-playground/mat"
	"github.com/seqsense/pointcloud-playground/pointcloud"
)

func TestEditor(t *testing.T) {
	e := newEditor()
	if _, _, ok := e.Bounds(); ok {
		t.Error("Bounds of empty cloud must not be ok")
	}

	for _, p := range []mat.Vec3{
		{0, 0, 0},
		{2, 2, 2},
		{1, 1.5, 0.5},
	} {
		e.Add(p)
	}

	if sum, expected := e.Sum(), (mat.Vec3{3, 3.5, 2.5}); sum != expected {
		t.Errorf("Expected sum: %v, got: %v", expected, sum)
	}

	min, max, ok := e.Bounds()
	if !ok {
		t.Fatal("Bounds must be ok")
	}
	if min != (mat.Vec3{0, 0, 0}) || max != (mat.Vec3{2, 2, 2}) {
		t.Errorf("Unexpected bounds: %v-%v", min, max)
	}

	if n := e.Crop(mat.Vec3{1, 1, 0}, mat.Vec3{2, 2, 2}); n != 1 {
		t.Errorf("Expected 1 point to be removed, got: %d", n)
	}
	if n := e.PointCloud().Len(); n != 2 {
		t.Fatalf("Expected 2 points after crop, got: %d", n)
	}

	if err := e.Downsample(10); err != nil {
		t.Fatal(err)
	}
	if n := e.PointCloud().Len(); n != 1 {
		t.Errorf("Expected 1 point after downsample, got: %d", n)
	}
	if err := e.Downsample(0); err == nil {
		t.Error("Downsample with zero leaf size must fail")
	}
}

func TestEditor_Undo(t *testing.T) {
	e := newEditor()
	if e.Undo() {
		t.Error("Undo without history must fail")
	}

	e.Add(mat.Vec3{0, 0, 0})
	e.Add(mat.Vec3{1, 1, 1})
	e.Crop(mat.Vec3{0.5, 0.5, 0.5}, mat.Vec3{1, 1, 1})

	for _, expected := range []int{2, 1, 0} {
		if !e.Undo() {
			t.Fatal("Undo failed")
		}
		if n := e.PointCloud().Len(); n != expected {
			t.Errorf("Expected %d points after undo, got %d", expected, n)
		}
	}
	if e.Undo() {
		t.Error("Undo must fail after reverting all operations")
	}
}

func TestHistory(t *testing.T) {
	h := newHistory(2)
	for i := 1; i <= 3; i++ {
		pc := pointcloud.NewWithPrealloc(i)
		for j := 0; j < i; j++ {
			pc.Add(mat.Vec3{float32(j), 0, 0})
		}
		h.push(pc)
		pc.Add(mat.Vec3{})
	}

	for _, expected := range []int{3, 2} {
		pc, ok := h.pop()
		if !ok {
			t.Fatal("Expected stored cloud")
		}
		if pc.Len() != expected {
			t.Errorf("Stored cloud must be a copy with %d points, got %d", expected, pc.Len())
		}
	}
	if _, ok := h.pop(); ok {
		t.Error("Oldest cloud must be dropped")
	}

	h.SetMaxHistory(-1)
	if h.MaxHistory() != 0 {
		t.Errorf("Expected max history 0, got %d", h.MaxHistory())
	}
	h.push(pointcloud.New())
	if _, ok := h.pop(); ok {
		t.Error("History must be disabled")
	}
}

func TestEditor_Downsample(t *testing.T) {
	e := newEditor()
	for _, p := range []mat.Vec3{
		{0, 0, 0},
		{5.3, 5.3, 5.3},
		{2.5, 0.5, 0.5},
		{0.4, 0.4, 0.4},
		{5.5, 5.5, 5.5},
	} {
		e.Add(p)
	}
	if err := e.Downsample(1); err != nil {
		t.Fatal(err)
	}

	var out []mat.Vec3
	e.PointCloud().Iterate(func(_ int, p mat.Vec3) bool {
		out = append(out, p)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	expected := []mat.Vec3{
		{0.2, 0.2, 0.2},
		{2.5, 0.5, 0.5},
		{5.4, 5.4, 5.4},
	}
	if len(out) != len(expected) {
		t.Fatalf("Expected %d points, got %d: %v", len(expected), len(out), out)
	}
	for i, p := range expected {
		if d := p.Sub(out[i]).Norm(); d > 0.001 {
			t.Errorf("Expected centroid %v, got %v", p, out[i])
		}
	}

	if !e.Undo() || e.PointCloud().Len() != 5 {
		t.Error("Downsample must be reverted by Undo")
	}
}

func TestEditor_DownsampleError(t *testing.T) {
	testCases := map[string]float32{
		"Zero":     0,
		"Negative": -1,
		"Inf":      float32(math.Inf(1)),
		"NaN":      float32(math.NaN()),
	}
	for name, leaf := range testCases {
		leaf := leaf
		t.Run(name, func(t *testing.T) {
			e := newEditor()
			e.Add(mat.Vec3{1, 2, 3})
			if err := e.Downsample(leaf); err != errInvalidLeafSize {
				t.Errorf("Expected error: %v, got: %v", errInvalidLeafSize, err)
			}
			if e.PointCloud().Len() != 1 {
				t.Error("Cloud must not be changed on error")
			}
		})
	}

	t.Run("Empty", func(t *testing.T) {
		e := newEditor()
		if err := e.Downsample(1); err != nil {
			t.Fatal(err)
		}
		if !e.PointCloud().IsEmpty() {
			t.Error("Expected empty cloud")
		}
	})
}
