package main

import (
	"github.com/seqsense/pointcloud-playground/mat"
	"github.com/seqsense/pointcloud-playground/pointcloud"
)

const defaultMaxHistory = 16

// history keeps copies of the clouds replaced by editor operations.
type history struct {
	clouds     []*pointcloud.PointCloud
	maxHistory int
}

func newHistory(n int) *history {
	return &history{maxHistory: n}
}

func (h *history) MaxHistory() int {
	return h.maxHistory
}

func (h *history) SetMaxHistory(m int) {
	if m < 0 {
		m = 0
	}
	h.maxHistory = m
	h.trim()
}

// push stores a copy of pc.
func (h *history) push(pc *pointcloud.PointCloud) {
	if h.maxHistory == 0 {
		return
	}
	cp := pointcloud.NewWithPrealloc(pc.Len())
	pc.Iterate(func(_ int, p mat.Vec3) bool {
		cp.Add(p)
		return true
	})
	h.clouds = append(h.clouds, cp)
	h.trim()
}

func (h *history) trim() {
	if n := len(h.clouds) - h.maxHistory; n > 0 {
		h.clouds = h.clouds[n:]
	}
}

// pop returns the latest stored cloud.
func (h *history) pop() (*pointcloud.PointCloud, bool) {
	n := len(h.clouds)
	if n == 0 {
		return nil, false
	}
	pc := h.clouds[n-1]
	h.clouds[n-1] = nil
	h.clouds = h.clouds[:n-1]
	return pc, true
}
