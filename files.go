package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/seqsense/pointcloud-playground/pointcloud"
)

func isPCD(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pcd")
}

// decodePointCloud reads PCD if name has .pcd extension, CSV otherwise.
func decodePointCloud(name string, r io.Reader) (*pointcloud.PointCloud, error) {
	if isPCD(name) {
		return pointcloud.ReadPCD(r)
	}
	return pointcloud.Parse(r)
}

func encodePointCloud(name string, w io.Writer, pc *pointcloud.PointCloud, header string) error {
	if isPCD(name) {
		return pointcloud.WritePCD(w, pc)
	}
	return pointcloud.Write(w, pc, header)
}

func readPointCloud(name string) (*pointcloud.PointCloud, error) {
	if !isPCD(name) {
		return pointcloud.ReadFile(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, &pointcloud.ParseError{Err: err}
	}
	defer f.Close()
	return pointcloud.ReadPCD(f)
}

func writePointCloud(name string, pc *pointcloud.PointCloud, header string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encodePointCloud(name, f, pc, header)
}
