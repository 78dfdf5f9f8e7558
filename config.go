package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/pointcloud-playground/mat"
)

const defaultHeader = "x, y, z"

// job describes what to do with a point cloud file.
type job struct {
	Input  string   `yaml:"input"`
	Output string   `yaml:"output"`
	Header string   `yaml:"header"`
	Crop   *cropBox `yaml:"crop"`
	Voxel  float32  `yaml:"voxel"`
	Script []string `yaml:"script"`
}

type cropBox struct {
	Min vec3Value `yaml:"min"`
	Max vec3Value `yaml:"max"`
}

// vec3Value is a Vec3 decoded from a YAML sequence or a flag value
// like "1.0,2.0,3.0".
type vec3Value mat.Vec3

func (v *vec3Value) UnmarshalYAML(n *yaml.Node) error {
	var f []float32
	if err := n.Decode(&f); err != nil {
		return err
	}
	if len(f) != 3 {
		return fmt.Errorf("line %d: vector must have 3 elements, got %d", n.Line, len(f))
	}
	copy(v[:], f)
	return nil
}

func (v *vec3Value) String() string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

func (v *vec3Value) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return fmt.Errorf("vector must have 3 elements, got %d", len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return err
		}
		v[i] = float32(x)
	}
	return nil
}

func readJob(name string) (*job, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return parseJob(b)
}

func parseJob(b []byte) (*job, error) {
	j := &job{}
	if err := yaml.Unmarshal(b, j); err != nil {
		return nil, err
	}
	if j.Header == "" {
		j.Header = defaultHeader
	}
	return j, nil
}
