package main

import (
	"reflect"
	"testing"

	"github.com/seqsense/pointcloud-playground/mat"
)

func TestParseJob(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected *job
		err      bool
	}{
		"Full": {
			input: `
input: points.csv
output: cropped.pcd
header: "a, b, c"
crop:
  min: [1, 1, 1]
  max: [2, 2.5, 3]
voxel: 0.1
script:
  - bounds
  - count
`,
			expected: &job{
				Input:  "points.csv",
				Output: "cropped.pcd",
				Header: "a, b, c",
				Crop: &cropBox{
					Min: vec3Value{1, 1, 1},
					Max: vec3Value{2, 2.5, 3},
				},
				Voxel:  0.1,
				Script: []string{"bounds", "count"},
			},
		},
		"DefaultHeader": {
			input: "input: points.csv\n",
			expected: &job{
				Input:  "points.csv",
				Header: defaultHeader,
			},
		},
		"ShortVector": {
			input: "crop:\n  min: [1, 1]\n  max: [2, 2, 2]\n",
			err:   true,
		},
		"NotANumber": {
			input: "crop:\n  min: [a, 1, 1]\n",
			err:   true,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			j, err := parseJob([]byte(tt.input))
			if tt.err {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(tt.expected, j) {
				t.Errorf("Expected: %+v, got: %+v", tt.expected, j)
			}
		})
	}
}

func TestVec3Value_Set(t *testing.T) {
	var v vec3Value
	if err := v.Set("1.5, -2,3e1"); err != nil {
		t.Fatal(err)
	}
	if mat.Vec3(v) != (mat.Vec3{1.5, -2, 30}) {
		t.Errorf("Unexpected value: %v", v)
	}
	if s := v.String(); s != "1.5,-2,30" {
		t.Errorf("Unexpected string: %s", s)
	}
	if err := v.Set("1,2"); err == nil {
		t.Error("Expected error on short vector")
	}
	if err := v.Set("1,x,2"); err == nil {
		t.Error("Expected error on invalid number")
	}
}
