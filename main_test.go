//go:build !js
// +build !js

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqsense/pointcloud-playground/mat"
	"github.com/seqsense/pointcloud-playground/pointcloud"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	input := writeFile(t, "points.csv", "x, y, z\n0, 0, 0\n2, 2, 2\n1, 1.5, 3\n")

	t.Run("Summary", func(t *testing.T) {
		var stdout bytes.Buffer
		if code := run([]string{input}, strings.NewReader(""), &stdout); code != 0 {
			t.Fatalf("Expected exit code 0, got %d", code)
		}
		expected := "points: 3\nsum: (3, 3.5, 5)\nbounds: (0, 0, 0) - (2, 2, 3)\n"
		if stdout.String() != expected {
			t.Errorf("Expected:\n%s\ngot:\n%s", expected, stdout.String())
		}
	})

	t.Run("Crop", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.csv")
		var stdout bytes.Buffer
		code := run(
			[]string{"-min", "1,1,1", "-max", "2,2,2", "-o", output, input},
			strings.NewReader(""), &stdout,
		)
		if code != 0 {
			t.Fatalf("Expected exit code 0, got %d", code)
		}
		pc, err := pointcloud.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		if pc.Len() != 1 || pc.Vec3At(0) != (mat.Vec3{2, 2, 2}) {
			t.Errorf("Expected only (2, 2, 2) to be left, got %d points", pc.Len())
		}
	})

	t.Run("Config", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.pcd")
		config := writeFile(t, "job.yaml", "input: "+input+"\noutput: "+output+"\ncrop:\n  min: [-1, -1, -1]\n  max: [1, 1, 1]\n")
		var stdout bytes.Buffer
		if code := run([]string{"-config", config, "-e", "count; bounds"}, strings.NewReader(""), &stdout); code != 0 {
			t.Fatalf("Expected exit code 0, got %d", code)
		}
		if !strings.HasPrefix(stdout.String(), "1.000\n0.000 0.000 0.000\n0.000 0.000 0.000\npoints: 1\n") {
			t.Errorf("Unexpected output:\n%s", stdout.String())
		}
		pc, err := readPointCloud(output)
		if err != nil {
			t.Fatal(err)
		}
		if pc.Len() != 1 {
			t.Errorf("Expected 1 point, got %d", pc.Len())
		}
	})

	t.Run("Interactive", func(t *testing.T) {
		var stdout bytes.Buffer
		stdin := strings.NewReader("add 5 5 5\ncount\nfoo\nquit\ncount\n")
		if code := run([]string{"-i", input}, stdin, &stdout); code != 0 {
			t.Fatalf("Expected exit code 0, got %d", code)
		}
		out := stdout.String()
		if !strings.Contains(out, "> 4.000\n> 4.000\n> error: invalid command\n> ") {
			t.Errorf("Unexpected output:\n%s", out)
		}
		if strings.Count(out, "> ") != 4 {
			t.Errorf("Commands after quit must not run:\n%s", out)
		}
	})
}

func TestRun_Error(t *testing.T) {
	broken := writeFile(t, "broken.csv", "header\nnot,a,number\n")

	testCases := map[string]struct {
		args []string
		code int
	}{
		"ParseError":  {args: []string{broken}, code: 1},
		"NotExist":    {args: []string{filepath.Join(t.TempDir(), "none.csv")}, code: 1},
		"MinOnly":     {args: []string{"-min", "1,1,1", broken}, code: 2},
		"InvalidMin":  {args: []string{"-min", "1,1", "-max", "2,2,2"}, code: 2},
		"TwoInputs":   {args: []string{broken, broken}, code: 2},
		"BadCommand":  {args: []string{"-e", "foo"}, code: 1},
		"BadVoxel":    {args: []string{"-voxel", "-1"}, code: 1},
		"NoConfig":    {args: []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, code: 1},
		"UnknownFlag": {args: []string{"-unknown"}, code: 2},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			var stdout bytes.Buffer
			if code := run(tt.args, strings.NewReader(""), &stdout); code != tt.code {
				t.Errorf("Expected exit code %d, got %d", tt.code, code)
			}
		})
	}
}
