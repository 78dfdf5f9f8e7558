//go:build !js
// +build !js

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seqsense/pointcloud-playground/mat"
	"github.com/seqsense/pointcloud-playground/pointcloud"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("pcplay", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML job file")
		output     = fs.String("o", "", "output file (.csv or .pcd)")
		voxel      = fs.Float64("voxel", 0, "voxel grid leaf size for downsampling (0 to disable)")
		script     = fs.String("e", "", "console commands separated by ';'")
		interact   = fs.Bool("i", false, "read console commands from stdin")
		verbose    = fs.Bool("v", false, "verbose log")
		boxMin     vec3Value
		boxMax     vec3Value
	)
	fs.Var(&boxMin, "min", "minimum corner of the crop box (x,y,z)")
	fs.Var(&boxMax, "max", "maximum corner of the crop box (x,y,z)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [input.csv|input.pcd]\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()

	j := &job{Header: defaultHeader}
	if *configPath != "" {
		if j, err = readJob(*configPath); err != nil {
			logger.Errorw("failed to read config", "path", *configPath, "error", err)
			return 1
		}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["min"] != set["max"] {
		logger.Error("-min and -max must be specified together")
		return 2
	}
	if set["min"] {
		j.Crop = &cropBox{Min: boxMin, Max: boxMax}
	}
	if set["o"] {
		j.Output = *output
	}
	if set["voxel"] {
		j.Voxel = float32(*voxel)
	}
	if *script != "" {
		j.Script = append(j.Script, strings.Split(*script, ";")...)
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	if fs.NArg() == 1 {
		j.Input = fs.Arg(0)
	}

	e, err := process(j, logger, stdout)
	if err != nil {
		logger.Error(err)
		return 1
	}
	if *interact {
		if err := interactive(&console{edit: e}, stdin, stdout); err != nil {
			logger.Error(err)
			return 1
		}
	}
	return 0
}

func process(j *job, logger *zap.SugaredLogger, stdout io.Writer) (*editor, error) {
	e := newEditor()
	if j.Input != "" {
		pc, err := readPointCloud(j.Input)
		if err != nil {
			return nil, err
		}
		e.Set(pc)
		logger.Infow("loaded", "path", j.Input, "points", pc.Len())
	}

	if j.Crop != nil {
		b := pointcloud.Box{Min: mat.Vec3(j.Crop.Min), Max: mat.Vec3(j.Crop.Max)}
		if !b.IsValid() {
			logger.Warnw("crop box is inverted, no point will be left",
				"min", formatVec3(b.Min), "max", formatVec3(b.Max),
			)
		}
		n := e.Crop(b.Min, b.Max)
		logger.Infow("cropped", "removed", n, "points", e.PointCloud().Len())
	}
	if j.Voxel != 0 {
		n := e.PointCloud().Len()
		if err := e.Downsample(j.Voxel); err != nil {
			return nil, err
		}
		logger.Infow("downsampled", "leaf_size", j.Voxel, "before", n, "points", e.PointCloud().Len())
	}

	c := &console{edit: e}
	for _, line := range j.Script {
		logger.Debugw("running command", "command", line)
		res, err := c.Run(line)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", strings.TrimSpace(line), err)
		}
		if res != "" {
			fmt.Fprintln(stdout, res)
		}
	}

	if j.Output != "" {
		if err := writePointCloud(j.Output, e.PointCloud(), j.Header); err != nil {
			return nil, err
		}
		logger.Infow("saved", "path", j.Output, "points", e.PointCloud().Len())
	}

	pc := e.PointCloud()
	fmt.Fprintf(stdout, "points: %d\n", pc.Len())
	fmt.Fprintf(stdout, "sum: %s\n", formatVec3(e.Sum()))
	if min, max, ok := e.Bounds(); ok {
		fmt.Fprintf(stdout, "bounds: %s - %s\n", formatVec3(min), formatVec3(max))
	} else {
		fmt.Fprintln(stdout, "bounds: empty")
	}
	return e, nil
}

func interactive(c *console, stdin io.Reader, stdout io.Writer) error {
	s := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "> ")
		if !s.Scan() {
			fmt.Fprintln(stdout)
			return s.Err()
		}
		line := strings.TrimSpace(s.Text())
		switch line {
		case "quit", "exit":
			return nil
		}
		res, err := c.Run(line)
		if err != nil {
			fmt.Fprintf(stdout, "error: %v\n", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(stdout, res)
		}
	}
}
