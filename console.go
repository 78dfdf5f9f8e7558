package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/seqsense/pointcloud-playground/mat"
)

type console struct {
	edit *editor
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

var consoleCommands = map[string]func(e *editor, args []float32) ([][]float32, error){
	"count": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{float32(e.PointCloud().Len())}}, nil
	},
	"is_empty": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{boolToFloat(e.PointCloud().IsEmpty())}}, nil
	},
	"bounds": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		min, max, _ := e.Bounds()
		return [][]float32{
			{min[0], min[1], min[2]},
			{max[0], max[1], max[2]},
		}, nil
	},
	"sum": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		s := e.Sum()
		return [][]float32{{s[0], s[1], s[2]}}, nil
	},
	"add": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		e.Add(mat.Vec3{args[0], args[1], args[2]})
		return [][]float32{{float32(e.PointCloud().Len())}}, nil
	},
	"sub_box": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 6 {
			return nil, errArgumentNumber
		}
		e.Crop(
			mat.Vec3{args[0], args[1], args[2]},
			mat.Vec3{args[3], args[4], args[5]},
		)
		return [][]float32{{float32(e.PointCloud().Len())}}, nil
	},
	"voxel": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		if err := e.Downsample(args[0]); err != nil {
			return nil, err
		}
		return [][]float32{{float32(e.PointCloud().Len())}}, nil
	},
	"undo": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{boolToFloat(e.Undo())}}, nil
	},
	"max_history": func(e *editor, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			e.history.SetMaxHistory(int(args[0]))
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{float32(e.history.MaxHistory())}}, nil
	},
	"points": func(e *editor, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		var res [][]float32
		e.PointCloud().Iterate(func(i int, p mat.Vec3) bool {
			res = append(res, []float32{float32(i), p[0], p[1], p[2]})
			return true
		})
		return res, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c.edit, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
