package main

import (
	"bytes"
	"fmt"
	"html"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/pointcloud-playground/blob"
	"github.com/seqsense/pointcloud-playground/mat"
)

const (
	pointSizeBase = 30.0
	axisLength    = 1.0
)

// axes are drawn at the origin: x in red, y in green, z in blue.
var axesVertices = func() []float32 {
	var buf []float32
	for i, c := range [][4]float32{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}} {
		var end mat.Vec3
		end[i] = axisLength
		o := toViewFrame(mat.Vec3{})
		e := toViewFrame(end)
		buf = append(buf, o[0], o[1], o[2], c[0], c[1], c[2], c[3])
		buf = append(buf, e[0], e[1], e[2], c[0], c[1], c[2], c[3])
	}
	return buf
}()

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "mapCanvas")

	logDiv := doc.Call("getElementById", "log")
	logPrint := func(msg interface{}) {
		s := html.EscapeString(fmt.Sprint(msg))
		logDiv.Set("innerHTML", fmt.Sprintf("%s%s<br/>", logDiv.Get("innerHTML").String(), s))
		println(s)
	}

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}

	showDebugInfo(gl, logPrint)

	program, err := newProgram(gl, vsSource, fsSource)
	if err != nil {
		logPrint(err)
		return
	}
	programAxes, err := newProgram(gl, vsAxesSource, fsSource)
	if err != nil {
		logPrint(err)
		return
	}

	uProjectionMatrix := gl.GetUniformLocation(program, "uProjectionMatrix")
	uModelViewMatrix := gl.GetUniformLocation(program, "uModelViewMatrix")
	uHeightMin := gl.GetUniformLocation(program, "uHeightMin")
	uHeightRange := gl.GetUniformLocation(program, "uHeightRange")
	uPointSizeBase := gl.GetUniformLocation(program, "uPointSizeBase")
	uProjectionMatrixAxes := gl.GetUniformLocation(programAxes, "uProjectionMatrix")
	uModelViewMatrixAxes := gl.GetUniformLocation(programAxes, "uModelViewMatrix")

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.ClearDepth(1.0)

	posBuf := gl.CreateBuffer()
	axesBuf := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, axesBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(axesVertices), gl.STATIC_DRAW)

	vi := newView()
	wn := &wheelNormalizer{}
	edit := newEditor()
	var nPoints int

	updatePoints := func() {
		pc := edit.PointCloud()
		nPoints = pc.Len()
		if nPoints == 0 {
			return
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(vertexBuffer(pc)), gl.STATIC_DRAW)

		min, max := pc.Boundaries()
		heightRange := max[2] - min[2]
		if heightRange <= 0 {
			heightRange = 1
		}
		gl.UseProgram(program)
		gl.Uniform1f(uHeightMin, min[2])
		gl.Uniform1f(uHeightRange, heightRange)
	}

	load := func(name string, b []byte) error {
		pc, err := decodePointCloud(name, bytes.NewReader(b))
		if err != nil {
			return err
		}
		edit.Set(pc)
		updatePoints()
		vi.fit(pc.Bounds())
		logPrint(fmt.Sprintf("%s: %d points, sum %s", name, pc.Len(), formatVec3(edit.Sum())))
		return nil
	}

	chNewPath := make(chan string)
	js.Global().Set("loadPointCloud",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			go func() { chNewPath <- args[0].String() }()
			return nil
		}),
	)
	chBlob := make(chan blob.Blob)
	js.Global().Set("loadBlob",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			b, err := blob.JS(args[0])
			if err != nil {
				return errorToJS(err)
			}
			go func() { chBlob <- b }()
			return nil
		}),
	)
	chSaveName := make(chan string)
	js.Global().Set("savePointCloud",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			go func() { chSaveName <- args[0].String() }()
			return nil
		}),
	)
	chCommand := make(chan string)
	js.Global().Set("runCommand",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			go func() { chCommand <- args[0].String() }()
			return nil
		}),
	)

	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chMouseDown := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseDown(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseDown <- e
	})
	chMouseMove := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseMove(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseMove <- e
	})
	chMouseUp := make(chan webgl.MouseEvent)
	gl.Canvas.OnMouseUp(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chMouseUp <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})

	query := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	if file := query.Call("get", "file"); !file.IsNull() {
		path := file.String()
		go func() { chNewPath <- path }()
	}

	c := &console{edit: edit}

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	var width, height int
	for {
		newWidth := gl.Canvas.ClientWidth()
		newHeight := gl.Canvas.ClientHeight()
		if newWidth != width || newHeight != height {
			width, height = newWidth, newHeight
			gl.Canvas.SetWidth(width)
			gl.Canvas.SetHeight(height)
			projectionMatrix := vi.projectionMatrix(width, height)
			gl.UseProgram(program)
			gl.UniformMatrix4fv(uProjectionMatrix, false, projectionMatrix)
			gl.Uniform1f(uPointSizeBase, pointSizeBase)
			gl.UseProgram(programAxes)
			gl.UniformMatrix4fv(uProjectionMatrixAxes, false, projectionMatrix)
			gl.Viewport(0, 0, width, height)
		}

		modelViewMatrix := vi.modelViewMatrix()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		gl.UseProgram(programAxes)
		gl.BindBuffer(gl.ARRAY_BUFFER, axesBuf)
		gl.EnableVertexAttribArray(0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 7*4, 0)
		gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 7*4, 3*4)
		gl.UniformMatrix4fv(uModelViewMatrixAxes, false, modelViewMatrix)
		gl.DrawArrays(gl.LINES, 0, len(axesVertices)/7)

		if nPoints > 0 {
			gl.UseProgram(program)
			gl.BindBuffer(gl.ARRAY_BUFFER, posBuf)
			gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, 0)
			gl.UniformMatrix4fv(uModelViewMatrix, false, modelViewMatrix)
			gl.DrawArrays(gl.POINTS, 0, nPoints)
		}

		select {
		case path := <-chNewPath:
			logPrint("loading " + path)
			setCursor(canvas, cursorWait)
			b, err := fetchGet(path)
			if err == nil {
				err = load(path, b)
			}
			if err != nil {
				logPrint(err)
			}
			setCursor(canvas, cursorAuto)
		case bl := <-chBlob:
			setCursor(canvas, cursorWait)
			b, err := bl.Bytes()
			if err == nil {
				err = load(bl.Name(), b)
			}
			if err != nil {
				logPrint(err)
			}
			setCursor(canvas, cursorAuto)
		case name := <-chSaveName:
			var buf bytes.Buffer
			if err := encodePointCloud(name, &buf, edit.PointCloud(), defaultHeader); err != nil {
				logPrint(err)
				continue
			}
			typ := "text/csv"
			if isPCD(name) {
				typ = "application/x-pcd"
			}
			blob.New(buf.Bytes(), typ).Download(name)
			logPrint(fmt.Sprintf("saved %s: %d points", name, edit.PointCloud().Len()))
		case line := <-chCommand:
			res, err := c.Run(line)
			if err != nil {
				logPrint(fmt.Sprintf("%s: %v", line, err))
				continue
			}
			logPrint(line)
			if res != "" {
				logPrint(res)
			}
			updatePoints()
		case e := <-chWheel:
			if d, ok := wn.Normalize(e.DeltaY); ok {
				vi.wheel(d)
			}
		case e := <-chMouseDown:
			setCursor(canvas, cursorMove)
			vi.dragStart(e.OffsetX, e.OffsetY, int(e.Button))
		case e := <-chMouseMove:
			vi.drag(e.OffsetX, e.OffsetY)
		case e := <-chMouseUp:
			setCursor(canvas, cursorAuto)
			vi.dragEnd(e.OffsetX, e.OffsetY)
		case <-tick.C:
		}
	}
}
