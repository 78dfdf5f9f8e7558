package main

import (
	"fmt"

	webgl "github.com/seqsense/webgl-go"
)

// showDebugInfo logs the GPU the browser renders with.
func showDebugInfo(gl *webgl.WebGL, logPrint func(interface{})) {
	defer func() {
		if r := recover(); r != nil {
			logPrint("failed to get GPU info")
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		logPrint("GPU: hidden by the browser privacy setting")
		return
	}
	logPrint(fmt.Sprintf("GPU: %s %s",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	))
}
