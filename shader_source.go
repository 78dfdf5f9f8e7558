package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uHeightMin;
	uniform float uHeightRange;
	uniform float uPointSizeBase;
	vec4 viewPosition;
	lowp float c;
	out lowp vec4 vColor;

	void main(void) {
		viewPosition = uModelViewMatrix * aVertexPosition;
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = clamp(uPointSizeBase / length(viewPosition), 1.0, uPointSizeBase);

		// Viewer frame is y-up
		c = clamp((aVertexPosition[1] - uHeightMin) / uHeightRange, 0.0, 1.0);
		vColor = vec4(c, 1.0 - abs(2.0 * c - 1.0), 1.0 - c, 1.0);
	}
`

const vsAxesSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in vec4 aVertexColor;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	out lowp vec4 vColor;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
		vColor = aVertexColor;
	}
`

const fsSource = `#version 300 es
	in lowp vec4 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
