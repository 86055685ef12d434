//go:build !nogl

package opengl

// flatVert maps simulation coordinates to clip space through the vp
// uniform and passes the vertex color through.
const flatVert = `#version 330 core

layout(location = 0) in vec2 pos;
layout(location = 1) in vec4 color;

uniform vec2 vp[2];
uniform float size;

out vec4 vcolor;

void main() {
	vec2 p = 2 * (pos - vp[0]) / (vp[1] - vp[0]) - 1;
	gl_Position = vec4(p, 0, 1);
	gl_PointSize = size;
	vcolor = color;
}
`

// flatFrag outputs the interpolated vertex color.
const flatFrag = `#version 330 core

in vec4 vcolor;
out vec4 fcolor;

void main() {
	fcolor = vcolor;
}
`
