//go:build !nogl

// Package opengl displays simulation runs in an interactive window.
package opengl

import (
	"fmt"
	"math"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	Step       func() // go to next tick
	ForcePause bool   // step manually only?

	// bounds of default viewport
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

// Colors of the three populations.
var (
	boidColor     = [4]float32{1, 1, 0, 1}
	predatorColor = [4]float32{1, 0.2, 0.2, 1}
	areaColor     = [4]float32{0.5, 0.5, 0.5, 0.6}
)

// Run runs an interactive simulation in an OpenGL window.
//
// Space pauses and resumes, right arrow steps once while paused,
// scrolling zooms, R resets the view and Esc quits.
func Run(s *flock.Simulation, conf *Config) error {
	// init GLFW and OpenGL
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	const (
		title  = "Flock"
		width  = 800
		height = 800
	)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return err
	}

	// set background color and enable alpha blending
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	w.SwapBuffers()

	d, err := newDisplay()
	if err != nil {
		return err
	}

	// handle scrolling zoom
	vp0 := viewport{{float32(conf.Xmin), float32(conf.Ymin)}, {float32(conf.Xmax), float32(conf.Ymax)}}
	vp := vp0
	w.SetScrollCallback(func(w *glfw.Window, xo, yo float64) {
		xc, yc := w.GetCursorPos()
		xs, ys := w.GetSize()
		x, y := float32(xc)/float32(xs), (float32(ys)-float32(yc))/float32(ys)
		dx, dy := vp[1].X-vp[0].X, vp[1].Y-vp[0].Y
		z := 0.05 * float32(yo)
		vp[0].X += z * -(x * dx)
		vp[0].Y += z * -(y * dy)
		vp[1].X += z * (1 - x) * dx
		vp[1].Y += z * (1 - y) * dy
		d.draw(s, vp)
		w.SwapBuffers()
	})

	var quit, step bool
	pause := conf.ForcePause
	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mod glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			quit = true
		}
		if key == glfw.KeySpace && action == glfw.Press && !conf.ForcePause {
			pause = !pause
		}
		if key == glfw.KeyRight && (action == glfw.Press || action == glfw.Repeat) {
			if pause {
				pause = false
				step = true
			}
		}
		if key == glfw.KeyR && action == glfw.Press {
			vp = vp0
			d.draw(s, vp)
			w.SwapBuffers()
		}
	})

	for !(quit || w.ShouldClose()) {
		if step {
			pause = true
			step = false
			conf.Step()
		}
		if !pause {
			conf.Step()
		}
		d.draw(s, vp)
		w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// A viewport is a rectangle delimiting the area of simulation space shown
// on screen. The first point is the bottom left corner, the second point
// is the top right corner.
type viewport [2]struct{ X, Y float32 }

// vertsPerCircle is the number of segments used to outline an area.
const vertsPerCircle = 48

// display contains all the OpenGL objects required to display the
// simulation. All populations share one flat-color program and one
// streaming vertex buffer of interleaved (pos, color) float32 values.
type display struct {
	vao  uint32
	prog uint32
	buf  uint32
	uni  struct {
		vp   int32 // viewport
		size int32 // point size in pixels
	}
	verts []float32 // scratch vertex data, rebuilt every frame
}

// draw rebuilds the vertex buffer from the current snapshot and draws
// areas, boids and predators.
func (d *display) draw(s *flock.Simulation, vp viewport) {
	gl.UseProgram(d.prog)
	gl.Uniform2fv(d.uni.vp, 2, &vp[0].X)

	d.verts = d.verts[:0]
	for _, a := range s.Boids {
		d.appendVertex(a.Pos, boidColor)
	}
	for _, a := range s.Predators {
		d.appendVertex(a.Pos, predatorColor)
	}
	for k, a := range s.Areas {
		d.appendCircle(a.Pos, s.Params.AreaRadius[k])
	}

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf)
	if len(d.verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(d.verts), gl.Ptr(d.verts), gl.STREAM_DRAW)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	n := int32(len(s.Boids))
	gl.Uniform1f(d.uni.size, 4)
	gl.DrawArrays(gl.POINTS, 0, n)

	gl.Uniform1f(d.uni.size, 8)
	gl.DrawArrays(gl.POINTS, n, int32(len(s.Predators)))

	first := n + int32(len(s.Predators))
	for range s.Areas {
		gl.DrawArrays(gl.LINE_LOOP, first, vertsPerCircle)
		first += vertsPerCircle
	}
}

// appendVertex appends one interleaved (pos, color) vertex.
func (d *display) appendVertex(p flock.Vec2, c [4]float32) {
	d.verts = append(d.verts, float32(p.X), float32(p.Y), c[0], c[1], c[2], c[3])
}

// appendCircle appends the outline of an area as a line loop.
func (d *display) appendCircle(center flock.Vec2, radius float64) {
	for i := 0; i < vertsPerCircle; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / vertsPerCircle)
		p := flock.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin}
		d.appendVertex(p, areaColor)
	}
}

// newDisplay compiles shaders and initializes a display.
func newDisplay() (*display, error) {
	d := new(display)

	var err error
	d.prog, err = makeProg([]shader{
		{"Vertex", flatVert, gl.CreateShader(gl.VERTEX_SHADER)},
		{"Fragment", flatFrag, gl.CreateShader(gl.FRAGMENT_SHADER)},
	})
	if err != nil {
		return nil, err
	}

	// uniform locations cannot be specified in the shaders in OpenGL 3.3 core
	d.uni.vp = gl.GetUniformLocation(d.prog, gl.Str("vp\x00"))
	d.uni.size = gl.GetUniformLocation(d.prog, gl.Str("size\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.buf)

	// attribute locations are specified in the shaders with layout(location=n)
	const stride = 6 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

// A shader wraps an OpenGL shader.
type shader struct {
	name   string
	src    string
	shader uint32
}

// makeProg builds OpenGL programs.
func makeProg(shaders []shader) (uint32, error) {
	var fail bool
	for _, s := range shaders {
		src := s.src + "\x00"
		str, free := gl.Strs(src)
		gl.ShaderSource(s.shader, 1, str, nil)
		free()
		gl.CompileShader(s.shader)
		var status int32
		gl.GetShaderiv(s.shader, gl.COMPILE_STATUS, &status)
		if status != gl.TRUE {
			var n int32
			gl.GetShaderiv(s.shader, gl.INFO_LOG_LENGTH, &n)
			log := make([]uint8, n)
			gl.GetShaderInfoLog(s.shader, n, &n, &log[0])
			fmt.Printf("### %s shader compilation error ###\n\n%s\n\n", s.name, gl.GoStr(&log[0]))
			fail = true
			gl.DeleteShader(s.shader)
		}
	}
	if fail {
		return 0, fmt.Errorf("opengl: GLSL errors")
	}
	prog := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(prog, s.shader)
	}
	gl.LinkProgram(prog)

	return prog, nil
}
