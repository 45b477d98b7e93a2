// Package opengl provides an OpenGL 4.1 drawing backend and a GLFW input
// adapter for the popup package. The renderer implements both
// popup.DrawBackend and popup.MetricsProvider using a built-in monospace
// bitmap font, so it can drive popups without any host font machinery.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/viewportkit/popup"
)

const vertexShaderSrc = `
#version 410 core
uniform mat4 uProj;
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;
out vec2 vUV;
out vec4 vColor;
void main() {
	vUV = aUV;
	vColor = aColor;
	gl_Position = uProj * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSrc = `
#version 410 core
uniform sampler2D uTex;
uniform int uUseTex;
in vec2 vUV;
in vec4 vColor;
out vec4 fragColor;
void main() {
	if (uUseTex != 0) {
		fragColor = vec4(vColor.rgb, vColor.a * texture(uTex, vUV).r);
	} else {
		fragColor = vColor;
	}
}
` + "\x00"

// Glyph cell geometry of the built-in atlas.
const (
	atlasCols   = 16
	atlasRows   = 6
	glyphPixels = 8
	atlasWidth  = atlasCols * glyphPixels
	atlasHeight = atlasRows * glyphPixels
	glyphAspect = 0.75 // rendered glyph width as a fraction of font size
)

type clipRect struct {
	x, y, w, h float32
}

// Renderer draws popup geometry with OpenGL 4.1 core. Create it after the
// GL context is current, call Begin/End around each frame, and pass it as
// both the Backend and Metrics of a popup.Context.
type Renderer struct {
	shader  uint32
	vao     uint32
	vbo     uint32
	fontTex uint32

	projLoc   int32
	texLoc    int32
	useTexLoc int32

	fbWidth  int32
	fbHeight int32

	clipStack []clipRect

	uiScale      float32
	baseFontSize float32

	savedBlend   bool
	savedDepth   bool
	savedScissor bool
	savedProgram int32
}

// NewRenderer compiles the shader and builds the font atlas. The GL context
// must be current.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{uiScale: 1, baseFontSize: 11}

	shader, err := buildProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, err
	}
	r.shader = shader
	r.projLoc = gl.GetUniformLocation(shader, gl.Str("uProj\x00"))
	r.texLoc = gl.GetUniformLocation(shader, gl.Str("uTex\x00"))
	r.useTexLoc = gl.GetUniformLocation(shader, gl.Str("uUseTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	stride := int32(8 * 4) // x,y,u,v + rgba as float32
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)
	gl.BindVertexArray(0)

	r.fontTex = buildFontTexture()
	return r, nil
}

// SetUIScale sets the scale factor reported to widgets.
func (r *Renderer) SetUIScale(s float32) {
	if s > 0 {
		r.uiScale = s
	}
}

// SetBaseFontSize sets the base font size in logical units.
func (r *Renderer) SetBaseFontSize(size float32) {
	if size > 0 {
		r.baseFontSize = size
	}
}

// UIScale implements popup.MetricsProvider.
func (r *Renderer) UIScale() float32 { return r.uiScale }

// BaseFontSize implements popup.MetricsProvider.
func (r *Renderer) BaseFontSize() float32 { return r.baseFontSize }

// MeasureText implements popup.MetricsProvider. The built-in font is
// monospace, so width is a straight multiple of the rune count.
func (r *Renderer) MeasureText(s string, fontSize float32) popup.Vec2 {
	n := 0
	for range s {
		n++
	}
	return popup.Vec2{X: float32(n) * fontSize * glyphAspect, Y: fontSize}
}

// Begin prepares GL state for a frame at the given framebuffer size.
func (r *Renderer) Begin(fbWidth, fbHeight int) {
	r.fbWidth = int32(fbWidth)
	r.fbHeight = int32(fbHeight)
	r.clipStack = r.clipStack[:0]

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &r.savedProgram)
	r.savedBlend = gl.IsEnabled(gl.BLEND)
	r.savedDepth = gl.IsEnabled(gl.DEPTH_TEST)
	r.savedScissor = gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(fbWidth), float32(fbHeight), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.Uniform1i(r.texLoc, 0)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
}

// End restores the GL state saved by Begin.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(r.savedProgram))
	setCap(gl.BLEND, r.savedBlend)
	setCap(gl.DEPTH_TEST, r.savedDepth)
	setCap(gl.SCISSOR_TEST, r.savedScissor)
}

// DrawRect implements popup.DrawBackend.
func (r *Renderer) DrawRect(x, y, w, h float32, color uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	gl.Uniform1i(r.useTexLoc, 0)
	verts := quadVerts(x, y, w, h, 0, 0, 0, 0, color)
	r.drawVerts(verts)
}

// DrawRectBorder implements popup.DrawBackend.
func (r *Renderer) DrawRectBorder(x, y, w, h float32, color uint32, thickness float32) {
	t := thickness
	if t <= 0 {
		t = 1
	}
	r.DrawRect(x, y, w, t, color)
	r.DrawRect(x, y+h-t, w, t, color)
	r.DrawRect(x, y+t, t, h-2*t, color)
	r.DrawRect(x+w-t, y+t, t, h-2*t, color)
}

// DrawText implements popup.DrawBackend. Characters outside printable ASCII
// render as blank cells.
func (r *Renderer) DrawText(s string, x, y, fontSize float32, color uint32) {
	if s == "" {
		return
	}
	gl.Uniform1i(r.useTexLoc, 1)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	advance := fontSize * glyphAspect
	verts := make([]float32, 0, len(s)*6*8)
	penX := x
	for _, ch := range s {
		if ch >= 32 && ch < 128 {
			idx := int(ch - 32)
			u0 := float32(idx%atlasCols) * glyphPixels / atlasWidth
			v0 := float32(idx/atlasCols) * glyphPixels / atlasHeight
			u1 := u0 + float32(glyphPixels)/atlasWidth
			v1 := v0 + float32(glyphPixels)/atlasHeight
			verts = append(verts, quadVerts(penX, y, advance, fontSize, u0, v0, u1, v1, color)...)
		}
		penX += advance
	}
	if len(verts) > 0 {
		r.drawVerts(verts)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// PushClip implements popup.DrawBackend. Nested clips intersect.
func (r *Renderer) PushClip(x, y, w, h float32) {
	c := clipRect{x, y, w, h}
	if len(r.clipStack) > 0 {
		c = intersectClip(r.clipStack[len(r.clipStack)-1], c)
	}
	r.clipStack = append(r.clipStack, c)
	r.applyClip()
}

// PopClip implements popup.DrawBackend.
func (r *Renderer) PopClip() {
	if len(r.clipStack) == 0 {
		return
	}
	r.clipStack = r.clipStack[:len(r.clipStack)-1]
	r.applyClip()
}

func (r *Renderer) applyClip() {
	if len(r.clipStack) == 0 {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	c := r.clipStack[len(r.clipStack)-1]
	gl.Enable(gl.SCISSOR_TEST)
	// GL scissor origin is bottom-left.
	gl.Scissor(int32(c.x), r.fbHeight-int32(c.y+c.h), int32(c.w), int32(c.h))
}

func (r *Renderer) drawVerts(verts []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/8))
}

// Delete releases GL resources.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func quadVerts(x, y, w, h, u0, v0, u1, v1 float32, color uint32) []float32 {
	cr, cg, cb, ca := popup.UnpackRGBA(color)
	fr := float32(cr) / 255
	fg := float32(cg) / 255
	fb := float32(cb) / 255
	fa := float32(ca) / 255
	x1, y1 := x+w, y+h
	return []float32{
		x, y, u0, v0, fr, fg, fb, fa,
		x1, y, u1, v0, fr, fg, fb, fa,
		x1, y1, u1, v1, fr, fg, fb, fa,
		x, y, u0, v0, fr, fg, fb, fa,
		x1, y1, u1, v1, fr, fg, fb, fa,
		x, y1, u0, v1, fr, fg, fb, fa,
	}
}

func intersectClip(a, b clipRect) clipRect {
	x0 := maxf32(a.x, b.x)
	y0 := maxf32(a.y, b.y)
	x1 := minf32(a.x+a.w, b.x+b.w)
	y1 := minf32(a.y+a.h, b.y+b.h)
	return clipRect{x0, y0, maxf32(0, x1-x0), maxf32(0, y1-y0)}
}

func setCap(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func buildProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		msg := make([]byte, logLen+1)
		gl.GetProgramInfoLog(prog, logLen, nil, &msg[0])
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link failed: %s", msg)
	}
	return prog, nil
}

func compileShader(kind uint32, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &msg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", msg)
	}
	return shader, nil
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
