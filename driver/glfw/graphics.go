package glfwdriver

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/ccircle"
)

// graphics issues fixed-function GL calls against the current context.
type graphics struct{}

func (graphics) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (graphics) LoadProjection(proj mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func (graphics) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (graphics) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (graphics) EnableSmoothing(pointSize, lineWidth float32) {
	gl.Enable(gl.POINT_SMOOTH)
	gl.Enable(gl.LINE_SMOOTH)
	gl.Hint(gl.POINT_SMOOTH_HINT, gl.NICEST)
	gl.Hint(gl.LINE_SMOOTH_HINT, gl.NICEST)
	gl.PointSize(pointSize)
	gl.LineWidth(lineWidth)
}

func (graphics) EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (graphics) FillQuad(v [4]mgl32.Vec2, c ccircle.Color) {
	gl.Color4f(c.R, c.G, c.B, c.A)
	gl.Begin(gl.QUADS)
	for _, p := range v {
		gl.Vertex2f(p.X(), p.Y())
	}
	gl.End()
	gl.Flush()
}

func (graphics) FillTriangle(v [3]mgl32.Vec2, c ccircle.Color) {
	gl.Color4f(c.R, c.G, c.B, c.A)
	gl.Begin(gl.TRIANGLES)
	for _, p := range v {
		gl.Vertex2f(p.X(), p.Y())
	}
	gl.End()
	gl.Flush()
}

func (graphics) ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)
	return img
}

// flipRows turns GL's bottom-up rows into image order.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
