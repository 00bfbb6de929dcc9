package ccircle

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection maps logical coordinates to clip space for a client area of
// width x height pixels: (0,0) is the top-left pixel, (width,height) the
// bottom-right, Y grows downward.
func Projection(width, height int) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return mgl32.Ortho2D(0, float32(width), float32(height), 0)
}

// setViewport reads the live client size; it is never cached because the
// user may resize the window between frames.
func (w *Window) setViewport() {
	width, height := w.surface.ClientSize()
	g := w.display.graphics
	g.Viewport(0, 0, width, height)
	g.LoadProjection(Projection(width, height))
}
