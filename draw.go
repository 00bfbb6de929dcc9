package ccircle

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Clear fills the whole client area with (r, g, b) at full opacity. The
// viewport is recomputed first since the window may have been resized.
func (w *Window) Clear(r, g, b float32) {
	if !w.activate("clear") {
		return
	}
	w.setViewport()
	gfx := w.display.graphics
	gfx.ClearColor(r, g, b, 1)
	gfx.Clear()
}

// DrawRect fills the rectangle from (x, y) to (x+width, y+height) in white.
func (w *Window) DrawRect(x, y, width, height float32) {
	w.DrawRectColor(x, y, width, height, White)
}

func (w *Window) DrawRectRGBA(x, y, width, height, r, g, b, a float32) {
	w.DrawRectColor(x, y, width, height, RGBA(r, g, b, a))
}

func (w *Window) DrawRectColor(x, y, width, height float32, c Color) {
	if !w.activate("draw rect") {
		return
	}
	w.display.graphics.FillQuad([4]mgl32.Vec2{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	}, c)
}

// DrawTri fills the triangle through the three vertices in white.
func (w *Window) DrawTri(x1, y1, x2, y2, x3, y3 float32) {
	w.DrawTriColor(x1, y1, x2, y2, x3, y3, White)
}

func (w *Window) DrawTriRGBA(x1, y1, x2, y2, x3, y3, r, g, b, a float32) {
	w.DrawTriColor(x1, y1, x2, y2, x3, y3, RGBA(r, g, b, a))
}

func (w *Window) DrawTriColor(x1, y1, x2, y2, x3, y3 float32, c Color) {
	if !w.activate("draw tri") {
		return
	}
	w.display.graphics.FillTriangle([3]mgl32.Vec2{
		{x1, y1},
		{x2, y2},
		{x3, y3},
	}, c)
}

// ReadPixels returns a copy of the window's colour buffer, top row first.
// It returns nil for a closed window.
func (w *Window) ReadPixels() *image.RGBA {
	if !w.activate("read pixels") {
		return nil
	}
	width, height := w.surface.ClientSize()
	return w.display.graphics.ReadPixels(width, height)
}
