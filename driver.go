package ccircle

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// PixelFormat describes the surface capabilities requested from the driver.
// The driver accepts the closest match it can get.
type PixelFormat struct {
	DoubleBuffer bool
	ColorBits    int
	DepthBits    int
	StencilBits  int
	AlphaBits    int
}

// DefaultPixelFormat is a double-buffered 24-bit RGBA surface with a 32-bit depth buffer.
var DefaultPixelFormat = PixelFormat{
	DoubleBuffer: true,
	ColorBits:    24,
	DepthBits:    32,
}

// SurfaceConfig is what a Driver needs to open one native window.
type SurfaceConfig struct {
	Title  string
	Width  int
	Height int
	X, Y   *int
	Format PixelFormat
}

// EventSink receives events from native callbacks. Implementations only queue.
type EventSink func(ev Event)

// Driver is the native windowing system plus the GL entry points that act on
// whatever context is current.
type Driver interface {
	// Init performs one-time process registration with the windowing system.
	Init() error
	Terminate()
	// CreateSurface opens a hidden window with its own GL context. Window and
	// context live and die together.
	CreateSurface(cfg SurfaceConfig, sink EventSink) (Surface, error)
	// PollEvents processes pending native events without blocking.
	PollEvents()
	Graphics() Graphics
}

type Surface interface {
	MakeCurrent() error
	Show()
	// ClientSize returns the drawable size in pixels.
	ClientSize() (width, height int)
	SwapBuffers()
	Destroy()
}

// Graphics acts on the current GL context.
type Graphics interface {
	Viewport(x, y, width, height int)
	LoadProjection(proj mgl32.Mat4)
	ClearColor(r, g, b, a float32)
	Clear()
	EnableSmoothing(pointSize, lineWidth float32)
	EnableBlend()
	FillQuad(v [4]mgl32.Vec2, c Color)
	FillTriangle(v [3]mgl32.Vec2, c Color)
	// ReadPixels returns the colour buffer with row 0 at the top.
	ReadPixels(width, height int) *image.RGBA
}
