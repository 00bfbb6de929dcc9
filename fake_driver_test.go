package ccircle

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDriver records native calls and rasterizes into per-surface
// framebuffers so drawing can be checked without a display.
type fakeDriver struct {
	initErr        error
	createErr      error
	makeCurrentErr error
	// failAfterBind makes CreateSurface bind the new context natively and
	// then fail, leaving no context current.
	failAfterBind error

	initCalls      int
	terminateCalls int
	polls          int
	onPoll         func()

	surfaces []*fakeSurface
	current  *fakeSurface
	gfx      *fakeGraphics
}

func newFakeDriver() *fakeDriver {
	d := &fakeDriver{}
	d.gfx = &fakeGraphics{d: d}
	return d
}

func (d *fakeDriver) Init() error {
	d.initCalls++
	return d.initErr
}

func (d *fakeDriver) Terminate() { d.terminateCalls++ }

func (d *fakeDriver) PollEvents() {
	d.polls++
	if d.onPoll != nil {
		d.onPoll()
	}
}

func (d *fakeDriver) Graphics() Graphics { return d.gfx }

func (d *fakeDriver) CreateSurface(cfg SurfaceConfig, sink EventSink) (Surface, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	s := &fakeSurface{
		d:           d,
		cfg:         cfg,
		width:       cfg.Width,
		height:      cfg.Height,
		sink:        sink,
		fb:          image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		failCurrent: d.makeCurrentErr,
	}
	d.surfaces = append(d.surfaces, s)
	if d.failAfterBind != nil {
		d.current = s
		s.Destroy()
		return nil, d.failAfterBind
	}
	return s, nil
}

type fakeSurface struct {
	d           *fakeDriver
	cfg         SurfaceConfig
	width       int
	height      int
	sink        EventSink
	fb          *image.RGBA
	presented   *image.RGBA
	failCurrent error

	binds     int
	swaps     int
	shown     bool
	destroyed bool
}

func (s *fakeSurface) MakeCurrent() error {
	if s.failCurrent != nil {
		return s.failCurrent
	}
	s.binds++
	s.d.current = s
	return nil
}

func (s *fakeSurface) Show() { s.shown = true }

func (s *fakeSurface) ClientSize() (int, int) { return s.width, s.height }

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
	s.presented = cloneRGBA(s.fb)
}

func (s *fakeSurface) Destroy() {
	s.destroyed = true
	if s.d.current == s {
		s.d.current = nil
	}
}

// resize simulates the user dragging the window border.
func (s *fakeSurface) resize(width, height int) {
	s.width, s.height = width, height
	next := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(next.Pix, s.fb.Pix)
	s.fb = next
}

func (s *fakeSurface) send(ev Event) { s.sink(ev) }

type viewportCall struct {
	x, y, width, height int
	target              *fakeSurface
}

type fakeGraphics struct {
	d *fakeDriver

	viewports    []viewportCall
	projection   mgl32.Mat4
	clearColor   Color
	clears       int
	blendEnabled bool
	pointSize    float32
	lineWidth    float32
	smoothing    int
}

func (g *fakeGraphics) Viewport(x, y, width, height int) {
	g.viewports = append(g.viewports, viewportCall{x, y, width, height, g.d.current})
}

func (g *fakeGraphics) LoadProjection(proj mgl32.Mat4) { g.projection = proj }

func (g *fakeGraphics) ClearColor(r, gr, b, a float32) { g.clearColor = Color{r, gr, b, a} }

func (g *fakeGraphics) Clear() {
	g.clears++
	s := g.d.current
	if s == nil {
		return
	}
	c := g.clearColor.NRGBA()
	b := s.fb.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.fb.Set(x, y, c)
		}
	}
}

func (g *fakeGraphics) EnableSmoothing(pointSize, lineWidth float32) {
	g.smoothing++
	g.pointSize = pointSize
	g.lineWidth = lineWidth
}

func (g *fakeGraphics) EnableBlend() { g.blendEnabled = true }

func (g *fakeGraphics) FillQuad(v [4]mgl32.Vec2, c Color) {
	g.fillTriangle([3]mgl32.Vec2{v[0], v[1], v[2]}, c)
	g.fillTriangle([3]mgl32.Vec2{v[0], v[2], v[3]}, c)
}

func (g *fakeGraphics) FillTriangle(v [3]mgl32.Vec2, c Color) {
	g.fillTriangle(v, c)
}

func (g *fakeGraphics) ReadPixels(width, height int) *image.RGBA {
	if g.d.current == nil {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return cloneRGBA(g.d.current.fb)
}

// toPixel runs a logical point through the loaded projection and the last
// viewport, giving image coordinates with the origin at the top-left.
func (g *fakeGraphics) toPixel(p mgl32.Vec2) (float64, float64) {
	vp := g.viewports[len(g.viewports)-1]
	ndc := mgl32.TransformCoordinate(mgl32.Vec3{p.X(), p.Y(), 0}, g.projection)
	px := float64(vp.x) + (float64(ndc.X())+1)/2*float64(vp.width)
	py := float64(vp.y) + (1-float64(ndc.Y()))/2*float64(vp.height)
	return px, py
}

func (g *fakeGraphics) fillTriangle(v [3]mgl32.Vec2, c Color) {
	s := g.d.current
	if s == nil || len(g.viewports) == 0 {
		return
	}
	var xs, ys [3]float64
	for i, p := range v {
		xs[i], ys[i] = g.toPixel(p)
	}
	area := edge(xs[0], ys[0], xs[1], ys[1], xs[2], ys[2])
	if area == 0 {
		return
	}
	minX := int(math.Floor(math.Min(xs[0], math.Min(xs[1], xs[2]))))
	maxX := int(math.Ceil(math.Max(xs[0], math.Max(xs[1], xs[2]))))
	minY := int(math.Floor(math.Min(ys[0], math.Min(ys[1], ys[2]))))
	maxY := int(math.Ceil(math.Max(ys[0], math.Max(ys[1], ys[2]))))
	col := c.NRGBA()
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			w0 := edge(xs[1], ys[1], xs[2], ys[2], cx, cy)
			w1 := edge(xs[2], ys[2], xs[0], ys[0], cx, cy)
			w2 := edge(xs[0], ys[0], xs[1], ys[1], cx, cy)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				s.fb.Set(x, y, col)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
