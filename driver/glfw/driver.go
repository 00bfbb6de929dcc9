// Package glfwdriver implements the ccircle native layer on GLFW windows and
// legacy OpenGL 2.1 immediate-mode drawing.
package glfwdriver

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/ccircle"
)

func init() {
	// GLFW event handling and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

type Driver struct {
	glLoaded bool
	graphics graphics
}

func New() *Driver {
	return &Driver{}
}

// NewDisplay is a shortcut for ccircle.NewDisplay(New(), opts...).
func NewDisplay(opts ...ccircle.Option) *ccircle.Display {
	return ccircle.NewDisplay(New(), opts...)
}

func (d *Driver) Init() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) Terminate() {
	glfw.Terminate()
}

func (d *Driver) PollEvents() {
	glfw.PollEvents()
}

func (d *Driver) Graphics() ccircle.Graphics {
	return &d.graphics
}

func (d *Driver) CreateSurface(cfg ccircle.SurfaceConfig, sink ccircle.EventSink) (ccircle.Surface, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	applyPixelFormat(cfg.Format)

	win, err := createWindow(cfg)
	if err != nil {
		return nil, classify(err)
	}
	if cfg.X != nil && cfg.Y != nil {
		win.SetPos(*cfg.X, *cfg.Y)
	}

	s := &surface{win: win}
	if err := s.MakeCurrent(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: %w", ccircle.ErrContext, err)
	}
	if !d.glLoaded {
		if err := gl.Init(); err != nil {
			win.Destroy()
			return nil, fmt.Errorf("%w: gl.Init failed: %w", ccircle.ErrContext, err)
		}
		d.glLoaded = true
	}
	s.install(sink)
	return s, nil
}

// createWindow turns the panics GLFW raises for unexpected error codes, such
// as an unavailable pixel format, into errors.
func createWindow(cfg ccircle.SurfaceConfig) (win *glfw.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	win, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err == nil && win == nil {
		err = errors.New("glfw returned no window")
	}
	return win, err
}

func applyPixelFormat(f ccircle.PixelFormat) {
	channel := f.ColorBits / 3
	glfw.WindowHint(glfw.RedBits, channel)
	glfw.WindowHint(glfw.GreenBits, channel)
	glfw.WindowHint(glfw.BlueBits, channel)
	glfw.WindowHint(glfw.AlphaBits, f.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, f.DepthBits)
	glfw.WindowHint(glfw.StencilBits, f.StencilBits)
	if f.DoubleBuffer {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	} else {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.False)
	}
}

// classify maps GLFW creation errors onto the construction failure kinds.
func classify(err error) error {
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case glfw.FormatUnavailable:
			return fmt.Errorf("%w: %w", ccircle.ErrPixelFormat, err)
		case glfw.APIUnavailable, glfw.VersionUnavailable:
			return fmt.Errorf("%w: %w", ccircle.ErrContext, err)
		}
	}
	return fmt.Errorf("%w: %w", ccircle.ErrCreateWindow, err)
}
