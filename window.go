package ccircle

import (
	"fmt"

	"github.com/google/uuid"
)

type State int

const (
	StateOpen State = iota
	StateClosed
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Window pairs one native window with its GL context. Both are created in
// Create and destroyed together when the pump observes a quit.
type Window struct {
	ID uuid.UUID

	display *Display
	surface Surface
	title   string
	state   State
	queue   []Event
	input   Input
	handler EventHandler
}

// Create opens a window. It either returns an open window or an error; in the
// error case no native resource is left behind.
func (d *Display) Create(cfg WindowConfig) (*Window, error) {
	if err := d.registry.Ensure(); err != nil {
		return nil, err
	}

	sc := cfg.surfaceConfig()
	w := &Window{
		ID:      uuid.New(),
		display: d,
		title:   sc.Title,
		state:   StateOpen,
	}

	// The driver may bind or unbind contexts while it builds the surface.
	d.contexts.invalidate()
	surface, err := d.driver.CreateSurface(sc, w.enqueue)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", sc.Title, err)
	}
	w.surface = surface

	// The new context is bound right away, so it becomes the active one.
	if _, err := d.contexts.MakeActive(w); err != nil {
		d.contexts.Release(w)
		surface.Destroy()
		return nil, fmt.Errorf("%w: %w", ErrContext, err)
	}

	// GLFW has no separate paint request; the first frame is cleared to the
	// background and presented instead.
	surface.Show()
	d.graphics.EnableSmoothing(2.0, 1.0)
	d.graphics.ClearColor(Background.R, Background.G, Background.B, Background.A)
	d.graphics.Clear()
	surface.SwapBuffers()

	d.windows[w.ID] = w
	d.logger.Infof("window %s opened: %q %dx%d", w.ID, sc.Title, sc.Width, sc.Height)
	return w, nil
}

func (w *Window) IsOpen() bool {
	return w.state == StateOpen
}

func (w *Window) State() State  { return w.state }
func (w *Window) Title() string { return w.title }

// Input returns the keyboard and mouse state as of the latest Update.
func (w *Window) Input() *Input {
	return &w.input
}

// SetEventHandler installs a callback for events the pump dispatches.
// Destroy requests are handled by the pump and never reach it.
func (w *Window) SetEventHandler(h EventHandler) {
	w.handler = h
}

// ClientSize returns the current drawable size, or zero once closed.
func (w *Window) ClientSize() (int, int) {
	if !w.IsOpen() {
		return 0, 0
	}
	return w.surface.ClientSize()
}

func (w *Window) enqueue(ev Event) {
	if w.state == StateClosed {
		return
	}
	w.queue = append(w.queue, ev)
}

// close performs the OPEN -> CLOSED transition. The context slot is released
// before the surface so no stale binding outlives the context.
func (w *Window) close(reason string) {
	if w.state == StateClosed {
		return
	}
	w.state = StateClosed
	w.queue = nil
	w.display.contexts.Release(w)
	w.surface.Destroy()
	delete(w.display.windows, w.ID)
	w.display.logger.Infof("window %s closed: %s", w.ID, reason)
}

// activate binds this window for drawing. It returns false for closed windows.
func (w *Window) activate(op string) bool {
	if !w.IsOpen() {
		w.display.logger.Warnf("%s on closed window %s ignored", op, w.ID)
		return false
	}
	if _, err := w.display.contexts.MakeActive(w); err != nil {
		w.display.logger.Errorf("%s: bind context of window %s: %v", op, w.ID, err)
		return false
	}
	return true
}
