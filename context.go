package ccircle

// ContextManager tracks the one window whose GL context is current. Every
// bind goes through MakeActive, so at most one context is bound at a time.
// It is not safe for concurrent use; all windows must be driven from the
// thread that owns the windowing system.
type ContextManager struct {
	active  *Window
	rebinds int
	logger  Logger
}

func NewContextManager(logger Logger) *ContextManager {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &ContextManager{logger: logger}
}

// MakeActive binds w's context unless it is already bound. It reports whether
// a rebind happened. A rebind also recomputes w's viewport.
func (m *ContextManager) MakeActive(w *Window) (bool, error) {
	if w == m.active {
		return false, nil
	}
	if err := w.surface.MakeCurrent(); err != nil {
		return false, err
	}
	if m.logger.DebugEnabled() {
		m.logger.Debugf("context switch to window %s (%q)", w.ID, w.title)
	}
	m.active = w
	m.rebinds++
	w.setViewport()
	return true, nil
}

// Release forgets w if it is the active window. Called before w's context is destroyed.
func (m *ContextManager) Release(w *Window) {
	if m.active == w {
		m.active = nil
	}
}

// invalidate forgets the active window without unbinding anything. Used when
// native code outside MakeActive may have changed the current context, so the
// next MakeActive always rebinds.
func (m *ContextManager) invalidate() {
	m.active = nil
}

func (m *ContextManager) Active() *Window {
	return m.active
}

// Rebinds returns how many times a context has been bound.
func (m *ContextManager) Rebinds() int {
	return m.rebinds
}
