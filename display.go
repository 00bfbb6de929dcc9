package ccircle

import (
	"fmt"

	"github.com/google/uuid"
)

// Display is the process-wide scope shared by all windows: the native driver,
// the one-time registry and the active-context slot.
type Display struct {
	driver   Driver
	graphics Graphics
	registry *Registry
	contexts *ContextManager
	logger   Logger
	fatal    FatalFunc
	windows  map[uuid.UUID]*Window
}

type Option func(*Display)

func WithLogger(logger Logger) Option {
	return func(d *Display) { d.logger = logger }
}

// WithFatal replaces the reporter used by MustCreate.
func WithFatal(fatal FatalFunc) Option {
	return func(d *Display) { d.fatal = fatal }
}

func WithContextManager(m *ContextManager) Option {
	return func(d *Display) { d.contexts = m }
}

func NewDisplay(driver Driver, opts ...Option) *Display {
	d := &Display{
		driver:   driver,
		graphics: driver.Graphics(),
		registry: NewRegistry(driver),
		windows:  make(map[uuid.UUID]*Window),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = NewNopLogger()
	}
	if d.contexts == nil {
		d.contexts = NewContextManager(d.logger)
	}
	if d.fatal == nil {
		d.fatal = defaultFatal(d.logger)
	}
	return d
}

func (d *Display) Logger() Logger                  { return d.logger }
func (d *Display) Registry() *Registry             { return d.registry }
func (d *Display) ContextManager() *ContextManager { return d.contexts }

// MustCreate is Create with the fatal policy: on failure the reporter is
// invoked and nil is returned if it comes back.
func (d *Display) MustCreate(cfg WindowConfig) *Window {
	w, err := d.Create(cfg)
	if err != nil {
		d.fatal(err.Error())
		return nil
	}
	return w
}

// OpenWindows returns the number of windows not yet closed.
func (d *Display) OpenWindows() int {
	return len(d.windows)
}

// Close destroys every window still open and tears the windowing system down.
func (d *Display) Close() {
	for _, w := range d.windows {
		w.close("display closed")
	}
	d.registry.Teardown()
}

func (d *Display) String() string {
	return fmt.Sprintf("Display(%d windows)", len(d.windows))
}
