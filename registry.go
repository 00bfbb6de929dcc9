package ccircle

import (
	"fmt"
	"sync"
)

// Registry performs the one-time registration of the native window kind.
// Ensure is idempotent; Teardown is final for the process.
type Registry struct {
	mu         sync.Mutex
	driver     Driver
	registered bool
	terminated bool
}

func NewRegistry(driver Driver) *Registry {
	return &Registry{driver: driver}
}

func (r *Registry) Ensure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.terminated {
		return ErrTerminated
	}
	if r.registered {
		return nil
	}
	if err := r.driver.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistration, err)
	}
	r.registered = true
	return nil
}

func (r *Registry) Registered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registered
}

// Teardown releases the native windowing system. Windows must be closed first.
func (r *Registry) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registered && !r.terminated {
		r.driver.Terminate()
	}
	r.terminated = true
}
