package ccircle

// Update is the per-frame tick. It drains pending events without blocking;
// when a quit is observed the window closes and nothing is presented.
// Otherwise the back buffer is presented and the next frame is cleared to the
// background colour with alpha blending enabled.
//
// Update on a closed window does nothing.
func (w *Window) Update() {
	if !w.IsOpen() {
		return
	}
	w.input.beginFrame()
	w.display.driver.PollEvents()

	if w.drain() {
		return
	}

	if !w.activate("update") {
		return
	}
	w.surface.SwapBuffers()
	g := w.display.graphics
	g.ClearColor(Background.R, Background.G, Background.B, Background.A)
	g.Clear()
	g.EnableBlend()
}

// drain consumes the queued events in order and reports whether the window
// quit. Events queued behind a quit are dropped.
func (w *Window) drain() bool {
	for len(w.queue) > 0 {
		ev := w.queue[0]
		w.queue = w.queue[1:]

		switch {
		case ev.Kind == EventQuit:
			w.close("quit")
			return true
		case ev.requestsDestroy():
			// Destroying the window produces the quit notification.
			w.queue = append([]Event{{Kind: EventQuit}}, w.queue...)
			continue
		}

		w.input.apply(ev)
		if w.handler != nil {
			w.handler(w, ev)
		}
	}
	w.queue = w.queue[:0]
	return false
}
