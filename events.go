package ccircle

type EventKind int

const (
	// EventClose is a close request from the window chrome.
	EventClose EventKind = iota
	// EventQuit is the destroy notification; it ends the window's life.
	EventQuit
	EventKey
	EventChar
	EventMouseButton
	EventCursor
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventQuit:
		return "quit"
	case EventKey:
		return "key"
	case EventChar:
		return "char"
	case EventMouseButton:
		return "mouse-button"
	case EventCursor:
		return "cursor"
	case EventResize:
		return "resize"
	}
	return "unknown"
}

type Action int

const (
	Release Action = iota
	Press
	Repeat
)

type Event struct {
	Kind   EventKind
	Key    int
	Action Action
	Char   rune
	X, Y   float64
	Width  int
	Height int
}

// EventHandler observes every event the pump dispatches to a window.
type EventHandler func(w *Window, ev Event)

// requestsDestroy reports whether ev asks the window to be destroyed.
func (ev Event) requestsDestroy() bool {
	switch ev.Kind {
	case EventClose:
		return true
	case EventKey:
		return ev.Key == KeyEscape && ev.Action == Press
	}
	return false
}
