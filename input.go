package ccircle

const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyShift
	KeyControl
	KeyAlt
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	KeyUnknown = -1
)

const maxInputCodes = 256

// Input is the per-window keyboard and mouse state, rebuilt from the events
// the pump dispatches. Just* flags and CharBuffer cover the latest Update only.
type Input struct {
	Pressed      [maxInputCodes]bool
	JustPressed  [maxInputCodes]bool
	JustReleased [maxInputCodes]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	WindowWidth, WindowHeight int
	CharBuffer                []rune
}

func (in *Input) beginFrame() {
	in.CharBuffer = nil
	in.JustPressed = [maxInputCodes]bool{}
	in.JustReleased = [maxInputCodes]bool{}
	in.MouseDeltaX = 0
	in.MouseDeltaY = 0
}

func (in *Input) apply(ev Event) {
	switch ev.Kind {
	case EventKey, EventMouseButton:
		if ev.Key < 0 || ev.Key >= maxInputCodes {
			return
		}
		switch ev.Action {
		case Press:
			if !in.Pressed[ev.Key] {
				in.JustPressed[ev.Key] = true
			}
			in.Pressed[ev.Key] = true
		case Release:
			if in.Pressed[ev.Key] {
				in.JustReleased[ev.Key] = true
			}
			in.Pressed[ev.Key] = false
		}
	case EventChar:
		in.CharBuffer = append(in.CharBuffer, ev.Char)
	case EventCursor:
		in.MouseDeltaX += ev.X - in.MouseX
		in.MouseDeltaY += ev.Y - in.MouseY
		in.MouseX = ev.X
		in.MouseY = ev.Y
	case EventResize:
		in.WindowWidth = ev.Width
		in.WindowHeight = ev.Height
	}
}

func (in *Input) IsPressed(code int) bool {
	return code >= 0 && code < maxInputCodes && in.Pressed[code]
}

func (in *Input) WasPressed(code int) bool {
	return code >= 0 && code < maxInputCodes && in.JustPressed[code]
}

func (in *Input) WasReleased(code int) bool {
	return code >= 0 && code < maxInputCodes && in.JustReleased[code]
}
