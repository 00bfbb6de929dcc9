package glfwdriver

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/ccircle"
)

var errNotCurrent = errors.New("glfw: context did not become current")

type surface struct {
	win *glfw.Window
}

func (s *surface) MakeCurrent() error {
	s.win.MakeContextCurrent()
	if glfw.GetCurrentContext() != s.win {
		return errNotCurrent
	}
	return nil
}

func (s *surface) Show() {
	s.win.Show()
}

func (s *surface) ClientSize() (int, int) {
	return s.win.GetFramebufferSize()
}

func (s *surface) SwapBuffers() {
	s.win.SwapBuffers()
}

func (s *surface) Destroy() {
	if glfw.GetCurrentContext() == s.win {
		glfw.DetachCurrentContext()
	}
	s.win.Destroy()
}

// install routes native callbacks into sink. Callbacks never touch window
// state themselves; the pump interprets the queued events.
func (s *surface) install(sink ccircle.EventSink) {
	s.win.SetCloseCallback(func(w *glfw.Window) {
		w.SetShouldClose(false)
		sink(ccircle.Event{Kind: ccircle.EventClose})
	})

	s.win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		sink(ccircle.Event{
			Kind:   ccircle.EventKey,
			Key:    keyFromGlfw(key),
			Action: actionFromGlfw(action),
		})
	})

	s.win.SetCharCallback(func(w *glfw.Window, char rune) {
		sink(ccircle.Event{Kind: ccircle.EventChar, Char: char})
	})

	s.win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		code := ccircle.KeyUnknown
		switch button {
		case glfw.MouseButtonLeft:
			code = ccircle.MouseButtonLeft
		case glfw.MouseButtonRight:
			code = ccircle.MouseButtonRight
		case glfw.MouseButtonMiddle:
			code = ccircle.MouseButtonMiddle
		}
		sink(ccircle.Event{
			Kind:   ccircle.EventMouseButton,
			Key:    code,
			Action: actionFromGlfw(action),
		})
	})

	s.win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		sink(ccircle.Event{Kind: ccircle.EventCursor, X: x, Y: y})
	})

	s.win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		sink(ccircle.Event{Kind: ccircle.EventResize, Width: width, Height: height})
	})
}

func actionFromGlfw(a glfw.Action) ccircle.Action {
	switch a {
	case glfw.Press:
		return ccircle.Press
	case glfw.Repeat:
		return ccircle.Repeat
	}
	return ccircle.Release
}

func keyFromGlfw(k glfw.Key) int {
	if code, ok := glfwToKey[k]; ok {
		return code
	}
	return ccircle.KeyUnknown
}

var glfwToKey = map[glfw.Key]int{
	glfw.KeyA:            ccircle.KeyA,
	glfw.KeyB:            ccircle.KeyB,
	glfw.KeyC:            ccircle.KeyC,
	glfw.KeyD:            ccircle.KeyD,
	glfw.KeyE:            ccircle.KeyE,
	glfw.KeyF:            ccircle.KeyF,
	glfw.KeyG:            ccircle.KeyG,
	glfw.KeyH:            ccircle.KeyH,
	glfw.KeyI:            ccircle.KeyI,
	glfw.KeyJ:            ccircle.KeyJ,
	glfw.KeyK:            ccircle.KeyK,
	glfw.KeyL:            ccircle.KeyL,
	glfw.KeyM:            ccircle.KeyM,
	glfw.KeyN:            ccircle.KeyN,
	glfw.KeyO:            ccircle.KeyO,
	glfw.KeyP:            ccircle.KeyP,
	glfw.KeyQ:            ccircle.KeyQ,
	glfw.KeyR:            ccircle.KeyR,
	glfw.KeyS:            ccircle.KeyS,
	glfw.KeyT:            ccircle.KeyT,
	glfw.KeyU:            ccircle.KeyU,
	glfw.KeyV:            ccircle.KeyV,
	glfw.KeyW:            ccircle.KeyW,
	glfw.KeyX:            ccircle.KeyX,
	glfw.KeyY:            ccircle.KeyY,
	glfw.KeyZ:            ccircle.KeyZ,
	glfw.Key0:            ccircle.Key0,
	glfw.Key1:            ccircle.Key1,
	glfw.Key2:            ccircle.Key2,
	glfw.Key3:            ccircle.Key3,
	glfw.Key4:            ccircle.Key4,
	glfw.Key5:            ccircle.Key5,
	glfw.Key6:            ccircle.Key6,
	glfw.Key7:            ccircle.Key7,
	glfw.Key8:            ccircle.Key8,
	glfw.Key9:            ccircle.Key9,
	glfw.KeySpace:        ccircle.KeySpace,
	glfw.KeyEnter:        ccircle.KeyEnter,
	glfw.KeyEscape:       ccircle.KeyEscape,
	glfw.KeyTab:          ccircle.KeyTab,
	glfw.KeyBackspace:    ccircle.KeyBackspace,
	glfw.KeyRight:        ccircle.KeyRight,
	glfw.KeyLeft:         ccircle.KeyLeft,
	glfw.KeyDown:         ccircle.KeyDown,
	glfw.KeyUp:           ccircle.KeyUp,
	glfw.KeyLeftShift:    ccircle.KeyShift,
	glfw.KeyRightShift:   ccircle.KeyShift,
	glfw.KeyLeftControl:  ccircle.KeyControl,
	glfw.KeyRightControl: ccircle.KeyControl,
	glfw.KeyLeftAlt:      ccircle.KeyAlt,
	glfw.KeyRightAlt:     ccircle.KeyAlt,
}
