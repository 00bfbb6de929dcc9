package ccircle

import (
	"errors"
	"os"
)

var (
	ErrRegistration = errors.New("ccircle: failed to register window class")
	ErrTerminated   = errors.New("ccircle: windowing system already terminated")
	ErrCreateWindow = errors.New("ccircle: failed to create window")
	ErrPixelFormat  = errors.New("ccircle: failed to set window pixel format")
	ErrContext      = errors.New("ccircle: failed to create or bind GL context")
)

// FatalFunc reports an unrecoverable failure. It is not expected to return.
type FatalFunc func(msg string)

func defaultFatal(logger Logger) FatalFunc {
	return func(msg string) {
		logger.Errorf("%s", msg)
		os.Exit(1)
	}
}
