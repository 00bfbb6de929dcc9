package ccircle

import (
	"context"
	"time"
)

type FrameTime struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

// RunLoop drives w until it closes or ctx is done: frame draws, then the
// window updates. It returns ctx.Err() on cancellation and nil once the
// window has closed.
func RunLoop(ctx context.Context, w *Window, frame func(w *Window, t FrameTime)) error {
	t := FrameTime{Time: time.Now()}
	for w.IsOpen() {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()
		t.Dt = now.Sub(t.Time)
		t.Time = now

		frame(w, t)
		w.Update()
		t.Frame++
	}
	return nil
}
