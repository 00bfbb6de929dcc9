package main

import (
	"context"
	"flag"
	"math"
	"os"
	"os/signal"

	"github.com/gekko3d/ccircle"
	glfwdriver "github.com/gekko3d/ccircle/driver/glfw"
)

func main() {
	configPath := flag.String("config", "", "window config file (.yaml or .toml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := ccircle.NewDefaultLogger("ccircle", *debug)

	cfg := ccircle.NewWindowConfig("Let's just get it working!")
	if *configPath != "" {
		loaded, err := ccircle.LoadConfig(*configPath)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	display := glfwdriver.NewDisplay(ccircle.WithLogger(logger))
	defer display.Close()

	window := display.MustCreate(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sky, _ := ccircle.ColorNamed("cornflowerblue")
	sun, _ := ccircle.ColorNamed("gold")
	var phase float64

	err := ccircle.RunLoop(ctx, window, func(w *ccircle.Window, t ccircle.FrameTime) {
		phase += t.Dt.Seconds()
		if w.Input().IsPressed(ccircle.KeySpace) {
			phase = 0
		}

		width, height := w.ClientSize()
		fw, fh := float32(width), float32(height)

		w.Clear(sky.R, sky.G, sky.B)
		bar := float32(16 + 16*(1+math.Cos(phase)))
		w.DrawRectRGBA(16, 16, 128, bar, 1, 1, 1, 0.8)
		w.DrawRectColor(fw/2-38, fh/2-38, 76, 76, sun)
		w.DrawTriRGBA(fw/2, fh-16, fw/2-60, fh-96, fw/2+60, fh-96, 0.2, 0.8, 0.3, 1)
	})
	if err != nil {
		logger.Infof("stopped: %v", err)
	}
}
