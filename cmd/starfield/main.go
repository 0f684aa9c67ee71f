// Command starfield runs the star field as a full-screen terminal screensaver
//
// Keys: q/Esc quit, v toggle vertical drift, space pause
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/render/cell"
	"github.com/lixenwraith/starfield/starfield"
)

const logFileName = "starfield.log"

func main() {
	// Panic Recovery: Ensure terminal is reset even if the main loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	cfg, _ := settings.Starfield()

	if logFile := core.SetupLogging(settings.Debug, core.LogDir, logFileName); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	screen.HideCursor()
	screen.Clear()

	h := &host{
		screen:   screen,
		viewport: starfield.NewHostViewport(cell.PixelSize(screen.Size())),
		queue:    starfield.NewFrameQueue(),
	}
	h.field = starfield.Mount(cell.New(screen), h.viewport, h.queue, cfg,
		starfield.WithHooks(starfield.LogHooks(log.Default())))
	defer h.field.Unmount()

	h.run(settings.Interval())
}

// host is the single goroutine owning the frame queue, viewport and starfield
type host struct {
	screen   tcell.Screen
	viewport *starfield.HostViewport
	queue    *starfield.FrameQueue
	field    *starfield.Starfield
	paused   bool
}

func (h *host) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Resize and key events are marshalled into the frame loop
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	for {
		select {
		case ev := <-events:
			if !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			if !h.paused {
				h.queue.RunFrame(now)
			}
		}
	}
}

// handleEvent returns false when the program should exit
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := ev.Size()
		if h.viewport.Set(cell.PixelSize(cols, rows)) {
			log.Printf("resize: %dx%d cells", cols, rows)
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'v':
				h.toggleMode()
			case ' ':
				h.paused = !h.paused
			}
		}
	}
	return true
}

func (h *host) toggleMode() {
	next := starfield.ModeVertical
	if h.field.Mode() == starfield.ModeVertical {
		next = starfield.ModeNormal
	}
	h.field.SetMode(next)
	log.Printf("mode: %s", next)
}
