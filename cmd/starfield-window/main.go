// Command starfield-window shows the star field in a desktop window, one frame per tick
//
// Keys: q/Esc quit, v toggle vertical drift, h toggle stats overlay
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/render/window"
	"github.com/lixenwraith/starfield/starfield"
)

const logFileName = "starfield-window.log"

type options struct {
	config.Settings
	Width  int `env:"STARFIELD_WINDOW_WIDTH"  envDefault:"1024"`
	Height int `env:"STARFIELD_WINDOW_HEIGHT" envDefault:"640"`
}

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
		os.Exit(1)
	}

	var opts options
	if err := config.ParseEnv(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	opts.RegisterFlags(flag.CommandLine)
	flag.IntVar(&opts.Width, "w", opts.Width, "window width")
	flag.IntVar(&opts.Height, "h", opts.Height, "window height")
	flag.Parse()

	cfg, err := opts.Starfield()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := core.SetupLogging(opts.Debug, core.LogDir, logFileName); logFile != nil {
		defer logFile.Close()
	}

	ebiten.SetWindowTitle("starfield")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(cfg, opts.Width, opts.Height)
	defer g.unmount()

	if err := ebiten.RunGame(g); err != nil {
		log.Printf("window: %v", err)
		fmt.Fprintf(os.Stderr, "Window failed: %v\n", err)
		os.Exit(1)
	}
}

// game adapts the ebiten loop: Layout feeds the viewport, Update runs one frame, Draw composites
type game struct {
	cfg      starfield.Config
	surface  *window.Surface
	viewport *starfield.HostViewport
	queue    *starfield.FrameQueue
	field    *starfield.Starfield

	width, height int
	hud           bool
}

func newGame(cfg starfield.Config, width, height int) *game {
	return &game{
		cfg:      cfg,
		surface:  window.New(0, 0),
		viewport: starfield.NewHostViewport(width, height),
		queue:    starfield.NewFrameQueue(),
		width:    width,
		height:   height,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Mount lazily so the first generation uses the real layout size
	if g.field == nil {
		g.viewport.Set(g.width, g.height)
		g.field = starfield.Mount(g.surface, g.viewport, g.queue, g.cfg,
			starfield.WithHooks(starfield.LogHooks(log.Default())))
	} else {
		g.viewport.Set(g.width, g.height)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		next := starfield.ModeVertical
		if g.field.Mode() == starfield.ModeVertical {
			next = starfield.ModeNormal
		}
		g.field.SetMode(next)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	g.queue.RunFrame(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
	if !g.hud || g.field == nil {
		return
	}
	st := g.field.Stats()
	w, h := g.field.Size()
	hud := fmt.Sprintf("%dx%d  stars %d  frames %d  regen %d  mode %s  %.0f fps",
		w, h, st.Stars, st.Frames, st.Generations, g.field.Mode(), ebiten.ActualFPS())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.RGBA{0x80, 0x80, 0x80, 0xff})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) unmount() {
	if g.field != nil {
		g.field.Unmount()
	}
}
