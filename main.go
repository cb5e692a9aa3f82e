package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/eqpanel/panel"
)

// EQPanel implements ebiten.Game interface.
type EQPanel struct {
	panel     *panel.Panel
	surface   *screenSurface
	debugMode bool

	// Logical screen size, matching the target display
	width  int
	height int
}

func (g *EQPanel) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}

	g.handleTouchEvents()
	g.handleMouse()

	if g.panel.Poll() && g.debugMode {
		s := g.panel.State()
		log.Printf("playing=%v stage=%d filter=%v", s.Playing, s.Stage(), s.Current().Filter)
	}
	return nil
}

func (g *EQPanel) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.surface.target(screen)
	g.panel.Draw(g.surface)

	if g.debugMode {
		s := g.panel.State()
		st := s.Current()
		debugText := fmt.Sprintf("TPS: %.1f\nStage %d %v\nF=%.1f Q=%.2f G=%.1f",
			ebiten.ActualTPS(), s.Stage(), st.Filter, st.Frequency, st.Q, st.Gain)
		ebitenutil.DebugPrintAt(screen, debugText, 0, g.height-48)
	}
}

func (g *EQPanel) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "Panel configuration file (TOML)")
	writeConfig := flag.String("write-config", "", "Write the default configuration to this file and exit")
	debug := flag.Bool("debug", false, "Show the debug overlay and log state changes")
	scale := flag.Int("scale", 2, "Window scale factor")
	flag.Parse()

	if *writeConfig != "" {
		if err := panel.DefaultConfig().Write(*writeConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote default configuration to %s", *writeConfig)
		os.Exit(0)
	}

	cfg, err := panel.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	p, err := panel.New(cfg)
	if err != nil {
		log.Fatalf("Couldn't build panel: %v", err)
	}

	app := &EQPanel{
		panel:     p,
		surface:   newScreenSurface(),
		debugMode: *debug,
		width:     cfg.Width,
		height:    cfg.Height,
	}

	windowScale := max(*scale, 1)
	ebiten.SetWindowSize(cfg.Width*windowScale, cfg.Height*windowScale)
	ebiten.SetWindowTitle("EQ Panel")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
