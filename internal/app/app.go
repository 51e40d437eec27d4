//go:build ebiten

package app

import (
	"context"
	"image/color"
	"time"

	"life3d/internal/camera"
	"life3d/internal/config"
	"life3d/internal/render"
	"life3d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const (
	advanceKey = ebiten.KeyT
	hudWidth   = 260
)

var clearColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Game adapts the simulation and the free-flying camera to ebiten.Game.
type Game struct {
	sim      *Simulation
	cam      camera.Camera
	settings camera.Settings
	seed     int64

	painter *render.ScenePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	captured     bool
	lastX, lastY int
	havePrev     bool

	ctx context.Context
	log logrus.FieldLogger
}

// New constructs a Game from cfg.
func New(cfg config.Config, log logrus.FieldLogger) (*Game, error) {
	sim, err := NewSimulation(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:      sim,
		cam:      cfg.Camera(),
		settings: cfg.CameraSettings(),
		seed:     cfg.Seed,
		painter:  render.NewScenePainter(cfg.Spacing),
		overlay:  ui.NewOverlay(sim.Field()),
		hud:      ui.NewHUD(hudWidth),
		ctx:      context.Background(),
		log:      sim.log,
	}, nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.WithField("generation", g.sim.Field().Generation()).Info("quit requested")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.setCaptured(!g.captured)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.seed = time.Now().UnixNano()
		if err := g.sim.Reseed(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.sim.Clear()
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	dt := time.Second / time.Duration(tps)
	g.cam = g.cam.Update(g.pollInput(), dt, g.settings)

	if _, err := g.sim.Tick(g.ctx, ebiten.IsKeyPressed(advanceKey), inpututil.IsKeyJustPressed(advanceKey)); err != nil {
		g.log.WithError(err).Warn("advance failed")
	}

	g.overlay.Update()
	g.hud.Update(ui.Snapshot(g.sim.Status(), ui.CameraStatus(g.cam)))
	return nil
}

func (g *Game) pollInput() camera.Input {
	in := camera.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD),
		Ascend:   ebiten.IsKeyPressed(ebiten.KeySpace),
		Descend:  ebiten.IsKeyPressed(ebiten.KeyControlLeft),
	}
	if !g.captured {
		g.havePrev = false
		return in
	}
	x, y := ebiten.CursorPosition()
	if g.havePrev {
		in.MouseDX = float64(x - g.lastX)
		in.MouseDY = float64(y - g.lastY)
	}
	g.lastX, g.lastY, g.havePrev = x, y, true
	return in
}

func (g *Game) setCaptured(on bool) {
	g.captured = on
	g.havePrev = false
	if on {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw renders the field through the camera plus the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	scene := render.Scene{
		Projection: g.settings.Projection(float64(w) / float64(h)),
		View:       g.cam.View(),
		Model:      render.DefaultModel(),
	}
	g.painter.Draw(screen, g.sim.Field(), scene)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Capture grabs the mouse for looking around. Tab toggles it at runtime.
func (g *Game) Capture() { g.setCaptured(true) }
