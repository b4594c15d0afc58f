package cadence

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen before DrawFunc runs. The zero value leaves
	// the screen as ebiten cleared it.
	Background Color
}

// Driver adapts a Scheduler to ebiten's game loop. Each ebiten Update calls
// UpdateFunc, if set, and then ticks the scheduler by one frame.
type Driver struct {
	Scheduler *Scheduler
	Width     int
	Height    int

	// UpdateFunc runs before the scheduler ticks. A non-nil error stops the
	// game.
	UpdateFunc func() error
	// DrawFunc renders the frame.
	DrawFunc func(screen *ebiten.Image)

	showFPS    bool
	background Color
	fpsImage   *ebiten.Image
	fpsDrawn   time.Time
}

// NewDriver creates a driver for s with the given logical screen size.
func NewDriver(s *Scheduler, width, height int) *Driver {
	if s == nil {
		panic("cadence: NewDriver requires a non-nil scheduler")
	}
	return &Driver{Scheduler: s, Width: width, Height: height}
}

// FrameDelta returns the duration of one ebiten tick. When ebiten runs with
// an uncapped tick rate it returns zero and the driver falls back to
// wall-clock deltas.
func FrameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

// Update implements ebiten.Game.
func (d *Driver) Update() error {
	if d.UpdateFunc != nil {
		if err := d.UpdateFunc(); err != nil {
			return err
		}
	}
	dt := FrameDelta()
	if dt == 0 {
		d.Scheduler.Update()
	} else {
		d.Scheduler.Tick(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *Driver) Draw(screen *ebiten.Image) {
	if d.background.A > 0 {
		screen.Fill(d.background.RGBA())
	}
	if d.DrawFunc != nil {
		d.DrawFunc(screen)
	}
	if d.showFPS {
		d.drawFPS(screen)
	}
}

// Layout implements ebiten.Game.
func (d *Driver) Layout(_, _ int) (int, int) {
	return d.Width, d.Height
}

// drawFPS refreshes the counter about twice a second and draws it in the
// top-left corner.
func (d *Driver) drawFPS(screen *ebiten.Image) {
	if d.fpsImage == nil {
		d.fpsImage = ebiten.NewImage(100, 32)
	}
	if now := time.Now(); now.Sub(d.fpsDrawn) >= 500*time.Millisecond {
		d.fpsDrawn = now
		d.fpsImage.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(d.fpsImage, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(d.fpsImage, nil)
}

// Run opens a window and drives d until the window closes or UpdateFunc
// returns an error.
func Run(d *Driver, cfg RunConfig) error {
	if cfg.Width > 0 {
		d.Width = cfg.Width
	}
	if cfg.Height > 0 {
		d.Height = cfg.Height
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("cadence: invalid screen size %dx%d", d.Width, d.Height)
	}
	d.showFPS = cfg.ShowFPS
	d.background = cfg.Background

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(d.Width, d.Height)
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
