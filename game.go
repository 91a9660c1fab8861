package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game is the frame driver: it paces ticks, owns the pause toggle, and
// clamps the per-tick time delta. The simulation world is the only thing
// that mutates actor or camera state; rendering and the pause UI consume
// snapshots.
type Game struct {
	frames    int
	levelName string
	debug     bool

	world    *sim.World
	input    *obj.Input
	renderer *obj.Renderer

	paused bool
	// resumedOrReloaded forces the next tick's dt to zero so no
	// accumulated delta lands on the actor after a pause or reload.
	resumedOrReloaded bool

	pauseUI *ebitenui.UI
	watcher *levels.Watcher
}

func NewGame(levelName string, debug bool) (*Game, error) {
	lvl, tn, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}

	world := sim.NewWorld(lvl, tn)
	if lvl.Width > baseWidth {
		world.SetCameraBounds(0, lvl.Width-baseWidth)
	}

	g := &Game{
		levelName: levelName,
		debug:     debug,
		world:     world,
		input:     obj.NewInput(),
		renderer:  obj.NewRenderer(),
	}
	g.pauseUI = NewPauseUI(g)

	if watcher, err := levels.NewWatcher("levels"); err == nil {
		g.watcher = watcher
	} else {
		// No levels/ directory on disk, e.g. running from a bare binary
		// with only the embedded level. Hot reload simply stays off.
		log.Printf("level watch disabled: %v", err)
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if !g.paused {
			g.resumedOrReloaded = true
		}
	}

	g.drainWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	in := g.input.Update(g.world.Latch())

	dt := 1.0 / float64(ebiten.TPS())
	if g.resumedOrReloaded {
		dt = 0
		g.resumedOrReloaded = false
	}
	g.world.Tick(in, dt)

	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("level file changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("level watch error: %v", err)
		default:
			if reload {
				g.reloadLevel()
			}
			return
		}
	}
}

func (g *Game) reloadLevel() {
	lvl, tn, err := levels.Load(g.levelName)
	if err != nil {
		log.Printf("reload level %s: %v", g.levelName, err)
		return
	}
	g.world = sim.NewWorld(lvl, tn)
	if lvl.Width > baseWidth {
		g.world.SetCameraBounds(0, lvl.Width-baseWidth)
	}
	g.resumedOrReloaded = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.world.CameraOffset()
	actor := g.world.Actor()

	g.renderer.Draw(screen, actor, g.world.Level(), camX, camY)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d  FPS: %.2f\npos=(%.1f, %.1f) vel=(%.1f, %.1f) ground=%v",
			g.frames, ebiten.ActualFPS(), actor.X, actor.Y, actor.VX, actor.VY, actor.OnGround))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
