// termview runs the simulation in a terminal: platforms and actor drawn as
// cells, arrow keys to move, space to jump. Handy on machines without a
// display stack for the ebiten build.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/sim"
)

const (
	// world units per terminal cell; rows are roughly twice as tall as
	// columns in most fonts, so the vertical scale is doubled.
	unitsPerCol = 8.0
	unitsPerRow = 16.0

	// terminals report no key-up, so a direction press holds for a short
	// window and a jump press auto-releases after the tick consumes it
	holdWindow = 150 * time.Millisecond
)

func main() {
	levelName := flag.String("level", levels.Default, "level name in levels/")
	flag.Parse()

	lvl, tn, err := levels.Load(*levelName)
	if err != nil {
		log.Fatalf("load level %s: %v", *levelName, err)
	}
	world := sim.NewWorld(lvl, tn)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	var (
		leftUntil  time.Time
		rightUntil time.Time
		jumpUntil  time.Time
	)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		now := <-ticker.C

		for drained := false; !drained; {
			select {
			case ev := <-events:
				key, ok := ev.(*tcell.EventKey)
				if !ok {
					continue
				}
				switch {
				case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q':
					return
				case key.Key() == tcell.KeyLeft || key.Rune() == 'a':
					leftUntil = now.Add(holdWindow)
				case key.Key() == tcell.KeyRight || key.Rune() == 'd':
					rightUntil = now.Add(holdWindow)
				case key.Rune() == ' ':
					world.Latch().Press()
					jumpUntil = now.Add(holdWindow)
				}
			default:
				drained = true
			}
		}

		in := sim.Snapshot{
			Left:  now.Before(leftUntil),
			Right: now.Before(rightUntil),
		}
		a := world.Tick(in, 1.0/60.0)
		if now.After(jumpUntil) {
			world.Latch().Release()
		}

		draw(screen, world, a)
	}
}

var (
	platformStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	actorStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func draw(screen tcell.Screen, world *sim.World, a sim.Actor) {
	screen.Clear()
	cols, rows := screen.Size()
	camX, _ := world.CameraOffset()

	for _, p := range world.Level().Platforms {
		c0 := int((p.L - camX) / unitsPerCol)
		c1 := int((p.R - camX) / unitsPerCol)
		r0 := int(p.B / unitsPerRow)
		r1 := int(p.T / unitsPerRow)
		for r := r0; r <= r1 && r < rows; r++ {
			if r < 1 {
				continue
			}
			for c := c0; c <= c1 && c < cols; c++ {
				if c < 0 {
					continue
				}
				screen.SetContent(c, r, '#', nil, platformStyle)
			}
		}
	}

	ac0 := int((a.X - camX) / unitsPerCol)
	ac1 := int((a.X + a.W - camX) / unitsPerCol)
	ar0 := int(a.Y / unitsPerRow)
	ar1 := int((a.Y + a.H) / unitsPerRow)
	for r := ar0; r <= ar1 && r < rows; r++ {
		if r < 1 {
			continue
		}
		for c := ac0; c <= ac1 && c < cols; c++ {
			if c < 0 {
				continue
			}
			screen.SetContent(c, r, '@', nil, actorStyle)
		}
	}

	hud := fmt.Sprintf("pos=(%.0f,%.0f) vel=(%.0f,%.0f) ground=%v  [arrows/ad move, space jump, q quit]",
		a.X, a.Y, a.VX, a.VY, a.OnGround)
	for i, ch := range hud {
		if i >= cols {
			break
		}
		screen.SetContent(i, 0, ch, nil, hudStyle)
	}

	screen.Show()
}
