package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/levels"
)

func main() {
	levelName := flag.String("level", levels.Default, "level name in levels/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "show the pose/FPS overlay")
	flag.Parse()

	game, err := NewGame(*levelName, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
