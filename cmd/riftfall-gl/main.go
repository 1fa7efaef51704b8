package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/riftfall/client"
	"github.com/lixenwraith/riftfall/render/scene"
)

var (
	configFlag = flag.String("config", "riftfall.toml", "Path to the config file")
	riftFlag   = flag.String("rift", "", "Rift id to battle; default picks the first open rift")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to stderr")
)

func main() {
	flag.Parse()

	if !*debugFlag {
		log.SetOutput(io.Discard)
	}

	app, err := client.Bootstrap(context.Background(), client.Options{
		ConfigPath: *configFlag,
		RiftID:     *riftFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "riftfall-gl: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	game := scene.NewGame(
		app.Controller.Store(),
		app.Controller.Dispatcher(),
		app.Controller.Phase,
		app.Controller.Tick,
		app.Config.Battle.DefaultSkillID,
	)

	ebiten.SetWindowSize(960, 540)
	ebiten.SetWindowTitle("Riftfall")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, scene.ErrQuit) {
		fmt.Fprintf(os.Stderr, "riftfall-gl: %v\n", err)
		os.Exit(1)
	}
}
