package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riftfall/client"
	"github.com/lixenwraith/riftfall/parameter"
	"github.com/lixenwraith/riftfall/render"
	"github.com/lixenwraith/riftfall/render/terminal"
)

var (
	configFlag = flag.String("config", "riftfall.toml", "Path to the config file")
	riftFlag   = flag.String("rift", "", "Rift id to battle; default picks the first open rift")
	colorFlag  = flag.String("color", "", "Color mode override: full, mono")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/riftfall.log")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	app, err := client.Bootstrap(context.Background(), client.Options{
		ConfigPath: *configFlag,
		RiftID:     *riftFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "riftfall: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "riftfall: terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "riftfall: terminal init: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even when the loop panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "riftfall crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	colorMode := app.Config.Display.ColorMode
	if *colorFlag != "" {
		colorMode = *colorFlag
	}
	styles := terminal.NewStyles(colorMode)

	store := app.Controller.Store()
	surfaces := []render.Surface{
		terminal.NewSceneRenderer(screen, store, styles),
		terminal.NewHUDRenderer(screen, store, app.Controller.Phase, styles),
	}
	input := terminal.NewInputHandler(app.Controller.Dispatcher(), store, app.Config.Battle.DefaultSkillID)

	run(screen, surfaces, input, app.Controller.Tick)
}

// run drives the client: terminal events on one channel, the battle
// tick on the other. The tick dispatches queued events, advances the
// handshake, sweeps transients and redraws
func run(screen tcell.Screen, surfaces []render.Surface, input *terminal.InputHandler, tick func()) {
	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !input.Handle(ev) {
				return
			}

		case <-ticker.C:
			tick()

			screen.Clear()
			for _, s := range surfaces {
				s.Render()
			}
			screen.Show()
		}
	}
}
