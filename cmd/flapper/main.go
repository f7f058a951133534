package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flapper/asset"
	"github.com/lixenwraith/flapper/core"
	"github.com/lixenwraith/flapper/engine"
	"github.com/lixenwraith/flapper/input"
	"github.com/lixenwraith/flapper/parameter"
	"github.com/lixenwraith/flapper/render"
	"github.com/lixenwraith/flapper/status"
	"github.com/lixenwraith/flapper/system"
	"github.com/lixenwraith/flapper/vmath"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/flapper.log")
	seedFlag   = flag.Uint64("seed", 0, "Obstacle layout seed, 0 picks one from the clock")
	fpsFlag    = flag.Int("fps", parameter.DefaultFPS, "Frames per second")
	keysFlag   = flag.String("keys", "", "TOML keymap overriding the default bindings")
	statusFlag = flag.Bool("status", false, "Show the metrics line")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if code := finish(run(), logFile); code != 0 {
		os.Exit(code)
	}
}

// finish reports err and closes the log file before the process exit code is chosen
func finish(err error, logFile *os.File) int {
	code := 0
	if err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "flapper: %v\n", err)
		code = 1
	}
	if logFile != nil {
		logFile.Close()
	}
	return code
}

func run() error {
	keys, err := loadKeyTable(*keysFlag)
	if err != nil {
		return err
	}

	manifest, err := asset.LoadManifest(asset.FS, parameter.ManifestPath)
	if err != nil {
		return err
	}
	log.Printf("manifest: sprites %s", strings.Join(manifest.Names(), ", "))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	reg := status.NewRegistry()
	loader := asset.NewLoader(asset.FS, reg)

	world := engine.NewWorld()
	system.RegisterResources(world, loader, reg)
	sim := system.NewSimulation(world)

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if err := system.Bootstrap(world, sim.Loading, loader, manifest, vmath.NewFastRand(seed)); err != nil {
		return err
	}

	names := make([]string, 0, 5)
	for _, s := range sim.Systems() {
		names = append(names, s.Name())
	}
	log.Printf("systems: %s, seed %d, entities %d", strings.Join(names, " > "), seed, world.EntityCount())

	renderer := render.NewTerminalRenderer(screen, loader, reg, *statusFlag || *debugFlag)
	logViewport(renderer.Viewport())

	handler := input.NewHandler(keys)
	clock := engine.NewClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	fps := *fpsFlag
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	frameTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := handler.Process(ev)
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("quit: %s", reg.Summary())
				return nil
			case input.IntentPause:
				log.Printf("pause: %v", clock.TogglePause())
			case input.IntentResize:
				screen.Sync()
				logViewport(renderer.Resize())
			}

		case <-frameTicker.C:
			paused := clock.IsPaused()
			if paused {
				// Presses made while paused are dropped
				handler.ConsumeJump()
			} else {
				sim.Tick(clock.Delta(), handler.ConsumeJump())
			}
			renderer.RenderFrame(world, paused)
		}
	}
}

// loadKeyTable merges an optional keymap file over the default bindings
func loadKeyTable(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return input.MergeKeyTable(keys, override), nil
}

func logViewport(vp render.Viewport) {
	log.Printf("viewport: world %.0fx%.0f on %dx%d cells (%.1fx%.1f units per cell)",
		parameter.ViewportWidth, parameter.ViewportHeight, vp.Cols, vp.Rows, vp.CellWidth, vp.CellHeight)
}
