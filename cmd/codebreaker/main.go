package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/codebreaker/audio"
	"github.com/lixenwraith/codebreaker/config"
	"github.com/lixenwraith/codebreaker/console"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/engine"
	"github.com/lixenwraith/codebreaker/input"
	"github.com/lixenwraith/codebreaker/mode"
	"github.com/lixenwraith/codebreaker/render"
	"github.com/lixenwraith/codebreaker/status"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args, nil)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "codebreaker: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	session := status.NewSession(status.NewRegistry())

	if cfg.Headless {
		return runHeadless(cfg, session)
	}

	sound := audio.NewSoundManager(audio.DefaultAudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs silently
		log.Warn("audio initialization failed, continuing without sound", "err", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(cfg.Mute)

	return runTerminal(cfg, sound, session)
}

// runHeadless plays on stdin/stdout with a minimum-size board
func runHeadless(cfg config.Config, session *status.Session) int {
	ec := cfg.Engine(engine.MinWidth(cfg.Spacing), engine.MinHeight(cfg.Attempts, cfg.Spacing))
	game, err := engine.NewGame(ec, cfg.Generator())
	if err != nil {
		fmt.Fprintf(os.Stderr, "codebreaker: %v\n", err)
		return 1
	}
	game.AddListener(session)

	router := mode.NewRouter(game, mode.NewMenu(), input.NewMachine(), nil)
	stats := func() string { return session.Stats().String() }
	if err := console.New(router, stats, os.Stdin, os.Stdout).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "codebreaker: %v\n", err)
		return 1
	}
	return 0
}

func runTerminal(cfg config.Config, sound *audio.SoundManager, session *status.Session) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	crashScreen = screen
	defer func() {
		handleCrash(recover())
	}()

	width, height := screen.Size()
	game, err := engine.NewGame(cfg.Engine(width, height), cfg.Generator())
	if err != nil {
		screen.Fini()
		var cerr *engine.ConfigurationError
		if errors.As(err, &cerr) && cerr.Need > 0 {
			fmt.Fprintf(os.Stderr, "codebreaker: terminal %s is %d, need at least %d\n", cerr.Field, cerr.Have, cerr.Need)
		} else {
			fmt.Fprintf(os.Stderr, "codebreaker: %v\n", err)
		}
		return 1
	}

	renderer := render.NewTerminalRenderer(screen, cfg.Attempts, cfg.Spacing)
	game.AddListener(sound)
	game.AddListener(session)
	game.AddListener(renderer)

	machine := input.NewMachine()
	router := mode.NewRouter(game, mode.NewMenu(), machine, sound)
	clock := engine.NewDeltaClock(engine.NewMonotonicTimeProvider())

	log.Info("game started", "width", width, "height", height, "attempts", cfg.Attempts, "debug", cfg.Debug)

	eventChan := make(chan tcell.Event, 256)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	gameTicker := time.NewTicker(constants.GameUpdateInterval)
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				renderer.Resize(resize.Size())
				screen.Sync()
			}
			if !router.Handle(machine.Process(ev)) {
				log.Info("quit", "rounds", session.Stats().Rounds)
				return 0
			}

		case <-gameTicker.C:
			router.Tick(clock.Tick())

		case <-frameTicker.C:
			renderer.Update(constants.FrameUpdateInterval)
			renderer.RenderFrame(game, router.Menu(), session.Stats().String())
		}
	}
}
