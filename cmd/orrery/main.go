package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/view"
	"github.com/lixenwraith/orrery/window"
)

func main() {
	// Panic Recovery: terminal is restored by the crash handler once registered
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %+v", cfg)

	var chimer view.Chimer
	if cfg.Audio {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without: %v", err)
		} else {
			defer chime.Cleanup()
			chimer = chime
		}
	}

	if cfg.Window {
		if err := window.Run(orbit.SolarSystem(), window.Options{
			Title:     view.Brand,
			TPS:       cfg.FPS,
			Increment: cfg.Increment,
			Chime:     chimer,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "orrery: window: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg, chimer); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func runTerminal(cfg config.Config, chimer view.Chimer) error {
	applyColorMode(cfg.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	queue := frame.NewQueue()
	orchestrator := render.NewRenderOrchestrator(screen)

	// Chimer must stay a nil interface when audio is off
	env := view.Env{
		Frames:    queue,
		Buffer:    orchestrator.Buffer(),
		Chime:     chimer,
		Increment: cfg.Increment,
	}
	router := view.NewRouter(env,
		view.NewHome(),
		view.NewAbout(),
		view.NewSolarView(orbit.SolarSystem()),
		view.NewPlatformerView(),
	)
	orchestrator.Register(router, render.PriorityView)
	orchestrator.Register(router.Navbar(), render.PriorityUI)

	_ = router.Navigate(cfg.Path)
	defer router.Close()

	eventChan := make(chan tcell.Event, constant.InputQueueSize)
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

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !router.HandleKey(ev) {
					log.Printf("exit requested")
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				orchestrator.Resize(w, h)
			}

		case now := <-frameTicker.C:
			queue.Dispatch(now)
			orchestrator.RenderFrame()
		}
	}
}
