package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbfolio/audio"
	"github.com/lixenwraith/orbfolio/config"
	"github.com/lixenwraith/orbfolio/parameter"
	"github.com/lixenwraith/orbfolio/render"
	"github.com/lixenwraith/orbfolio/scene"
	"github.com/lixenwraith/orbfolio/system"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Uint64("seed", 0, "Scene seed override (0 = config or clock)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to orbfolio.log")
)

func main() {
	flag.Parse()

	// Debug logging goes to a file; stdout belongs to the terminal UI
	log.SetOutput(io.Discard)
	if *debugFlag {
		if f, err := os.OpenFile("orbfolio.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbfolio: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbfolio: terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "orbfolio: terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, otherwise it is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "orbfolio crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents | tcell.MouseButtonEvents)
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	// Audio failure is never fatal: the engine degrades to silence
	engine, aerr := audio.NewEngine(cfg.Audio.Enabled && !*muteFlag, cfg.Audio.MasterVolume)
	if aerr != nil {
		// Visible after exit; the session continues without sound
		log.Printf("audio disabled: %v", aerr)
		defer fmt.Fprintf(os.Stderr, "orbfolio: audio disabled: %v\n", aerr)
	}
	defer engine.Stop()

	w, h := screen.Size()
	s := scene.New(cfg.ProjectList(), cfg.Scene.OrbSpacing, seed, cfg.Scene.Starfield)
	cam := render.NewCamera(cfg.Scene.CameraDistance, parameter.CameraFOV, w, h)
	renderer := render.New(screen, cam)
	animator := system.NewAnimator(s)
	resolver := system.NewResolver(s, renderer, engine)

	events := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	log.Printf("scene: %d orbs, seed %d", len(s.Orbs), seed)

	run(screen, s, renderer, animator, resolver, engine, events)
	screen.Fini()

	if n := animator.OrbPanics(); n > 0 {
		log.Printf("isolated orb panics: %d", n)
	}
}

// run owns the frame loop. All scene mutation happens on this goroutine;
// input events are drained between frames so there is nothing to lock
func run(screen tcell.Screen, s *scene.Scene, renderer *render.Renderer,
	animator *system.Animator, resolver *system.Resolver,
	engine *audio.Engine, events <-chan tcell.Event) {

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	themeIdx := 0
	var lastButtons tcell.ButtonMask
	last := time.Now()

	for {
		select {
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > parameter.MaxFrameDelta.Seconds() {
				dt = parameter.MaxFrameDelta.Seconds()
			}
			animator.Update(dt)
			renderer.Frame(s, animator.Time())

		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()

			case *tcell.EventMouse:
				x, y := ev.Position()
				resolver.PointerMove(x, y)
				buttons := ev.Buttons()
				if buttons&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0 {
					resolver.Click(x, y)
				}
				lastButtons = buttons

			case *tcell.EventKey:
				if handleKey(ev, s, resolver, animator, engine, &themeIdx) {
					return
				}
			}
		}
	}
}

// handleKey returns true when the app should quit
func handleKey(ev *tcell.EventKey, s *scene.Scene, resolver *system.Resolver,
	animator *system.Animator, engine *audio.Engine, themeIdx *int) bool {

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		if s.PanelOpen() {
			resolver.CloseProject()
			return false
		}
		return true
	case tcell.KeyEnter:
		resolver.KeyEnter()
		return false
	case tcell.KeyLeft, tcell.KeyUp:
		resolver.KeyNav(-1)
		return false
	case tcell.KeyRight, tcell.KeyDown:
		resolver.KeyNav(1)
		return false
	case tcell.KeyTab:
		resolver.KeyNav(1)
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'h', 'k':
		resolver.KeyNav(-1)
	case 'l', 'j':
		resolver.KeyNav(1)
	case ' ':
		animator.TogglePause()
	case 'm':
		engine.ToggleMute()
	case 't':
		*themeIdx = (*themeIdx + 1) % len(scene.Themes)
		scene.ApplyTheme(s, scene.Themes[*themeIdx])
	}
	return false
}
