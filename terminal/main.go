//go:build !js

// Command terminal plays the game in a terminal with half-block graphics.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/game"
	"github.com/simukka/henshin-strike/theme"
)

// holdMs is how long a key counts as held after its last press or repeat.
// Terminals report no key releases.
const holdMs = 180

var specialKeys = map[tcell.Key]string{
	tcell.KeyLeft:   game.KeyArrowLeft,
	tcell.KeyRight:  game.KeyArrowRight,
	tcell.KeyUp:     game.KeyArrowUp,
	tcell.KeyDown:   game.KeyArrowDown,
	tcell.KeyEnter:  game.KeyEnter,
	tcell.KeyEscape: game.KeyEscape,
	tcell.KeyF9:     game.KeyF9,
	tcell.KeyF10:    game.KeyF10,
}

// keyCode converts a tcell key event to a DOM code name.
func keyCode(ev *tcell.EventKey) (string, bool) {
	if code, ok := specialKeys[ev.Key()]; ok {
		return code, true
	}
	if ev.Key() != tcell.KeyRune {
		return "", false
	}
	r := ev.Rune()
	switch {
	case r == ' ':
		return game.KeySpace, true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + strings.ToUpper(string(r)), true
	case r >= '0' && r <= '9':
		return "Digit" + string(r), true
	}
	return "", false
}

// heldKeys releases keys that have not repeated recently.
type heldKeys map[string]time.Time

func (h heldKeys) press(code string, now time.Time) bool {
	_, held := h[code]
	h[code] = now
	return !held
}

func (h heldKeys) expire(now time.Time, release func(string)) {
	for code, at := range h {
		if now.Sub(at) > holdMs*time.Millisecond {
			delete(h, code)
			release(code)
		}
	}
}

type terminalGame struct {
	screen    tcell.Screen
	surface   *Surface
	director  *game.Director
	held      heldKeys
	start     time.Time
	mouseDown bool
}

// handleEvent applies one tcell event. It returns false to quit.
func (g *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		code, ok := keyCode(ev)
		if !ok {
			return true
		}
		// Repeats of a held key only refresh it, except fire which
		// autofires on repeat.
		if g.held.press(code, time.Now()) || game.TranslateKey(code) == game.KeySpace {
			g.director.KeyDown(code)
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := g.surface.CanvasPoint(col, row)
		g.director.PointerMove(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.mouseDown {
			g.director.Click(x, y)
		}
		g.mouseDown = down
	case *tcell.EventResize:
		g.surface.Resize(g.screen.Size())
		g.screen.Sync()
	}
	return true
}

func (g *terminalGame) frame() {
	g.held.expire(time.Now(), g.director.KeyUp)
	g.surface.Begin()
	now := float64(time.Since(g.start)) / float64(time.Millisecond)
	g.director.Frame(now, g.surface)
	g.surface.Flush(g.screen)
}

func (g *terminalGame) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Optional tuning override file")
	seed := flag.Uint("seed", 0, "Session seed (0 = time based)")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write debug log to this file")
	flag.Parse()

	// The screen owns stdout, so logs go to a file or nowhere.
	game.EnableDebug = *logPath != ""
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		tuning = t
	}
	themes, err := theme.NewProvider()
	if err != nil {
		log.Printf("Theme data is broken, using fallback: %v", err)
		themes = theme.FallbackProvider()
	}

	var sink audio.Sink = audio.Nop{}
	if !*mute {
		s, err := audio.NewSpeakerSink(audio.NewBank(audio.AudioConfig))
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer s.Close()
			sink = s
		}
	}

	sd := uint32(*seed)
	if sd == 0 {
		sd = uint32(time.Now().UnixNano())
	}
	d, err := game.NewDirector(game.Options{Tuning: tuning, Themes: themes, Sound: sink, Seed: sd})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	g := &terminalGame{
		screen:   screen,
		surface:  NewSurface(tuning.Canvas.Width, tuning.Canvas.Height, cols, rows),
		director: d,
		held:     make(heldKeys),
		start:    time.Now(),
	}
	g.run(time.Duration(tuning.Loop.TickMillis) * time.Millisecond)
}
