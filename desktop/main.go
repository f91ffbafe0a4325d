//go:build !js

// Command desktop runs the game in an Ebitengine window.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/game"
	"github.com/simukka/henshin-strike/theme"
)

// keyCodes maps Ebitengine keys to the DOM code names the game uses.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:   game.KeyArrowLeft,
	ebiten.KeyArrowRight:  game.KeyArrowRight,
	ebiten.KeyArrowUp:     game.KeyArrowUp,
	ebiten.KeyArrowDown:   game.KeyArrowDown,
	ebiten.KeySpace:       game.KeySpace,
	ebiten.KeyEnter:       game.KeyEnter,
	ebiten.KeyEscape:      game.KeyEscape,
	ebiten.KeyA:           "KeyA",
	ebiten.KeyD:           "KeyD",
	ebiten.KeyE:           "KeyE",
	ebiten.KeyQ:           "KeyQ",
	ebiten.KeyR:           "KeyR",
	ebiten.KeyS:           "KeyS",
	ebiten.KeyW:           "KeyW",
	ebiten.KeyX:           "KeyX",
	ebiten.KeyZ:           "KeyZ",
	ebiten.KeyNumpad0:     "Numpad0",
	ebiten.KeyNumpad2:     "Numpad2",
	ebiten.KeyNumpad4:     "Numpad4",
	ebiten.KeyNumpad5:     "Numpad5",
	ebiten.KeyNumpad6:     "Numpad6",
	ebiten.KeyNumpad8:     "Numpad8",
	ebiten.KeyNumpadEnter: "NumpadEnter",
	ebiten.KeyF9:          game.KeyF9,
	ebiten.KeyF10:         game.KeyF10,
}

// playerSink plays pre-rendered cues through Ebitengine's audio context.
type playerSink struct {
	ctx  *eaudio.Context
	pcm  [audio.CueCount][]byte
	mute bool
}

func newPlayerSink(bank *audio.Bank) *playerSink {
	s := &playerSink{ctx: eaudio.NewContext(int(bank.SampleRate()))}
	for i := 0; i < audio.CueCount; i++ {
		s.pcm[i] = bank.Int16LE(audio.Cue(i))
	}
	return s
}

func (s *playerSink) Play(c audio.Cue) {
	if s.mute || !c.Valid() || len(s.pcm[c]) == 0 {
		return
	}
	s.ctx.NewPlayerFromBytes(s.pcm[c]).Play()
}

type desktopGame struct {
	director *game.Director
	surface  *Surface
	start    time.Time
	keys     []ebiten.Key
	cursorX  int
	cursorY  int
}

func (g *desktopGame) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code, ok := keyCodes[k]; ok {
			g.director.KeyDown(code)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code, ok := keyCodes[k]; ok {
			g.director.KeyUp(code)
		}
	}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.director.PointerMove(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.director.Click(float64(x), float64(y))
	}
	if g.director.Hovering() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

func (g *desktopGame) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	now := float64(time.Since(g.start)) / float64(time.Millisecond)
	g.director.Frame(now, g.surface)
}

func (g *desktopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.surface.W), int(g.surface.H)
}

func main() {
	configPath := flag.String("config", "", "Optional tuning override file")
	seed := flag.Uint("seed", 0, "Session seed (0 = time based)")
	scale := flag.Float64("scale", 1, "Window scale")
	mute := flag.Bool("mute", false, "Disable sound")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	game.EnableDebug = *debug

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	themes, err := theme.NewProvider()
	if err != nil {
		log.Printf("Theme data is broken, using fallback: %v", err)
		themes = theme.FallbackProvider()
	}

	sink := newPlayerSink(audio.NewBank(audio.AudioConfig))
	sink.mute = *mute

	s := uint32(*seed)
	if s == 0 {
		s = uint32(time.Now().UnixNano())
	}
	d, err := game.NewDirector(game.Options{
		Tuning: tuning,
		Themes: themes,
		Sound:  sink,
		Seed:   s,
	})
	if err != nil {
		log.Fatal(err)
	}

	surface, err := NewSurface(tuning.Canvas.Width, tuning.Canvas.Height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Henshin Strike")
	ebiten.SetWindowSize(int(tuning.Canvas.Width*(*scale)), int(tuning.Canvas.Height*(*scale)))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&desktopGame{director: d, surface: surface, start: time.Now()}); err != nil {
		log.Fatal(err)
	}
}
