//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/game"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

func main() {
	canvas := gfx.NewCanvas("c")
	if canvas.Canvas == nil || canvas.Canvas == js.Undefined {
		panic("canvas element not found")
	}

	tuning := config.Default()
	canvas.Canvas.Set("width", tuning.Canvas.Width)
	canvas.Canvas.Set("height", tuning.Canvas.Height)

	themes, err := theme.NewProvider()
	if err != nil {
		game.DebugError("Theme data is broken, using fallback:", err.Error())
		themes = theme.FallbackProvider()
	}

	sound := audio.NewAudioManager(audio.NewBank(audio.AudioConfig))

	d, err := game.NewDirector(game.Options{
		Tuning:     tuning,
		Themes:     themes,
		Sound:      sound,
		Scoreboard: game.NewDOMScoreboard(),
		Seed:       uint32(js.Global.Get("Date").Call("now").Int64()),
	})
	if err != nil {
		panic(err)
	}

	b := game.NewBrowser(d, canvas, sound)
	b.SetupInputHandlers()

	// Small console API for poking at a running session.
	js.Global.Set("HenshinStrike", map[string]interface{}{
		"mode": func() string {
			return d.Mode.String()
		},
		"stats": func() map[string]interface{} {
			if d.Match == nil {
				return nil
			}
			s := d.Match.Stats()
			return map[string]interface{}{
				"id":    d.Match.ID,
				"score": s.Score,
				"lives": s.Lives,
				"level": s.Level,
			}
		},
		"debug": func(on bool) {
			game.EnableDebug = on
		},
	})

	b.Start()
	select {}
}
