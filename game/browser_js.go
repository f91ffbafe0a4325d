//go:build js

package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/henshin-strike/gfx"
)

// Unlocker is an audio sink that can only start from a user gesture.
type Unlocker interface {
	Init() bool
}

// Browser runs a Director inside a web page.
type Browser struct {
	Director *Director
	Canvas   *gfx.Canvas
	Audio    Unlocker

	AnimationFrameID int
	running          bool
}

// NewBrowser binds d to the canvas. audio may be nil.
func NewBrowser(d *Director, canvas *gfx.Canvas, audio Unlocker) *Browser {
	b := &Browser{Director: d, Canvas: canvas, Audio: audio}
	d.OnModeChange = func(from, to Mode) {
		b.updateCursor()
	}
	return b
}

// SetupInputHandlers installs the keyboard and mouse listeners.
func (b *Browser) SetupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		b.unlockAudio()
		if b.Director.KeyDown(event.Get("code").String()) {
			event.Call("preventDefault")
		}
	})

	doc.Call("addEventListener", "keyup", func(event *js.Object) {
		b.Director.KeyUp(event.Get("code").String())
	})

	el := b.Canvas.Canvas
	el.Call("addEventListener", "mousemove", func(event *js.Object) {
		x, y := b.canvasPoint(event)
		b.Director.PointerMove(x, y)
		b.updateCursor()
	})

	el.Call("addEventListener", "click", func(event *js.Object) {
		b.unlockAudio()
		x, y := b.canvasPoint(event)
		b.Director.Click(x, y)
		event.Call("preventDefault")
	})
}

// canvasPoint converts a mouse event to canvas coordinates, undoing any CSS
// scaling of the element.
func (b *Browser) canvasPoint(event *js.Object) (float64, float64) {
	el := b.Canvas.Canvas
	rect := el.Call("getBoundingClientRect")
	w, h := b.Canvas.Size()
	sx, sy := 1.0, 1.0
	if rw := rect.Get("width").Float(); rw > 0 {
		sx = w / rw
	}
	if rh := rect.Get("height").Float(); rh > 0 {
		sy = h / rh
	}
	x := (event.Get("clientX").Float() - rect.Get("left").Float()) * sx
	y := (event.Get("clientY").Float() - rect.Get("top").Float()) * sy
	return x, y
}

func (b *Browser) unlockAudio() {
	if b.Audio != nil {
		b.Audio.Init()
	}
}

func (b *Browser) updateCursor() {
	cursor := "default"
	if b.Director.Hovering() {
		cursor = "pointer"
	}
	b.Canvas.Canvas.Get("style").Set("cursor", cursor)
}

// Start schedules the first animation frame.
func (b *Browser) Start() {
	if b.running {
		return
	}
	b.running = true
	b.AnimationFrameID = js.Global.Call("requestAnimationFrame", b.frame).Int()
}

// Stop cancels the pending animation frame.
func (b *Browser) Stop() {
	if !b.running {
		return
	}
	b.running = false
	js.Global.Call("cancelAnimationFrame", b.AnimationFrameID)
}

func (b *Browser) frame(now float64) {
	// Schedule next frame first so a panic cannot stop the loop.
	b.AnimationFrameID = js.Global.Call("requestAnimationFrame", b.frame).Int()

	b.Canvas.BeginFrame()
	b.Director.Frame(now, b.Canvas)
}

// DOMScoreboard mirrors match stats into the page's HUD elements.
type DOMScoreboard struct {
	score, lives, level *js.Object
}

var _ Scoreboard = (*DOMScoreboard)(nil)

// NewDOMScoreboard looks up the #score, #lives and #level elements. Missing
// elements are skipped.
func NewDOMScoreboard() *DOMScoreboard {
	doc := js.Global.Get("document")
	return &DOMScoreboard{
		score: doc.Call("getElementById", "score"),
		lives: doc.Call("getElementById", "lives"),
		level: doc.Call("getElementById", "level"),
	}
}

func (d *DOMScoreboard) Publish(s Stats) {
	setText(d.score, strconv.Itoa(s.Score))
	setText(d.lives, strconv.Itoa(s.Lives))
	setText(d.level, strconv.Itoa(s.Level))
}

func setText(el *js.Object, text string) {
	if el == nil || el == js.Undefined {
		return
	}
	el.Set("textContent", text)
}
