//go:build !js

package main

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/simukka/henshin-strike/gfx"
)

func TestSurface_FillRectScalesToCells(t *testing.T) {
	// 800x600 onto 80x30 cells: 10 canvas px per pixel in both directions.
	s := NewSurface(800, 600, 80, 30)
	s.Clear(gfx.Black)
	s.FillRect(100, 100, 100, 100, gfx.Red)

	if got := s.Pixel(15, 15); got != gfx.Red {
		t.Errorf("Expected red inside the rect, got %v", got)
	}
	if got := s.Pixel(5, 5); got != gfx.Black {
		t.Errorf("Expected black outside the rect, got %v", got)
	}
}

func TestSurface_AlphaBlendsOverBackground(t *testing.T) {
	s := NewSurface(800, 600, 80, 30)
	s.Clear(gfx.Black)
	s.SetAlpha(0.5)
	s.FillRect(0, 0, 800, 600, color.NRGBA{R: 200, A: 255})

	got := s.Pixel(40, 30)
	if got.R < 99 || got.R > 101 {
		t.Errorf("Expected half red, got %v", got)
	}
}

func TestSurface_TinyShapesStayVisible(t *testing.T) {
	s := NewSurface(800, 600, 80, 30)
	s.Clear(gfx.Black)
	// A bullet is far smaller than one terminal pixel.
	s.FillRect(402, 300, 4, 3, gfx.Yellow)

	if got := s.Pixel(40, 30); got != gfx.Yellow {
		t.Errorf("Expected the bullet to cover one pixel, got %v", got)
	}
}

func TestSurface_TranslateAndPop(t *testing.T) {
	s := NewSurface(800, 600, 80, 30)
	s.Clear(gfx.Black)
	s.Push()
	s.Translate(500, 0)
	s.FillRect(0, 0, 50, 50, gfx.Green)
	s.Pop()
	s.FillRect(0, 0, 50, 50, gfx.Cyan)

	if got := s.Pixel(52, 2); got != gfx.Green {
		t.Errorf("Expected translated rect, got %v", got)
	}
	if got := s.Pixel(2, 2); got != gfx.Cyan {
		t.Errorf("Expected untranslated rect after Pop, got %v", got)
	}
}

func TestSurface_TextAlignment(t *testing.T) {
	testCases := []struct {
		name  string
		align gfx.Align
		col   int
	}{
		{"left", gfx.AlignLeft, 40},
		{"center", gfx.AlignCenter, 38},
		{"right", gfx.AlignRight, 36},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSurface(800, 600, 80, 30)
			s.Clear(gfx.Black)
			s.Text("GAME", 400, 300, gfx.TextStyle{Size: 20, Align: tc.align, Color: gfx.White})
			if got := s.TextAt(tc.col, 15); got != 'G' {
				t.Errorf("Expected G at column %d, got %q", tc.col, got)
			}
		})
	}
}

func TestSurface_ClearDropsText(t *testing.T) {
	s := NewSurface(800, 600, 80, 30)
	s.Text("X", 0, 0, gfx.TextStyle{Color: gfx.White})
	s.Clear(gfx.Black)
	if got := s.TextAt(0, 0); got != 0 {
		t.Errorf("Expected no text after Clear, got %q", got)
	}
}

func TestSurface_CanvasPointRoundTrip(t *testing.T) {
	s := NewSurface(800, 600, 80, 30)
	x, y := s.CanvasPoint(40, 15)
	if math.Abs(x-405) > 1e-9 || math.Abs(y-310) > 1e-9 {
		t.Errorf("Expected (405, 310), got (%v, %v)", x, y)
	}
}

func TestHeldKeys_ExpireAfterHold(t *testing.T) {
	h := make(heldKeys)
	start := time.Now()

	if !h.press("ArrowLeft", start) {
		t.Errorf("Expected first press to be new")
	}
	if h.press("ArrowLeft", start.Add(50*time.Millisecond)) {
		t.Errorf("Expected repeat to refresh, not press again")
	}

	var released []string
	h.expire(start.Add(100*time.Millisecond), func(code string) { released = append(released, code) })
	if len(released) != 0 {
		t.Errorf("Expected key still held, got released %v", released)
	}
	h.expire(start.Add(50*time.Millisecond+(holdMs+1)*time.Millisecond), func(code string) { released = append(released, code) })
	if len(released) != 1 || released[0] != "ArrowLeft" {
		t.Errorf("Expected ArrowLeft released, got %v", released)
	}
}
