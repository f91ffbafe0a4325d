package gfx

import (
	"image/color"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestParseHex(t *testing.T) {
	testCases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff4444", color.NRGBA{255, 68, 68, 255}, false},
		{"#0066FF", color.NRGBA{0, 102, 255, 255}, false},
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{"ff4444", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Expected error=%v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestHexString_RoundTrip(t *testing.T) {
	for _, s := range []string{"#00ffff", "#663366", "#000000"} {
		if got := HexString(MustHex(s)); got != s {
			t.Errorf("Expected %s, got %s", s, got)
		}
	}
}

func TestWithAlpha_Clamps(t *testing.T) {
	if got := WithAlpha(Red, 2).A; got != 255 {
		t.Errorf("Expected alpha 255, got %d", got)
	}
	if got := WithAlpha(Red, -1).A; got != 0 {
		t.Errorf("Expected alpha 0, got %d", got)
	}
	if got := WithAlpha(Red, 0.5).A; got != 128 {
		t.Errorf("Expected alpha 128, got %d", got)
	}
}

func TestCSS(t *testing.T) {
	if got := CSS(Cyan); got != "#00ffff" {
		t.Errorf("Expected #00ffff, got %s", got)
	}
	if got := CSS(color.NRGBA{255, 0, 0, 0}); got != "rgba(255,0,0,0.000)" {
		t.Errorf("Expected rgba form, got %s", got)
	}
}

func TestLerp_Endpoints(t *testing.T) {
	if got := Lerp(Black, White, 0); got != Black {
		t.Errorf("Expected black at t=0, got %v", got)
	}
	if got := Lerp(Black, White, 1); got != White {
		t.Errorf("Expected white at t=1, got %v", got)
	}
}

func TestMatrix_TranslateThenRotate(t *testing.T) {
	m := Identity.Translated(10, 20).Rotated(math.Pi / 2)
	x, y := m.Apply(1, 0)

	if !almostEqual(x, 10, 1e-9) || !almostEqual(y, 21, 1e-9) {
		t.Errorf("Expected (10, 21), got (%f, %f)", x, y)
	}
}

func TestStateStack_PushPopRestores(t *testing.T) {
	s := NewStateStack()
	s.Push()
	s.Translate(5, 5)
	s.SetAlpha(0.3)
	s.Pop()

	st := s.Current()
	if st.M != Identity {
		t.Errorf("Expected identity after pop, got %+v", st.M)
	}
	if st.Alpha != 1 {
		t.Errorf("Expected alpha 1 after pop, got %f", st.Alpha)
	}
	s.Pop()
	if s.Depth() != 0 {
		t.Errorf("Expected depth 0 after extra pop, got %d", s.Depth())
	}
}

func TestRecorder_RecordsDeviceSpace(t *testing.T) {
	r := NewRecorder(800, 600)
	r.Push()
	r.Translate(3, -2)
	r.SetAlpha(0.5)
	r.FillRect(10, 10, 4, 4, White)
	r.Pop()
	r.Text("hello", 1, 1, TextStyle{Size: 12})

	if len(r.Ops) != 2 {
		t.Fatalf("Expected 2 ops, got %d", len(r.Ops))
	}
	op := r.Ops[0]
	if op.X != 13 || op.Y != 8 {
		t.Errorf("Expected translated origin (13, 8), got (%f, %f)", op.X, op.Y)
	}
	if op.Alpha != 0.5 {
		t.Errorf("Expected alpha 0.5, got %f", op.Alpha)
	}
	if _, ok := r.FindText("hell"); !ok {
		t.Error("Expected to find text op")
	}
	if r.Depth() != 0 {
		t.Errorf("Expected balanced push/pop, got depth %d", r.Depth())
	}
}

func TestRecorder_FailOnPanicsOnce(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FailOn = "text"

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic on injected failure")
			}
		}()
		r.Text("x", 0, 0, TextStyle{})
	}()

	r.Text("y", 0, 0, TextStyle{})
	if r.Count("text") != 1 {
		t.Errorf("Expected 1 recorded text after failure cleared, got %d", r.Count("text"))
	}
}

func TestContains_EdgesInclusive(t *testing.T) {
	if !Contains(0, 0, 10, 10, 10, 10) {
		t.Error("Expected corner to be inside")
	}
	if Contains(0, 0, 10, 10, 10.1, 5) {
		t.Error("Expected point past edge to be outside")
	}
}
