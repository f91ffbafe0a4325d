package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSoundEffectLibrary_OneRecipePerCue(t *testing.T) {
	if len(SoundEffectLibrary) != CueCount {
		t.Fatalf("Expected %d recipes, got %d", CueCount, len(SoundEffectLibrary))
	}
	for i, e := range SoundEffectLibrary {
		if int(e.Cue) != i {
			t.Errorf("Expected recipe %d to be for cue %d, got %s", i, i, e.Cue)
		}
		if e.DurationMs() <= 0 {
			t.Errorf("Expected %s to have a positive duration", e.Cue)
		}
		if len(e.Layers) == 0 {
			t.Errorf("Expected %s to have layers", e.Cue)
		}
	}
}

func TestCue_String(t *testing.T) {
	testCases := []struct {
		cue  Cue
		want string
	}{
		{CueShoot, "Shoot"},
		{CueBossDown, "BossDown"},
		{Cue(99), "Unknown"},
	}
	for _, tc := range testCases {
		if got := tc.cue.String(); got != tc.want {
			t.Errorf("Expected %s, got %s", tc.want, got)
		}
	}
}

func TestOscillator_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSquare, WaveSawtooth, WaveSine, WaveNoise} {
		t.Run(wave.String(), func(t *testing.T) {
			osc := NewOscillator(440, 0, 100*time.Millisecond, wave, rate)
			buf := make([][2]float64, 2000)
			n, _ := osc.Stream(buf)

			if n != 800 {
				t.Errorf("Expected 800 samples, got %d", n)
			}
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("Expected sample in [-1, 1], got %f", buf[i][0])
				}
			}
			if n2, ok := osc.Stream(buf); n2 != 0 || ok {
				t.Errorf("Expected drained oscillator, got n=%d ok=%v", n2, ok)
			}
		})
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSquare, rate)
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)

	if math.Abs(buf[0][0]) > 1e-9 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if math.Abs(buf[n/2][0]) < 0.99 {
		t.Errorf("Expected full volume mid-envelope, got %f", buf[n/2][0])
	}
	if math.Abs(buf[n-1][0]) > 0.02 {
		t.Errorf("Expected near-silent last sample, got %f", buf[n-1][0])
	}
}

func TestBank_RendersEveryCue(t *testing.T) {
	cfg := AudioConfig
	cfg.SampleRate = 8000
	b := NewBank(cfg)

	for i := 0; i < CueCount; i++ {
		c := Cue(i)
		e := GetSoundEffect(c)
		want := beep.SampleRate(8000).N(time.Duration(e.DurationMs() * float64(time.Millisecond)))
		if got := b.Len(c); got != want {
			t.Errorf("%s: expected %d frames, got %d", c, want, got)
		}
		if got := len(b.Int16LE(c)); got != want*4 {
			t.Errorf("%s: expected %d bytes, got %d", c, want*4, got)
		}
		if got := len(b.Channel(c, 1)); got != want {
			t.Errorf("%s: expected %d channel samples, got %d", c, want, got)
		}
	}

	if b.Streamer(Cue(-1)) != nil {
		t.Error("Expected nil streamer for invalid cue")
	}
}

func TestBank_Deterministic(t *testing.T) {
	cfg := AudioConfig
	cfg.SampleRate = 8000
	a := NewBank(cfg).Frames(CueExplosion)
	b := NewBank(cfg).Frames(CueExplosion)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical noise renders, differ at frame %d", i)
		}
	}
}

func TestConfig_VolumeByCategory(t *testing.T) {
	cfg := Config{MasterVolume: 0.5, CategoryVolume: map[string]float64{CategoryUI: 0.5}}

	if got := cfg.Volume(GetSoundEffect(CueSelect)); got != 0.25 {
		t.Errorf("Expected 0.25 for UI cue, got %f", got)
	}
	if got := cfg.Volume(GetSoundEffect(CueShoot)); got != 0.5 {
		t.Errorf("Expected master volume for unlisted category, got %f", got)
	}
}

func TestRecorder_Count(t *testing.T) {
	var r Recorder
	r.Play(CueShoot)
	r.Play(CueShoot)
	r.Play(CueExplosion)

	if r.Count(CueShoot) != 2 {
		t.Errorf("Expected 2 shoot cues, got %d", r.Count(CueShoot))
	}
	r.Reset()
	if len(r.Cues) != 0 {
		t.Errorf("Expected empty recorder after reset, got %d", len(r.Cues))
	}
}
