package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/simukka/henshin-strike/common"
)

// noiseSeed keeps rendered noise identical between runs.
const noiseSeed = 0x5EED

// oscillator generates a raw wave, optionally sweeping its pitch.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *common.SeededRNG
}

// NewOscillator creates a wave generator of the given length. A positive
// endFreq sweeps linearly from freq to endFreq over the duration.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    common.NewSeededRNG(noiseSeed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSawtooth:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Random()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq > 0 && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack/sustain/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func ms(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}

// layerStreamer plays the notes of l back to back.
func layerStreamer(l Layer, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(l.Notes))
	for _, f := range l.Notes {
		osc := NewOscillator(f, l.EndFreq, ms(l.NoteMs), l.Wave, rate)
		notes = append(notes, NewEnvelope(osc, ms(l.NoteMs), ms(l.AttackMs), ms(l.ReleaseMs), rate))
	}
	return newVolume(beep.Seq(notes...), l.Gain)
}

// Build returns a streamer rendering e at the given gain. The stream ends
// after e.DurationMs.
func Build(e *SoundEffect, rate beep.SampleRate, vol float64) beep.Streamer {
	layers := make([]beep.Streamer, 0, len(e.Layers))
	for _, l := range e.Layers {
		layers = append(layers, layerStreamer(l, rate))
	}
	return beep.Take(rate.N(ms(e.DurationMs())), newVolume(beep.Mix(layers...), vol))
}
