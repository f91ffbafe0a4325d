package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// Bank holds every cue pre-rendered at one sample rate. Sinks that cannot
// stream (Web Audio buffers, Ebitengine byte players) read PCM from it; the
// speaker sink streams straight from its buffers.
type Bank struct {
	format  beep.Format
	buffers [cueCount]*beep.Buffer
}

// NewBank renders every cue of SoundEffectLibrary with the mix in cfg.
func NewBank(cfg Config) *Bank {
	rate := beep.SampleRate(cfg.SampleRate)
	b := &Bank{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}
	for _, e := range SoundEffectLibrary {
		buf := beep.NewBuffer(b.format)
		buf.Append(Build(e, rate, cfg.Volume(e)))
		b.buffers[e.Cue] = buf
	}
	return b
}

// SampleRate is the rate the bank was rendered at.
func (b *Bank) SampleRate() beep.SampleRate { return b.format.SampleRate }

// Len is the length of c in frames.
func (b *Bank) Len(c Cue) int {
	if !c.Valid() || b.buffers[c] == nil {
		return 0
	}
	return b.buffers[c].Len()
}

// Streamer returns a fresh stream over c, or nil for an unknown cue.
func (b *Bank) Streamer(c Cue) beep.StreamSeeker {
	if !c.Valid() || b.buffers[c] == nil {
		return nil
	}
	buf := b.buffers[c]
	return buf.Streamer(0, buf.Len())
}

// Frames returns c as stereo float frames.
func (b *Bank) Frames(c Cue) [][2]float64 {
	s := b.Streamer(c)
	if s == nil {
		return nil
	}
	out := make([][2]float64, s.Len())
	filled := 0
	for filled < len(out) {
		n, ok := s.Stream(out[filled:])
		filled += n
		if !ok || n == 0 {
			break
		}
	}
	return out[:filled]
}

// Channel returns one channel of c as float32 samples, the layout a Web Audio
// AudioBuffer expects.
func (b *Bank) Channel(c Cue, ch int) []float32 {
	frames := b.Frames(c)
	out := make([]float32, len(frames))
	for i, f := range frames {
		out[i] = float32(f[ch&1])
	}
	return out
}

// Int16LE returns c as interleaved signed 16-bit little-endian stereo, the
// layout an Ebitengine audio player expects.
func (b *Bank) Int16LE(c Cue) []byte {
	frames := b.Frames(c)
	out := make([]byte, len(frames)*4)
	for i, f := range frames {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(toInt16(f[0])))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(toInt16(f[1])))
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
