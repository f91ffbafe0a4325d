//go:build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/henshin-strike/common"
)

// AudioManager plays cues through the Web Audio API. Buffers are filled from
// a Bank so browser and native builds sound the same.
type AudioManager struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[Cue]*js.Object
	ready      bool
	bank       *Bank
	rng        *common.SeededRNG

	// Reverb effect chain
	reverb     *js.Object // ConvolverNode
	reverbGain *js.Object // Gain for wet signal
}

var _ Sink = (*AudioManager)(nil)

// NewAudioManager creates an audio manager. Init must be called from a user
// gesture before anything is audible.
func NewAudioManager(bank *Bank) *AudioManager {
	return &AudioManager{
		buffers: make(map[Cue]*js.Object),
		bank:    bank,
		rng:     common.NewSeededRNG(noiseSeed),
	}
}

// Init creates the AudioContext and uploads every cue. It returns false when
// the browser has no Web Audio support.
func (am *AudioManager) Init() bool {
	if am.ctx != nil {
		return am.ready
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return false
	}

	am.ctx = audioCtx.New()
	am.masterGain = am.ctx.Call("createGain")
	am.masterGain.Call("connect", am.ctx.Get("destination"))
	am.masterGain.Get("gain").Set("value", 1.0)

	am.initReverb()

	for i := 0; i < CueCount; i++ {
		am.loadCue(Cue(i))
	}
	am.ready = true
	return true
}

// loadCue copies the rendered PCM of c into an AudioBuffer.
func (am *AudioManager) loadCue(c Cue) {
	n := am.bank.Len(c)
	if n == 0 {
		return
	}
	buf := am.ctx.Call("createBuffer", 2, n, int(am.bank.SampleRate()))
	for ch := 0; ch < 2; ch++ {
		buf.Call("copyToChannel", am.bank.Channel(c, ch), ch)
	}
	am.buffers[c] = buf
}

// Play plays a cue.
func (am *AudioManager) Play(c Cue) {
	if !am.ready {
		return
	}
	buffer, ok := am.buffers[c]
	if !ok || buffer == nil {
		return
	}

	// Resume context if suspended
	if am.ctx.Get("state").String() == "suspended" {
		am.ctx.Call("resume")
	}

	source := am.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", am.masterGain)
	if am.reverb != nil {
		source.Call("connect", am.reverb)
	}
	source.Call("start", 0)
}

// initReverb creates a simple algorithmic reverb using a ConvolverNode.
func (am *AudioManager) initReverb() {
	am.reverbGain = am.ctx.Call("createGain")
	am.reverbGain.Get("gain").Set("value", AudioConfig.ReverbMix)
	am.reverbGain.Call("connect", am.masterGain)

	am.reverb = am.ctx.Call("createConvolver")
	am.reverb.Call("connect", am.reverbGain)

	am.generateImpulseResponse(AudioConfig.ReverbTime, AudioConfig.ReverbDecay)
}

// generateImpulseResponse fills the convolver with decaying noise.
func (am *AudioManager) generateImpulseResponse(duration, decay float64) {
	sampleRate := am.ctx.Get("sampleRate").Int()
	length := int(float64(sampleRate) * duration)

	impulse := am.ctx.Call("createBuffer", 2, length, sampleRate)
	for channel := 0; channel < 2; channel++ {
		channelData := impulse.Call("getChannelData", channel)
		for i := 0; i < length; i++ {
			noise := am.rng.Random()*2 - 1
			progress := float64(i) / float64(length)
			channelData.SetIndex(i, noise*js.Global.Get("Math").Call("pow", 1-progress, decay).Float())
		}
	}
	am.reverb.Set("buffer", impulse)
}

// SetVolume sets the master volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	if am.masterGain == nil {
		return
	}
	am.masterGain.Get("gain").Set("value", clampVolume(volume))
}
