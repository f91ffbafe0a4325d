//go:build !js

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerSink plays cues on the system audio device through beep's speaker.
// All cues share one mixer so overlapping sounds blend.
type SpeakerSink struct {
	bank  *Bank
	mixer *beep.Mixer
	muted bool
}

var _ Sink = (*SpeakerSink)(nil)

// NewSpeakerSink initializes the speaker at the bank's sample rate.
func NewSpeakerSink(bank *Bank) (*SpeakerSink, error) {
	rate := bank.SampleRate()
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	s := &SpeakerSink{bank: bank, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues c on the mixer. It never blocks on playback.
func (s *SpeakerSink) Play(c Cue) {
	if s.muted {
		return
	}
	st := s.bank.Streamer(c)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// ToggleMute flips muting and returns the new state.
func (s *SpeakerSink) ToggleMute() bool {
	s.muted = !s.muted
	if s.muted {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
	return s.muted
}

// Close stops every playing cue.
func (s *SpeakerSink) Close() {
	speaker.Clear()
}
