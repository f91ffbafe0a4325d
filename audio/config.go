package audio

// Config holds mixing levels shared by every sink.
type Config struct {
	// Master settings
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int     // Hz used when rendering cues
	ReverbMix    float64 // 0.0 - 1.0, wet level (Web Audio only)
	ReverbTime   float64 // Reverb duration in seconds
	ReverbDecay  float64 // Reverb decay exponent

	// Per-category gain applied on top of each effect's own gain
	CategoryVolume map[string]float64
}

// AudioConfig is the default mix.
var AudioConfig = Config{
	MasterVolume: 0.5,
	SampleRate:   44100,
	ReverbMix:    0.15,
	ReverbTime:   1.2,
	ReverbDecay:  2.5,
	CategoryVolume: map[string]float64{
		CategoryPlayer: 0.8,
		CategoryEnemy:  1.0,
		CategoryPickup: 0.9,
		CategoryUI:     0.6,
	},
}

// Volume returns the effective gain of an effect under this config.
func (c Config) Volume(e *SoundEffect) float64 {
	v, ok := c.CategoryVolume[e.Category]
	if !ok {
		v = 1
	}
	return clampVolume(c.MasterVolume * v)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
