package audio

// WaveType is the oscillator waveform of a layer.
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "Square"
	case WaveSawtooth:
		return "Sawtooth"
	case WaveSine:
		return "Sine"
	case WaveNoise:
		return "Noise"
	default:
		return "Unknown"
	}
}

// Effect categories, used for per-category mixing.
const (
	CategoryPlayer = "Player"
	CategoryEnemy  = "Enemy"
	CategoryPickup = "Pickup"
	CategoryUI     = "UI"
)

// Layer is one voice of an effect. Notes play back to back; when EndFreq is
// set a single note sweeps linearly from its frequency to EndFreq.
type Layer struct {
	Wave      WaveType
	Notes     []float64 // Hz
	EndFreq   float64   // Hz, 0 = constant pitch
	NoteMs    float64
	AttackMs  float64
	ReleaseMs float64
	Gain      float64 // 0.0 - 1.0 within the effect
}

// DurationMs is the total length of the layer.
func (l Layer) DurationMs() float64 {
	return l.NoteMs * float64(len(l.Notes))
}

// SoundEffect is a synthesized cue recipe.
type SoundEffect struct {
	Cue         Cue
	Name        string
	Category    string
	Description string
	Layers      []Layer
}

// DurationMs is the length of the longest layer.
func (s *SoundEffect) DurationMs() float64 {
	var d float64
	for _, l := range s.Layers {
		if ld := l.DurationMs(); ld > d {
			d = ld
		}
	}
	return d
}

// SoundEffectLibrary holds one recipe per cue, indexed by Cue.
var SoundEffectLibrary = []*SoundEffect{
	{
		Cue: CueShoot, Name: "Laser", Category: CategoryPlayer,
		Description: "Player fires a bullet",
		Layers: []Layer{
			{Wave: WaveSquare, Notes: []float64{1200}, EndFreq: 500, NoteMs: 70, AttackMs: 2, ReleaseMs: 50, Gain: 0.35},
		},
	},
	{
		Cue: CueEnemyHit, Name: "Hit", Category: CategoryEnemy,
		Description: "Bullet damages an enemy without killing it",
		Layers: []Layer{
			{Wave: WaveSawtooth, Notes: []float64{220}, EndFreq: 160, NoteMs: 60, AttackMs: 2, ReleaseMs: 40, Gain: 0.4},
		},
	},
	{
		Cue: CueExplosion, Name: "Explosion", Category: CategoryEnemy,
		Description: "Enemy destroyed",
		Layers: []Layer{
			{Wave: WaveNoise, Notes: []float64{0}, NoteMs: 350, AttackMs: 5, ReleaseMs: 300, Gain: 0.6},
			{Wave: WaveSine, Notes: []float64{90}, EndFreq: 40, NoteMs: 250, AttackMs: 5, ReleaseMs: 200, Gain: 0.5},
		},
	},
	{
		Cue: CueBossDown, Name: "Boss Explosion", Category: CategoryEnemy,
		Description: "Boss destroyed",
		Layers: []Layer{
			{Wave: WaveNoise, Notes: []float64{0}, NoteMs: 700, AttackMs: 10, ReleaseMs: 600, Gain: 0.7},
			{Wave: WaveSawtooth, Notes: []float64{80}, EndFreq: 30, NoteMs: 600, AttackMs: 10, ReleaseMs: 500, Gain: 0.5},
		},
	},
	{
		Cue: CuePlayerHit, Name: "Damage", Category: CategoryPlayer,
		Description: "Enemy rams the player",
		Layers: []Layer{
			{Wave: WaveSquare, Notes: []float64{300}, EndFreq: 80, NoteMs: 300, AttackMs: 5, ReleaseMs: 200, Gain: 0.5},
			{Wave: WaveNoise, Notes: []float64{0}, NoteMs: 200, AttackMs: 5, ReleaseMs: 150, Gain: 0.3},
		},
	},
	{
		Cue: CuePowerUpCollect, Name: "Power-Up", Category: CategoryPickup,
		Description: "Power-up collected",
		Layers: []Layer{
			{Wave: WaveSine, Notes: []float64{1046.5, 1318.5, 1568.0}, NoteMs: 70, AttackMs: 3, ReleaseMs: 40, Gain: 0.6},
		},
	},
	{
		Cue: CuePowerUpExpire, Name: "Power-Down", Category: CategoryPickup,
		Description: "Power-up effect wore off",
		Layers: []Layer{
			{Wave: WaveSine, Notes: []float64{784.0, 523.3}, NoteMs: 90, AttackMs: 3, ReleaseMs: 60, Gain: 0.4},
		},
	},
	{
		Cue: CueTransition, Name: "Whoosh", Category: CategoryUI,
		Description: "Screen transition starts",
		Layers: []Layer{
			{Wave: WaveSine, Notes: []float64{200}, EndFreq: 600, NoteMs: 240, AttackMs: 40, ReleaseMs: 150, Gain: 0.3},
		},
	},
	{
		Cue: CueGameOver, Name: "Game Over", Category: CategoryUI,
		Description: "Last life lost",
		Layers: []Layer{
			{Wave: WaveSquare, Notes: []float64{523.3, 392.0, 329.6, 261.6}, NoteMs: 180, AttackMs: 5, ReleaseMs: 120, Gain: 0.4},
		},
	},
	{
		Cue: CueSelect, Name: "Blip", Category: CategoryUI,
		Description: "Menu selection changed",
		Layers: []Layer{
			{Wave: WaveSine, Notes: []float64{660}, NoteMs: 50, AttackMs: 2, ReleaseMs: 30, Gain: 0.5},
		},
	},
}

// GetSoundEffect returns the recipe for c, or nil.
func GetSoundEffect(c Cue) *SoundEffect {
	if !c.Valid() || int(c) >= len(SoundEffectLibrary) {
		return nil
	}
	return SoundEffectLibrary[c]
}

// GetSoundEffectsByCategory returns every recipe in category.
func GetSoundEffectsByCategory(category string) []*SoundEffect {
	var out []*SoundEffect
	for _, e := range SoundEffectLibrary {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
