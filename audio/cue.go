// Package audio synthesizes the game's sound cues with beep and plays them
// through a frontend specific Sink.
package audio

// Cue identifies a gameplay sound.
type Cue int

const (
	CueShoot Cue = iota
	CueEnemyHit
	CueExplosion
	CueBossDown
	CuePlayerHit
	CuePowerUpCollect
	CuePowerUpExpire
	CueTransition
	CueGameOver
	CueSelect

	cueCount
)

// CueCount is the number of defined cues.
const CueCount = int(cueCount)

var cueNames = map[Cue]string{
	CueShoot:          "Shoot",
	CueEnemyHit:       "EnemyHit",
	CueExplosion:      "Explosion",
	CueBossDown:       "BossDown",
	CuePlayerHit:      "PlayerHit",
	CuePowerUpCollect: "PowerUpCollect",
	CuePowerUpExpire:  "PowerUpExpire",
	CueTransition:     "Transition",
	CueGameOver:       "GameOver",
	CueSelect:         "Select",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether c is a defined cue.
func (c Cue) Valid() bool {
	return c >= 0 && c < cueCount
}

// Sink plays cues. Implementations must not block the game loop.
type Sink interface {
	Play(c Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}

// Recorder keeps the cues it was asked to play. Tests use it to assert on
// gameplay feedback.
type Recorder struct {
	Cues []Cue
}

func (r *Recorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues.
func (r *Recorder) Reset() {
	r.Cues = r.Cues[:0]
}
