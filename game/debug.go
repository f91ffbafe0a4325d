package game

import (
	"strconv"

	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
)

var EnableDebug = true

// DebugUI holds the state for the enemy config debug panel. Edits go
// straight into the tuning, so they apply to the next enemy spawned.
type DebugUI struct {
	Visible          bool
	SelectedEnemy    EnemyKind
	SelectedField    int
	PanelX           float64
	PanelY           float64
	PanelWidth       float64
	PanelHeight      float64
	FieldNames       []string
	ScrollOffset     int
	MaxVisibleFields int

	tuning *config.Tuning
}

// NewDebugUI creates a new debug UI instance editing t.
func NewDebugUI(t *config.Tuning) *DebugUI {
	return &DebugUI{
		SelectedEnemy: EnemyBasic,
		PanelX:        16,
		PanelY:        16,
		PanelWidth:    350,
		PanelHeight:   250,
		FieldNames: []string{
			"MaxHealth",
			"SpeedMultiplier",
			"Width",
			"Height",
			"Score",
		},
		MaxVisibleFields: 4,
		tuning:           t,
	}
}

// Toggle toggles the debug UI visibility
func (d *DebugUI) Toggle() {
	d.Visible = !d.Visible
}

// NextEnemy cycles to the next enemy type
func (d *DebugUI) NextEnemy() {
	d.SelectedEnemy = (d.SelectedEnemy + 1) % enemyKindCount
	d.SelectedField = 0
	d.ScrollOffset = 0
}

// PrevEnemy cycles to the previous enemy type
func (d *DebugUI) PrevEnemy() {
	d.SelectedEnemy = (d.SelectedEnemy + enemyKindCount - 1) % enemyKindCount
	d.SelectedField = 0
	d.ScrollOffset = 0
}

// NextField moves to the next field
func (d *DebugUI) NextField() {
	d.SelectedField = (d.SelectedField + 1) % len(d.FieldNames)
	d.scrollToSelection()
}

// PrevField moves to the previous field
func (d *DebugUI) PrevField() {
	d.SelectedField--
	if d.SelectedField < 0 {
		d.SelectedField = len(d.FieldNames) - 1
	}
	d.scrollToSelection()
}

func (d *DebugUI) scrollToSelection() {
	if d.SelectedField >= d.ScrollOffset+d.MaxVisibleFields {
		d.ScrollOffset = d.SelectedField - d.MaxVisibleFields + 1
	} else if d.SelectedField < d.ScrollOffset {
		d.ScrollOffset = d.SelectedField
	}
}

// HandleKey applies a raw panel key. It reports whether the key was used.
func (d *DebugUI) HandleKey(code string) bool {
	switch code {
	case KeyQ:
		d.PrevEnemy()
	case KeyE:
		d.NextEnemy()
	case KeyW:
		d.PrevField()
	case KeyS:
		d.NextField()
	case KeyA:
		d.AdjustValue(-1)
	case KeyD:
		d.AdjustValue(1)
	default:
		return false
	}
	return true
}

// AdjustValue adjusts the currently selected field value
func (d *DebugUI) AdjustValue(delta float64) {
	if d.tuning == nil {
		return
	}
	key := d.SelectedEnemy.Key()
	cfg := d.tuning.EnemyKind(key)

	switch d.FieldNames[d.SelectedField] {
	case "MaxHealth":
		cfg.MaxHealth = maxInt(1, cfg.MaxHealth+int(delta))
	case "SpeedMultiplier":
		newVal := cfg.SpeedMultiplier + delta*0.1
		if newVal < 0.1 {
			newVal = 0.1
		}
		cfg.SpeedMultiplier = newVal
	case "Width":
		cfg.Width = clampFloat(cfg.Width+delta*5, 10, 200)
	case "Height":
		cfg.Height = clampFloat(cfg.Height+delta*5, 10, 200)
	case "Score":
		cfg.Score = maxInt(0, cfg.Score+int(delta)*10)
	}

	d.tuning.Enemies.Kinds[key] = cfg
}

// GetFieldValue returns the current value of a field as a string
func (d *DebugUI) GetFieldValue(kind EnemyKind, fieldName string) string {
	if d.tuning == nil {
		return ""
	}
	cfg := d.tuning.EnemyKind(kind.Key())

	switch fieldName {
	case "MaxHealth":
		return strconv.Itoa(cfg.MaxHealth)
	case "SpeedMultiplier":
		return strconv.FormatFloat(cfg.SpeedMultiplier, 'f', 2, 64)
	case "Width":
		return strconv.FormatFloat(cfg.Width, 'f', 0, 64)
	case "Height":
		return strconv.FormatFloat(cfg.Height, 'f', 0, 64)
	case "Score":
		return strconv.Itoa(cfg.Score)
	}
	return ""
}

var (
	debugGreen     = gfx.MustHex("#00ff00")
	debugDim       = gfx.MustHex("#888888")
	debugSeparator = gfx.MustHex("#444444")
	debugLabel     = gfx.MustHex("#cccccc")
)

// Render draws the debug UI panel
func (d *DebugUI) Render(s gfx.Surface) {
	if !d.Visible {
		return
	}
	s.Push()
	defer s.Pop()

	s.FillRect(d.PanelX, d.PanelY, d.PanelWidth, d.PanelHeight, gfx.WithAlpha(gfx.Black, 0.85))
	s.StrokeRect(d.PanelX, d.PanelY, d.PanelWidth, d.PanelHeight, 2, debugGreen)

	s.Text("ENEMY CONFIG DEBUG", d.PanelX+10, d.PanelY+20, gfx.TextStyle{Size: 16, Color: debugGreen, Bold: true})
	s.Text("< "+d.SelectedEnemy.String()+" >", d.PanelX+10, d.PanelY+45, gfx.TextStyle{Size: 14, Color: gfx.Yellow})
	s.Text("Q/E: Enemy | W/S: Field | A/D: Value | F9: Close", d.PanelX+10, d.PanelY+65, gfx.TextStyle{Size: 11, Color: debugDim})
	s.Line(d.PanelX+10, d.PanelY+80, d.PanelX+d.PanelWidth-10, d.PanelY+80, 1, debugSeparator)

	startY := d.PanelY + 100
	lineHeight := 28.0

	endIdx := minInt(d.ScrollOffset+d.MaxVisibleFields, len(d.FieldNames))
	for i := d.ScrollOffset; i < endIdx; i++ {
		fieldName := d.FieldNames[i]
		value := d.GetFieldValue(d.SelectedEnemy, fieldName)
		yPos := startY + float64(i-d.ScrollOffset)*lineHeight

		labelColor, valueColor := debugLabel, debugLabel
		if i == d.SelectedField {
			s.FillRect(d.PanelX+5, yPos-13, d.PanelWidth-10, lineHeight-2, gfx.WithAlpha(debugGreen, 0.2))
			labelColor, valueColor = debugGreen, gfx.White
		}
		s.Text(fieldName+":", d.PanelX+15, yPos, gfx.TextStyle{Size: 13, Color: labelColor})
		s.Text(value, d.PanelX+d.PanelWidth-15, yPos, gfx.TextStyle{Size: 13, Align: gfx.AlignRight, Color: valueColor})
	}

	if len(d.FieldNames) > d.MaxVisibleFields {
		scrollInfo := strconv.Itoa(d.ScrollOffset+1) + "-" + strconv.Itoa(endIdx) + " of " + strconv.Itoa(len(d.FieldNames))
		s.Text(scrollInfo, d.PanelX+10, d.PanelY+d.PanelHeight-12, gfx.TextStyle{Size: 11, Color: gfx.Gray})
	}
}
