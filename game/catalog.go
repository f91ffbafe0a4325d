package game

import (
	"fmt"
	"image/color"

	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
)

// PowerUpKind identifies one of the six catalog entries.
type PowerUpKind int

const (
	RapidFire PowerUpKind = iota
	WideShot
	ShieldGenerator
	TimeSlow
	MegaBlast
	AutoAim
	powerUpKindCount
)

// PowerUpKindCount is the number of catalog entries.
const PowerUpKindCount = int(powerUpKindCount)

// Adding a kind without extending Apply, Revert and the pickup shapes
// breaks the build here first.
const _ = uint(powerUpKindCount - 6)
const _ = uint(6 - powerUpKindCount)

var powerUpKeys = [powerUpKindCount]string{
	RapidFire:       "RAPID_FIRE",
	WideShot:        "WIDE_SHOT",
	ShieldGenerator: "SHIELD_GENERATOR",
	TimeSlow:        "TIME_SLOW",
	MegaBlast:       "MEGA_BLAST",
	AutoAim:         "AUTO_AIM",
}

// Valid reports whether k is a catalog kind.
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < powerUpKindCount
}

// Key is the catalog key of k.
func (k PowerUpKind) Key() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return powerUpKeys[k]
}

func (k PowerUpKind) String() string { return k.Key() }

// ParsePowerUpKind maps a catalog key to its kind.
func ParsePowerUpKind(key string) (PowerUpKind, error) {
	for i, k := range powerUpKeys {
		if k == key {
			return PowerUpKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPowerUp, key)
}

// CatalogEntry is the immutable definition of one power-up kind. The
// behaviour lives in Apply and Revert; this is the data shown to the player.
type CatalogEntry struct {
	Kind        PowerUpKind
	Name        string
	Description string
	DurationMs  float64
	Color       color.NRGBA
	GlowColor   color.NRGBA
	Symbol      string
}

// Catalog holds one entry per kind, indexed by kind.
type Catalog struct {
	entries [powerUpKindCount]CatalogEntry
}

// NewCatalog builds the catalog from tuning data. Every kind must be present
// exactly once.
func NewCatalog(t *config.Tuning) (*Catalog, error) {
	c := &Catalog{}
	var seen [powerUpKindCount]bool
	for _, cfg := range t.PowerUps.Catalog {
		kind, err := ParsePowerUpKind(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog: %w", err)
		}
		col, err := gfx.ParseHex(cfg.Color)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog entry %s: %w", cfg.Key, err)
		}
		glow, err := gfx.ParseHex(cfg.GlowColor)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog entry %s: %w", cfg.Key, err)
		}
		c.entries[kind] = CatalogEntry{
			Kind:        kind,
			Name:        cfg.Name,
			Description: cfg.Description,
			DurationMs:  cfg.DurationMs,
			Color:       col,
			GlowColor:   glow,
			Symbol:      cfg.Symbol,
		}
		seen[kind] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("failed to build catalog: %s is missing", PowerUpKind(i))
		}
	}
	return c, nil
}

// Entry returns the entry for k, or nil for an unknown kind.
func (c *Catalog) Entry(k PowerUpKind) *CatalogEntry {
	if !k.Valid() {
		return nil
	}
	return &c.entries[k]
}

// Entries returns every entry in kind order.
func (c *Catalog) Entries() []*CatalogEntry {
	out := make([]*CatalogEntry, 0, powerUpKindCount)
	for i := range c.entries {
		out = append(out, &c.entries[i])
	}
	return out
}
