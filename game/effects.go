package game

import (
	"fmt"
	"math"
	"strings"
)

// Field is a bit set of the values an effect touches.
type Field uint8

const (
	FieldShootCooldown Field = 1 << iota
	FieldSpread
	FieldInvincible
	FieldTimeScale
	FieldPenetration
	FieldDamage
	FieldAutoAim
)

var fieldNames = []struct {
	f    Field
	name string
}{
	{FieldShootCooldown, "shootCooldown"},
	{FieldSpread, "spread"},
	{FieldInvincible, "invincible"},
	{FieldTimeScale, "timeScale"},
	{FieldPenetration, "penetration"},
	{FieldDamage, "damage"},
	{FieldAutoAim, "autoAim"},
}

func (f Field) String() string {
	var parts []string
	for _, n := range fieldNames {
		if f&n.f != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// EffectTarget is what power-up effects act on. TimeSlow only needs
// TimeScale; every other kind only needs Player.
type EffectTarget struct {
	Player    *Player
	TimeScale *float64
}

// EffectRecord is returned by Apply and consumed by Revert. It names the
// fields the effect wrote and their values before the write.
type EffectRecord struct {
	Kind           PowerUpKind
	Fields         Field
	Prior          Modifiers
	PriorTimeScale float64
}

// FieldsFor lists the fields kind k writes.
func FieldsFor(k PowerUpKind) (Field, error) {
	switch k {
	case RapidFire:
		return FieldShootCooldown, nil
	case WideShot:
		return FieldSpread, nil
	case ShieldGenerator:
		return FieldInvincible, nil
	case TimeSlow:
		return FieldTimeScale, nil
	case MegaBlast:
		return FieldPenetration | FieldDamage, nil
	case AutoAim:
		return FieldAutoAim, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownPowerUp, int(k))
}

// Apply performs the effect of kind k on tgt. Values are computed from the
// player's base stats, so applying the same kind twice changes nothing.
func Apply(k PowerUpKind, tgt EffectTarget) (EffectRecord, error) {
	fields, err := FieldsFor(k)
	if err != nil {
		return EffectRecord{Kind: k}, err
	}
	if err := checkTarget(fields, tgt); err != nil {
		return EffectRecord{Kind: k}, fmt.Errorf("apply %s: %w", k, err)
	}

	rec := EffectRecord{Kind: k, Fields: fields}
	if tgt.Player != nil {
		rec.Prior = tgt.Player.Modifiers
	}
	if tgt.TimeScale != nil {
		rec.PriorTimeScale = *tgt.TimeScale
	}

	switch k {
	case RapidFire:
		p := tgt.Player
		p.ShootCooldownMs = math.Floor(p.BaseCooldownMs * rapidFireFactor)
	case WideShot:
		tgt.Player.BulletSpread = wideShotCount
		tgt.Player.SpreadAngle = wideShotAngle
	case ShieldGenerator:
		tgt.Player.Invincible = true
	case TimeSlow:
		*tgt.TimeScale = timeSlowScale
	case MegaBlast:
		p := tgt.Player
		p.BulletPenetration = true
		p.BulletDamage = p.BaseDamage * megaBlastMultiple
	case AutoAim:
		tgt.Player.AutoAim = true
	}
	return rec, nil
}

// Revert restores the fields rec touched to the values it captured.
func Revert(rec EffectRecord, tgt EffectTarget) error {
	if rec.Fields == 0 {
		return nil
	}
	if err := checkTarget(rec.Fields, tgt); err != nil {
		return fmt.Errorf("revert %s: %w", rec.Kind, err)
	}

	prior := rec.Prior
	if rec.Fields&FieldShootCooldown != 0 {
		tgt.Player.ShootCooldownMs = prior.ShootCooldownMs
	}
	if rec.Fields&FieldSpread != 0 {
		tgt.Player.BulletSpread = prior.BulletSpread
		tgt.Player.SpreadAngle = prior.SpreadAngle
	}
	if rec.Fields&FieldInvincible != 0 {
		tgt.Player.Invincible = prior.Invincible
	}
	if rec.Fields&FieldTimeScale != 0 {
		*tgt.TimeScale = rec.PriorTimeScale
	}
	if rec.Fields&FieldPenetration != 0 {
		tgt.Player.BulletPenetration = prior.BulletPenetration
	}
	if rec.Fields&FieldDamage != 0 {
		tgt.Player.BulletDamage = prior.BulletDamage
	}
	if rec.Fields&FieldAutoAim != 0 {
		tgt.Player.AutoAim = prior.AutoAim
	}
	return nil
}

func checkTarget(fields Field, tgt EffectTarget) error {
	if fields&FieldTimeScale != 0 && tgt.TimeScale == nil {
		return fmt.Errorf("%w: time scale", ErrNoTarget)
	}
	if fields&^FieldTimeScale != 0 && tgt.Player == nil {
		return fmt.Errorf("%w: player", ErrNoTarget)
	}
	return nil
}
