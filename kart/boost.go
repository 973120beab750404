package kart

import "github.com/driftworks/kartsim/content"

// BoostState holds the single active boost of a kart. At most one boost is
// active; starting a new one unconditionally replaces the current one, with
// no stacking and no queueing.
type BoostState struct {
	Active    *content.BoostConfig
	Remaining float32
}

// Start replaces the active boost with the given config.
func (b *BoostState) Start(cfg *content.BoostConfig) {
	b.Active = cfg
	b.Remaining = cfg.Duration
}

// Interrupt immediately clears the active boost. Calling it while no boost is
// active is a no-op.
func (b *BoostState) Interrupt() {
	b.Active = nil
	b.Remaining = 0
}

// AccelBonus returns the acceleration bonus of the active boost, 0 if none.
func (b *BoostState) AccelBonus() float32 {
	if b.Active == nil {
		return 0
	}
	return b.Active.Acceleration
}

// MaxSpeedBonus returns the max-speed bonus of the active boost, 0 if none.
func (b *BoostState) MaxSpeedBonus() float32 {
	if b.Active == nil {
		return 0
	}
	return b.Active.MaxSpeed
}
