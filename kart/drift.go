package kart

// DriftState is the drift state machine data for a single kart. Direction 0
// means not drifting; -1 and +1 are the two drift directions. Only the drift
// controller mutates it.
type DriftState struct {
	Direction int

	// SteeringOffset is the additional steering written while drifting and
	// consumed by the integrator's steering step.
	SteeringOffset float32

	NoSteerTime       float32
	OppositeSteerTime float32
}

// Drifting reports whether a drift is in progress.
func (d *DriftState) Drifting() bool {
	return d.Direction != 0
}

// DriftBoostState accumulates drift duration toward the boost thresholds of
// the current drift. Reached is the highest crossed threshold index, -1 while
// none is crossed; it never decreases during the same drift.
type DriftBoostState struct {
	Elapsed float32
	Reached int

	// VisualCharge is a decaying feedback scalar for the view layer: set to 1
	// on each threshold crossing, decayed toward 0 every tick.
	VisualCharge float32
}

// Level is the drift level granted if the drift ended now: the highest
// crossed threshold index, or 0 when none is crossed. A boost is only applied
// for levels > 0.
func (b *DriftBoostState) Level() int {
	if b.Reached < 0 {
		return 0
	}
	return b.Reached
}

// Reset clears the accumulation. Called whenever a drift ends, whether or not
// a boost was granted.
func (b *DriftBoostState) Reset() {
	b.Elapsed = 0
	b.Reached = -1
}
