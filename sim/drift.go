package sim

import (
	"github.com/chewxy/math32"

	"github.com/driftworks/kartsim/event"
	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
)

// simulateDrift advances the drift state machine for one tick. While
// drifting it writes the steering offset and injects the lateral drift force
// consumed by the integrator; it also accumulates drift duration toward the
// boost thresholds.
func (s *Simulator) simulateDrift(k *kart.Kart, input kart.InputState, dt float32) {
	b := &k.DriftBoost
	b.VisualCharge = math32.Max(0, b.VisualCharge-game.DriftChargeDecay*dt)

	d := &k.Drift
	if !d.Drifting() {
		d.SteeringOffset = 0
		if !s.CanStartDrift(k, input) {
			return
		}
		d.Direction = steerSign(input.Steering)
		d.NoSteerTime = 0
		d.OppositeSteerTime = 0
		b.Reset()
		s.debugf("drift started (dir=%d)", d.Direction)
	} else {
		if math32.Abs(input.Steering) <= game.SteeringDeadzone {
			d.NoSteerTime += dt
		} else {
			d.NoSteerTime = 0
		}
		if steerSign(input.Steering) == -d.Direction {
			d.OppositeSteerTime += dt
		} else {
			d.OppositeSteerTime = 0
		}

		if s.shouldEndDrift(k, input) {
			s.endDrift(k)
			return
		}
	}

	tuning := &k.Stats.Drift
	dir := float32(d.Direction)
	d.SteeringOffset = tuning.MaxSteeringOffset * dir

	force := game.LerpVec3(k.Right().Mul(-dir), k.Forward(), tuning.ForwardFactor)
	force = game.SafeNormalize(force).Mul(tuning.SideAcceleration * input.Throttle)
	k.AddForce(force)

	s.chargeDriftBoost(k, dt)
}

// CanStartDrift reports whether a drift can start this tick. Every condition
// must hold: an edge-triggered drift press, steering beyond the deadzone in a
// direction differing from the current one, air time within the limit,
// sufficient speed, and not every wheel offroad.
func (s *Simulator) CanStartDrift(k *kart.Kart, input kart.InputState) bool {
	tuning := &k.Stats.Drift
	return input.DriftPressed &&
		steerSign(input.Steering) != k.Drift.Direction &&
		math32.Abs(input.Steering) > game.SteeringDeadzone &&
		k.AirTime <= tuning.MaxAirTime &&
		k.Vel.LenSqr() >= tuning.MinSpeed*tuning.MinSpeed &&
		!k.FullyOffroad()
}

// shouldEndDrift reports whether any drift exit condition fired this tick.
func (s *Simulator) shouldEndDrift(k *kart.Kart, input kart.InputState) bool {
	d := &k.Drift
	tuning := &k.Stats.Drift

	if k.FullyOffroad() {
		return true
	}
	if input.DriftPressed {
		return true
	}
	if k.AirTime > tuning.MaxAirTime {
		return true
	}
	if k.Vel.LenSqr() < tuning.MinSpeed*tuning.MinSpeed {
		return true
	}
	if k.SidewaysSpeedSqr < tuning.MinSidewaysSpeed*tuning.MinSidewaysSpeed &&
		d.NoSteerTime > tuning.MaxNoSteerTime {
		return true
	}
	if steerSign(input.Steering) == -d.Direction &&
		d.OppositeSteerTime > tuning.MaxOppositeSteerTime {
		return true
	}
	return false
}

// endDrift leaves the drift state, granting the drift boost for the reached
// level if any threshold beyond the first was crossed. The accumulation is
// always reset, boost or not.
func (s *Simulator) endDrift(k *kart.Kart) {
	level := k.DriftBoost.Level()
	if level > 0 {
		cfg := k.Stats.DriftBoost.Levels[level-1]
		s.StartBoost(k, cfg)
		k.Notify(event.DriftBoostApplied{KartID: k.ID, Level: level})
		s.debugf("drift boost applied (level=%d boost=%s)", level, cfg.Name)
	}
	k.DriftBoost.Reset()

	k.Drift = kart.DriftState{}
	s.debugf("drift ended")
}

// chargeDriftBoost accumulates drift duration and bumps the reached level
// index whenever a threshold is crossed for the first time this drift. The
// index never decreases during the same drift.
func (s *Simulator) chargeDriftBoost(k *kart.Kart, dt float32) {
	b := &k.DriftBoost
	b.Elapsed += dt

	thresholds := k.Stats.DriftBoost.Thresholds
	for i := b.Reached + 1; i < len(thresholds); i++ {
		if b.Elapsed < thresholds[i] {
			break
		}
		b.Reached = i
		b.VisualCharge = 1
		k.Notify(event.DriftBoostCharged{KartID: k.ID, Level: i})
	}
}

func steerSign(steering float32) int {
	if steering < 0 {
		return -1
	} else if steering > 0 {
		return 1
	}
	return 0
}
