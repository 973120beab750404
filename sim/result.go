package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/kart"
)

// Result captures the outcome of a single simulation tick for one kart.
type Result struct {
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
	Orientation mgl32.Quat

	Grounded bool
	Offroad  bool
	AirTime  float32

	Drifting       bool
	DriftLevel     int
	BoostRemaining float32
}

func (s *Simulator) resultFromState(k *kart.Kart) Result {
	return Result{
		Position:    k.Pos,
		Velocity:    k.Vel,
		Orientation: k.Orientation,

		Grounded: k.Grounded(),
		Offroad:  k.FullyOffroad(),
		AirTime:  k.AirTime,

		Drifting:       k.Drift.Drifting(),
		DriftLevel:     k.DriftBoost.Level(),
		BoostRemaining: k.Boost.Remaining,
	}
}
