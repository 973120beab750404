package content

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kerror"
)

// SurfaceDefinition describes a drivable track surface. Surfaces are shared
// and immutable during simulation; karts look them up through wheel contacts
// and never mutate them.
type SurfaceDefinition struct {
	Name     string
	Friction float32
	Speed    float32
	Handling float32
	Offroad  bool
}

// Validate reports configuration errors. Surface references are assumed valid
// every tick afterwards.
func (s *SurfaceDefinition) Validate() error {
	if s.Name == "" {
		return kerror.New("surface requires a name")
	}
	if s.Friction < 0 || s.Speed < 0 || s.Handling < 0 {
		return kerror.New("surface %q has negative multipliers", s.Name)
	}
	return nil
}

// BoostConfig describes a timed speed boost. At most one boost is active per
// kart; starting a new one always replaces the current one.
type BoostConfig struct {
	Name         string
	Duration     float32
	Acceleration float32
	MaxSpeed     float32
}

func (b *BoostConfig) Validate() error {
	if b.Name == "" {
		return kerror.New("boost config requires a name")
	}
	if b.Duration <= 0 {
		return kerror.New("boost %q requires a positive duration", b.Name)
	}
	return nil
}

// DriftTuning holds the drift state machine thresholds and force parameters.
type DriftTuning struct {
	SideAcceleration  float32
	ForwardFactor     float32
	MaxSteeringOffset float32

	MinSpeed             float32
	MinSidewaysSpeed     float32
	MaxAirTime           float32
	MaxNoSteerTime       float32
	MaxOppositeSteerTime float32
}

// DriftBoostTuning holds the ascending drift-duration thresholds and the boost
// configs granted per reached level. Thresholds are 0-indexed; the level
// reached by a drift equals the highest crossed index and the applied config
// is Levels[level-1].
type DriftBoostTuning struct {
	Thresholds []float32
	Levels     []*BoostConfig
}

func (d *DriftBoostTuning) Validate() error {
	if len(d.Thresholds) != len(d.Levels) {
		return kerror.New("drift boost requires one config per threshold (%d thresholds, %d configs)",
			len(d.Thresholds), len(d.Levels))
	}
	for i := range d.Thresholds {
		if d.Thresholds[i] <= 0 {
			return kerror.New("drift boost threshold %d must be positive", i)
		}
		if i > 0 && d.Thresholds[i] <= d.Thresholds[i-1] {
			return kerror.New("drift boost thresholds must be strictly ascending")
		}
		if d.Levels[i] == nil {
			return kerror.New("drift boost level %d has no config", i)
		}
		if err := d.Levels[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// KartStats is the static tuning data shared by every kart of the same model.
// Stats are resolved once at spawn; the per-tick core assumes a valid
// reference and never re-checks it.
type KartStats struct {
	Name string

	Acceleration game.Curve
	TurningRate  game.Curve
	Friction     game.Curve

	MaxSpeed    float32
	MinThrottle float32
	Gravity     float32
	Drag        float32

	RotationCorrection float32
	RotationSmoothing  float32
	MaxTilt            float32
	GroundDistance     float32

	SuspensionTravel float32
	SuspensionLength float32
	WheelOffsets     [game.WheelCount]mgl32.Vec3

	CollisionSize   mgl32.Vec3
	CollisionOffset mgl32.Vec3

	Drift      DriftTuning
	DriftBoost DriftBoostTuning
}

func (s *KartStats) Validate() error {
	if s == nil {
		return kerror.New("kart stats reference is nil")
	}
	if s.MaxSpeed <= 0 {
		return kerror.New("stats %q: max speed must be positive", s.Name)
	}
	if !s.Acceleration.Valid() || !s.TurningRate.Valid() || !s.Friction.Valid() {
		return kerror.New("stats %q: tuning curves require ascending keyframes", s.Name)
	}
	if s.SuspensionTravel < 0 || s.SuspensionLength <= 0 {
		return kerror.New("stats %q: invalid suspension dimensions", s.Name)
	}
	if s.RotationSmoothing <= 0 {
		return kerror.New("stats %q: rotation smoothing threshold must be positive", s.Name)
	}
	if s.GroundDistance <= 0 {
		return kerror.New("stats %q: ground distance must be positive", s.Name)
	}
	if s.Drift.MinSpeed <= 0 {
		return kerror.New("stats %q: drift minimum speed must be positive", s.Name)
	}
	return s.DriftBoost.Validate()
}
