package content

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/game"
)

// DefaultSurface is the baseline paved track surface.
func DefaultSurface() *SurfaceDefinition {
	return &SurfaceDefinition{
		Name:     "asphalt",
		Friction: 1.0,
		Speed:    1.0,
		Handling: 1.0,
	}
}

// DefaultStats returns a baseline kart tuning used by the demo runner and the
// test suite.
func DefaultStats() *KartStats {
	return &KartStats{
		Name: "standard",

		Acceleration: game.NewCurve(
			game.CurvePoint{In: 0, Out: 14},
			game.CurvePoint{In: 0.6, Out: 9},
			game.CurvePoint{In: 1, Out: 2},
		),
		TurningRate: game.NewCurve(
			game.CurvePoint{In: 0, Out: 0.6},
			game.CurvePoint{In: 0.35, Out: 1.6},
			game.CurvePoint{In: 1, Out: 1.1},
		),
		Friction: game.NewCurve(
			game.CurvePoint{In: 0, Out: 0.9},
			game.CurvePoint{In: 1, Out: 0.55},
		),

		MaxSpeed:    22,
		MinThrottle: 0.1,
		Gravity:     24,
		Drag:        0.9,

		RotationCorrection: 2.2,
		RotationSmoothing:  0.45,
		MaxTilt:            0.7,
		GroundDistance:     0.35,

		SuspensionTravel: 0.25,
		SuspensionLength: 0.45,
		WheelOffsets: [game.WheelCount]mgl32.Vec3{
			{-0.55, 0, 0.7},
			{0.55, 0, 0.7},
			{-0.55, 0, -0.7},
			{0.55, 0, -0.7},
		},

		CollisionSize:   mgl32.Vec3{1.4, 0.9, 2.0},
		CollisionOffset: mgl32.Vec3{0, 0.45, 0},

		Drift: DriftTuning{
			SideAcceleration:  16,
			ForwardFactor:     0.35,
			MaxSteeringOffset: 0.65,

			MinSpeed:             6,
			MinSidewaysSpeed:     1.5,
			MaxAirTime:           0.5,
			MaxNoSteerTime:       0.35,
			MaxOppositeSteerTime: 0.25,
		},
		DriftBoost: DriftBoostTuning{
			Thresholds: []float32{1.0, 2.0, 3.0},
			Levels: []*BoostConfig{
				{Name: "drift-small", Duration: 0.8, Acceleration: 10, MaxSpeed: 4},
				{Name: "drift-medium", Duration: 1.4, Acceleration: 12, MaxSpeed: 6},
				{Name: "drift-large", Duration: 2.2, Acceleration: 14, MaxSpeed: 8},
			},
		},
	}
}
