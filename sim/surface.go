package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
)

// SurfaceSnapshot is the per-tick reduction of the four wheel contacts.
type SurfaceSnapshot struct {
	GroundedWheels int
	OffroadWheels  int

	Normal mgl32.Vec3
	Point  mgl32.Vec3

	Friction float32
	Speed    float32
	Handling float32
}

// aggregateSurface reduces the wheel contacts into this tick's multipliers
// and orientation hints.
//
// The averaging denominators are asymmetric and load-bearing for handling
// feel: normal, point, speed and handling sum over grounded wheels but divide
// by groundedWheels+1, while friction sums over grounded wheels and divides
// by the full wheel count. Do not unify them.
func (s *Simulator) aggregateSurface(k *kart.Kart) SurfaceSnapshot {
	var snap SurfaceSnapshot

	for i := range k.Wheels {
		w := &k.Wheels[i]
		if !w.Grounded {
			continue
		}
		snap.GroundedWheels++
		if w.Surface.Offroad {
			snap.OffroadWheels++
		}

		snap.Normal = snap.Normal.Add(w.HitNormal)
		snap.Point = snap.Point.Add(w.HitPoint)

		snap.Friction += w.Surface.Friction
		snap.Speed += w.Surface.Speed
		snap.Handling += w.Surface.Handling
	}

	inv := 1 / float32(snap.GroundedWheels+1)
	snap.Normal = snap.Normal.Mul(inv)
	snap.Point = snap.Point.Mul(inv)
	snap.Speed *= inv
	snap.Handling *= inv
	snap.Friction /= game.WheelCount

	return snap
}
