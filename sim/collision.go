package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
)

var worldDown = mgl32.Vec3{0, -1, 0}

// resolveCollisions runs the soft collision response against the obstacles
// overlapping the kart's collision volume this tick. It dampens the kart's
// horizontal velocity in place and returns the positional compensation
// consumed by the next tick's position prediction.
func (s *Simulator) resolveCollisions(k *kart.Kart) mgl32.Vec3 {
	overlaps := s.Track.Overlaps(k.CollisionBox())
	if len(overlaps) == 0 {
		return mgl32.Vec3{}
	}

	velDir := game.SafeNormalize(k.Vel)

	var bounce mgl32.Vec3
	var maxDepth float32
	for _, ov := range overlaps {
		d := velDir.Dot(ov.Normal)
		// Moving away from the contact: ignore it so the kart cannot pop
		// through thin geometry on the exit side.
		if d > 0 {
			continue
		}
		// Near-vertical contacts are the ground, not an obstacle.
		if ov.Normal.Dot(worldDown) > game.ObstacleGroundDot {
			continue
		}

		bounce = bounce.Add(ov.Normal)
		horizontal := mgl32.Vec3{k.Vel.X(), 0, k.Vel.Z()}
		k.Vel = k.Vel.Sub(horizontal.Mul(d * d * game.CollisionDampingFactor))
		if ov.Depth > maxDepth {
			maxDepth = ov.Depth
		}
		s.debugf("collision contact (normal=%v depth=%v vel=%v)", ov.Normal, ov.Depth, k.Vel)
	}

	bounce[1] = 0
	// Opposing contact normals can cancel to a near-zero bounce vector. Skip
	// the compensation entirely rather than normalizing noise into NaN.
	if bounce.LenSqr() < 1e-12 {
		return mgl32.Vec3{}
	}
	return bounce.Normalize().Mul(maxDepth)
}
