package sim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// integrate turns the tick's input, sensor, surface and collision data into
// the kart's new velocity, position and orientation. The step order below is
// mandatory: reordering changes the float32 results and breaks lockstep
// determinism across instances.
func (s *Simulator) integrate(k *kart.Kart, input kart.InputState, surf SurfaceSnapshot, dt float32) {
	stats := k.Stats

	// Commit the aggregated surface data and advance the air timer. A single
	// grounded wheel still counts as airborne.
	k.GroundedWheels = surf.GroundedWheels
	k.OffroadWheels = surf.OffroadWheels
	k.FrictionMul = surf.Friction
	k.SpeedMul = surf.Speed
	k.HandlingMul = surf.Handling
	if surf.GroundedWheels <= 1 {
		k.AirTime += dt
	} else {
		k.AirTime = 0
	}
	grounded := k.Grounded()

	// The previous tick's compensation feeds this tick's position
	// prediction; this tick's collision pass feeds the next.
	comp := k.Compensation
	k.Compensation = s.resolveCollisions(k)

	groundNormal := s.clampedGroundNormal(surf, stats)

	candidate := k.Pos.Add(comp).Add(k.Vel.Mul(dt))

	upAxis := k.Up()
	var workingUp mgl32.Vec3
	if grounded {
		workingUp = groundNormal

		// Keep the kart seated on the ground plane built from the averaged
		// contact: kill any velocity pulling it into the plane and snap the
		// candidate up to the configured hover distance.
		dist := candidate.Sub(surf.Point).Dot(groundNormal)
		if dist < stats.GroundDistance {
			vn := k.Vel.Dot(groundNormal)
			if vn < 0 {
				k.Vel = k.Vel.Sub(groundNormal.Mul(vn))
			}
			candidate = candidate.Add(groundNormal.Mul(stats.GroundDistance - dist))
			s.debugf("ground snap (dist=%v vel=%v)", dist, k.Vel)
		}
	} else {
		workingUp = game.SafeNormalize(game.LerpVec3(upAxis, worldUp, stats.RotationCorrection*dt))
		if workingUp.LenSqr() == 0 {
			workingUp = worldUp
		}
	}
	targetForward := game.SafeNormalize(k.Right().Cross(workingUp))
	if targetForward.LenSqr() == 0 {
		targetForward = k.Forward()
	}

	// Blend toward the target orientation. The blend amount grows with both
	// the angular error (normalized against the smoothing threshold) and the
	// number of grounded wheels.
	targetRight := workingUp.Cross(targetForward)
	target := game.OrientationFromBasis(targetRight, workingUp, targetForward)
	angle := game.QuatAngle(k.Orientation, target)
	smoothing := game.Clamp32(angle/stats.RotationSmoothing, 0, 1)
	wheelFactor := 0.25 + 0.75*float32(surf.GroundedWheels)/game.WheelCount
	k.Orientation = mgl32.QuatSlerp(k.Orientation, target, 0.5*smoothing*wheelFactor)

	// Steering yaw. The turning-rate curve is sampled at full normalized
	// speed while drifting so the drift steering offset stays authoritative.
	if math32.Abs(input.Steering) > game.SteeringDeadzone {
		totalSteer := input.Steering + k.Drift.SteeringOffset
		speedSign := game.Sign32(k.Vel.Dot(k.Forward()))
		curveIn := k.NormalizedSpeed()
		if k.Drift.Drifting() {
			curveIn = 1
		}
		yaw := totalSteer * surf.Handling * speedSign * stats.TurningRate.Evaluate(curveIn) * dt
		k.Orientation = mgl32.QuatRotate(-yaw, workingUp).Mul(k.Orientation).Normalize()
	}

	k.Pos = candidate
	right := k.Right()
	sideways := k.Vel.Dot(right)
	k.SidewaysSpeedSqr = sideways * sideways

	// Forward acceleration, grounded only.
	if grounded {
		accel := stats.Acceleration.Evaluate(k.NormalizedSpeed())*surf.Speed + k.Boost.AccelBonus()
		throttle := game.Clamp32(input.Throttle, stats.MinThrottle, 1)
		k.Vel = k.Vel.Add(k.Forward().Mul(accel * throttle * dt))
	}

	// Accumulated external force (drift and collaborators), then gravity
	// along the working up axis, reduced while grounded.
	k.Vel = k.Vel.Add(k.ConsumeForce().Mul(dt))
	gravityMul := float32(1)
	if grounded {
		gravityMul = game.GroundedGravityMultiplier
	}
	k.Vel = k.Vel.Sub(workingUp.Mul(stats.Gravity * gravityMul * dt))

	// Lateral friction, grounded only.
	if grounded {
		lat := k.Vel.Dot(right)
		k.Vel = k.Vel.Sub(right.Mul(lat * surf.Friction * stats.Friction.Evaluate(k.NormalizedSpeed())))
	}

	// Drag, reduced while airborne.
	dragMul := float32(1)
	if !grounded {
		dragMul = game.AirborneDragMultiplier
	}
	k.Vel = k.Vel.Sub(k.Vel.Mul(stats.Drag * dragMul * dt))

	// Soft speed clamp: approach the cap by a fixed step per tick so a boost
	// running out decays speed instead of snapping it.
	limit := stats.MaxSpeed + k.Boost.MaxSpeedBonus()
	k.Vel = game.MoveTowardVec3(k.Vel, game.ClampMagnitude(k.Vel, limit), game.SpeedClampStep)

	s.debugf("integrated tick (pos=%v vel=%v grounded=%v)", k.Pos, k.Vel, grounded)
}

// clampedGroundNormal limits the averaged ground normal's tilt against world
// up, interpolating toward world up by the excess fraction so extreme slopes
// cannot flip the kart's orientation. A degenerate (all-airborne) normal
// falls back to world up.
func (s *Simulator) clampedGroundNormal(surf SurfaceSnapshot, stats *content.KartStats) mgl32.Vec3 {
	normal := game.SafeNormalize(surf.Normal)
	if normal.LenSqr() == 0 {
		return worldUp
	}

	tilt := math32.Acos(game.Clamp32(normal.Dot(worldUp), -1, 1))
	if tilt <= stats.MaxTilt {
		return normal
	}
	excess := (tilt - stats.MaxTilt) / tilt
	clamped := game.SafeNormalize(game.LerpVec3(normal, worldUp, excess))
	if clamped.LenSqr() == 0 {
		return worldUp
	}
	return clamped
}
