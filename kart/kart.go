package kart

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/assert"
	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/event"
	"github.com/driftworks/kartsim/game"
)

// Kart owns all mutable per-vehicle simulation state. One Kart is created
// when the entity spawns and destroyed when it is removed; there is no other
// creation or destruction point. Within a tick a kart is written by exactly
// one goroutine and never touches another kart's state.
type Kart struct {
	ID    string
	Stats *content.KartStats

	Pos, LastPos mgl32.Vec3
	Vel, LastVel mgl32.Vec3

	Orientation, LastOrientation mgl32.Quat

	SpawnPos         mgl32.Vec3
	SpawnOrientation mgl32.Quat

	// Force accumulates external forces (drift, hit reactions) during the
	// tick. It is consumed and zeroed by the integrator every tick.
	Force mgl32.Vec3

	Wheels [game.WheelCount]WheelContact

	GroundedWheels int
	OffroadWheels  int
	AirTime        float32

	FrictionMul float32
	SpeedMul    float32
	HandlingMul float32

	// Compensation is the positional correction produced by the collision
	// pass, consumed by the next tick's position prediction.
	Compensation mgl32.Vec3

	SidewaysSpeedSqr float32

	Drift      DriftState
	DriftBoost DriftBoostState
	Boost      BoostState

	pending []event.Event
}

// New creates a kart at the given spawn transform, pre-populated from the
// given stats. Invalid stats are a configuration error and panic; callers
// validate at load time.
func New(id string, stats *content.KartStats, pos mgl32.Vec3, orientation mgl32.Quat) *Kart {
	assert.IsTrue(stats != nil, game.ErrorStatsMissing)

	k := &Kart{
		ID:    id,
		Stats: stats,

		Pos:         pos,
		LastPos:     pos,
		Orientation: orientation,

		SpawnPos:         pos,
		SpawnOrientation: orientation,
	}
	k.LastOrientation = k.Orientation
	k.DriftBoost.Reset()
	return k
}

// BeginTick rolls the transform into the Last* fields before any mutation.
func (k *Kart) BeginTick() {
	k.LastPos = k.Pos
	k.LastVel = k.Vel
	k.LastOrientation = k.Orientation
}

// Right returns the kart's local +X axis in world space.
func (k *Kart) Right() mgl32.Vec3 {
	return k.Orientation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the kart's local +Y axis in world space.
func (k *Kart) Up() mgl32.Vec3 {
	return k.Orientation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Forward returns the kart's local +Z axis in world space.
func (k *Kart) Forward() mgl32.Vec3 {
	return k.Orientation.Rotate(mgl32.Vec3{0, 0, 1})
}

// AddForce accumulates an external force consumed by this tick's integration.
func (k *Kart) AddForce(f mgl32.Vec3) {
	k.Force = k.Force.Add(f)
}

// ConsumeForce returns the accumulated external force and zeroes it.
func (k *Kart) ConsumeForce() mgl32.Vec3 {
	f := k.Force
	k.Force = mgl32.Vec3{}
	return f
}

// Grounded reports whether the kart counts as grounded for gameplay purposes.
// A single grounded wheel is not enough.
func (k *Kart) Grounded() bool {
	return k.GroundedWheels > 1
}

// FullyOffroad reports whether every wheel is on an offroad surface, which is
// what gameplay effects such as drift denial require.
func (k *Kart) FullyOffroad() bool {
	return k.OffroadWheels == game.WheelCount
}

// NormalizedSpeed is the current speed divided by the stats' max speed, used
// to sample the tuning curves.
func (k *Kart) NormalizedSpeed() float32 {
	return math32.Sqrt(k.Vel.LenSqr()) / k.Stats.MaxSpeed
}

// CollisionBox returns the kart's collision volume at its current position.
func (k *Kart) CollisionBox() cube.BBox {
	half := k.Stats.CollisionSize.Mul(0.5)
	return cube.Box(
		-half.X(), -half.Y(), -half.Z(),
		half.X(), half.Y(), half.Z(),
	).Translate(k.Pos.Add(k.Stats.CollisionOffset))
}

// Respawn re-seats the kart at its spawn transform with cleared dynamics.
func (k *Kart) Respawn() {
	k.Pos, k.LastPos = k.SpawnPos, k.SpawnPos
	k.Vel, k.LastVel = mgl32.Vec3{}, mgl32.Vec3{}
	k.Orientation, k.LastOrientation = k.SpawnOrientation, k.SpawnOrientation

	k.Force = mgl32.Vec3{}
	k.Compensation = mgl32.Vec3{}
	k.AirTime = 0
	k.SidewaysSpeedSqr = 0

	k.Drift = DriftState{}
	k.DriftBoost.Reset()
	k.Boost.Interrupt()
}

// Notify buffers a notification for deterministic delivery once the tick's
// simulation pass has completed.
func (k *Kart) Notify(ev event.Event) {
	k.pending = append(k.pending, ev)
}

// DrainEvents returns and clears the buffered notifications in emission
// order.
func (k *Kart) DrainEvents() []event.Event {
	evs := k.pending
	k.pending = nil
	return evs
}
