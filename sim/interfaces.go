package sim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/content"
)

// GroundHit is the nearest result of a wheel's downward probe.
type GroundHit struct {
	// Distance is measured from the probe origin along the probe direction.
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Surface  *content.SurfaceDefinition
}

// Overlap is one obstacle intersecting a kart's collision volume. Normal
// points from the obstacle toward the kart; Depth is the penetration depth
// along it.
type Overlap struct {
	Normal mgl32.Vec3
	Depth  float32
}

// TrackProvider bridges the static track geometry for ground probes and
// overlap queries. Results are snapshot reads: the track must not change
// while a tick is being processed.
type TrackProvider interface {
	// ProbeGround casts a ray and returns the nearest surface hit within
	// maxDist, if any. Absence of a hit is a normal outcome, not an error.
	ProbeGround(origin, dir mgl32.Vec3, maxDist float32) (GroundHit, bool)

	// Overlaps returns the obstacles intersecting the given volume this
	// tick, excluding the querying kart itself.
	Overlaps(box cube.BBox) []Overlap
}
