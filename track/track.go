// Package track implements a static sim.TrackProvider: a flat ground plane
// with rectangular surface patches and axis-aligned box obstacles. It is the
// geometry backend used by the demo runner and the test suite; a full game
// would swap in mesh-based providers behind the same interface.
package track

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/sim"
)

// Patch overrides the default surface inside an XZ rectangle.
type Patch struct {
	MinX, MinZ float32
	MaxX, MaxZ float32
	Surface    *content.SurfaceDefinition
}

func (p Patch) contains(x, z float32) bool {
	return x >= p.MinX && x <= p.MaxX && z >= p.MinZ && z <= p.MaxZ
}

// Flat is a flat track at a fixed ground height. The obstacle and patch sets
// are immutable once simulation starts; every query is a snapshot read.
type Flat struct {
	GroundHeight float32
	Surface      *content.SurfaceDefinition

	Patches   []Patch
	Obstacles []cube.BBox
}

// NewFlat creates a flat track at height 0 with the given default surface.
func NewFlat(surface *content.SurfaceDefinition) *Flat {
	return &Flat{Surface: surface}
}

// AddPatch registers a surface override region. Must be called before
// simulation starts.
func (t *Flat) AddPatch(p Patch) {
	t.Patches = append(t.Patches, p)
}

// AddObstacle registers a static box obstacle. Must be called before
// simulation starts.
func (t *Flat) AddObstacle(box cube.BBox) {
	t.Obstacles = append(t.Obstacles, box)
}

// ProbeGround intersects a downward ray with the ground plane.
func (t *Flat) ProbeGround(origin, dir mgl32.Vec3, maxDist float32) (sim.GroundHit, bool) {
	if dir.Y() >= 0 {
		return sim.GroundHit{}, false
	}
	dist := (t.GroundHeight - origin.Y()) / dir.Y()
	if dist < 0 || dist > maxDist {
		return sim.GroundHit{}, false
	}

	point := origin.Add(dir.Mul(dist))
	return sim.GroundHit{
		Distance: dist,
		Point:    point,
		Normal:   mgl32.Vec3{0, 1, 0},
		Surface:  t.surfaceAt(point.X(), point.Z()),
	}, true
}

// Overlaps returns contact data for every obstacle intersecting the given
// volume. The contact normal points from the obstacle toward the volume's
// center along the axis of least penetration.
func (t *Flat) Overlaps(box cube.BBox) []sim.Overlap {
	var overlaps []sim.Overlap
	for _, ob := range t.Obstacles {
		if !box.IntersectsWith(ob) {
			continue
		}
		overlaps = append(overlaps, boxContact(box, ob))
	}
	return overlaps
}

func (t *Flat) surfaceAt(x, z float32) *content.SurfaceDefinition {
	// Later patches win, so localized overrides can sit inside larger ones.
	surface := t.Surface
	for _, p := range t.Patches {
		if p.contains(x, z) {
			surface = p.Surface
		}
	}
	return surface
}

// boxContact derives a contact normal and penetration depth for two
// intersecting boxes: the axis with the smallest overlap, signed toward the
// moving box's center.
func boxContact(moving, obstacle cube.BBox) sim.Overlap {
	center := moving.Min().Add(moving.Max()).Mul(0.5)
	obCenter := obstacle.Min().Add(obstacle.Max()).Mul(0.5)

	var normal mgl32.Vec3
	depth := float32(math32.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		overlap := math32.Min(moving.Max()[axis], obstacle.Max()[axis]) -
			math32.Max(moving.Min()[axis], obstacle.Min()[axis])
		if overlap >= depth {
			continue
		}
		depth = overlap
		normal = mgl32.Vec3{}
		if center[axis] >= obCenter[axis] {
			normal[axis] = 1
		} else {
			normal[axis] = -1
		}
	}
	return sim.Overlap{Normal: normal, Depth: depth}
}
