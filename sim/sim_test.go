package sim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
)

// stubTrack implements TrackProvider with a pluggable probe and a fixed
// overlap set.
type stubTrack struct {
	probe    func(origin, dir mgl32.Vec3, maxDist float32) (GroundHit, bool)
	overlaps []Overlap
}

func (t *stubTrack) ProbeGround(origin, dir mgl32.Vec3, maxDist float32) (GroundHit, bool) {
	if t.probe == nil {
		return GroundHit{}, false
	}
	return t.probe(origin, dir, maxDist)
}

func (t *stubTrack) Overlaps(cube.BBox) []Overlap {
	return t.overlaps
}

// flatProbe intersects probes with a flat plane at the given height.
func flatProbe(groundY float32, surface *content.SurfaceDefinition) func(mgl32.Vec3, mgl32.Vec3, float32) (GroundHit, bool) {
	return func(origin, dir mgl32.Vec3, maxDist float32) (GroundHit, bool) {
		if dir.Y() >= 0 {
			return GroundHit{}, false
		}
		dist := (groundY - origin.Y()) / dir.Y()
		if dist < 0 || dist > maxDist {
			return GroundHit{}, false
		}
		return GroundHit{
			Distance: dist,
			Point:    origin.Add(dir.Mul(dist)),
			Normal:   mgl32.Vec3{0, 1, 0},
			Surface:  surface,
		}, true
	}
}

// leftWheelsProbe grounds only the wheels mounted on the kart's left side.
func leftWheelsProbe(groundY float32, surface *content.SurfaceDefinition) func(mgl32.Vec3, mgl32.Vec3, float32) (GroundHit, bool) {
	flat := flatProbe(groundY, surface)
	return func(origin, dir mgl32.Vec3, maxDist float32) (GroundHit, bool) {
		if origin.X() >= 0 {
			return GroundHit{}, false
		}
		return flat(origin, dir, maxDist)
	}
}

func testSimulator(track TrackProvider) *Simulator {
	return NewSimulator(track, Options{})
}

func testKart() *kart.Kart {
	return kart.New("test", content.DefaultStats(), mgl32.Vec3{0, 0.4, 0}, mgl32.QuatIdent())
}

var dt = game.DefaultTickDelta
