package kart

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftworks/kartsim/content"
)

// WheelContact is the result of one wheel's downward probe. All four contacts
// are fully recomputed every tick and never persist across ticks.
type WheelContact struct {
	Grounded bool

	HitPoint  mgl32.Vec3
	HitNormal mgl32.Vec3

	// Compression is the suspension compression in [0, 1], 0 at full probe
	// extension.
	Compression float32

	// Surface references the struck surface. Unset while ungrounded.
	Surface *content.SurfaceDefinition
}
