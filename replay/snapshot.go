package replay

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"

	"github.com/driftworks/kartsim/kart"
)

// Snapshot is one kart's transform at a given tick, recorded for rewind
// lookup and lockstep verification.
type Snapshot struct {
	Tick int64

	Pos         mgl32.Vec3
	Vel         mgl32.Vec3
	Orientation mgl32.Quat
}

// Capture records the kart's current transform.
func Capture(tick int64, k *kart.Kart) Snapshot {
	return Snapshot{
		Tick:        tick,
		Pos:         k.Pos,
		Vel:         k.Vel,
		Orientation: k.Orientation,
	}
}

const snapshotBytes = 8 + 4*10

// AppendBytes appends the snapshot's exact little-endian bit pattern. Two
// simulation instances in lockstep produce identical bytes, so digest
// comparison detects any divergence down to a single float bit.
func (s Snapshot) AppendBytes(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, uint64(s.Tick))
	for _, f := range [10]float32{
		s.Pos[0], s.Pos[1], s.Pos[2],
		s.Vel[0], s.Vel[1], s.Vel[2],
		s.Orientation.W, s.Orientation.V[0], s.Orientation.V[1], s.Orientation.V[2],
	} {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// Hash returns the snapshot's xxh3 digest.
func (s Snapshot) Hash() uint64 {
	buf := make([]byte, 0, snapshotBytes)
	return xxh3.Hash(s.AppendBytes(buf))
}
