package replay

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapAt(tick int64) Snapshot {
	return Snapshot{
		Tick:        tick,
		Pos:         mgl32.Vec3{float32(tick), 0, 0},
		Orientation: mgl32.QuatIdent(),
	}
}

func TestRingBufferEviction(t *testing.T) {
	rb := NewRingBuffer(4)
	for tick := int64(0); tick < 6; tick++ {
		rb.Add(snapAt(tick))
	}

	assert.Equal(t, 4, rb.Size())
	assert.Equal(t, 4, rb.Capacity())

	_, ok := rb.Get(1)
	assert.False(t, ok, "tick 1 was evicted")

	s, ok := rb.Get(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), s.Tick)

	latest, ok := rb.Latest()
	require.True(t, ok)
	assert.Equal(t, int64(5), latest.Tick)
}

func TestRingBufferGetClosest(t *testing.T) {
	rb := NewRingBuffer(8)
	for _, tick := range []int64{10, 12, 14} {
		rb.Add(snapAt(tick))
	}

	s, ok := rb.GetClosest(11)
	require.True(t, ok)
	// Ties resolve to the more recent snapshot (search runs newest first).
	assert.Contains(t, []int64{10, 12}, s.Tick)

	s, ok = rb.GetClosest(100)
	require.True(t, ok)
	assert.Equal(t, int64(14), s.Tick)

	s, ok = rb.GetClosest(0)
	require.True(t, ok)
	assert.Equal(t, int64(10), s.Tick)
}

func TestRingBufferEmpty(t *testing.T) {
	rb := NewRingBuffer(4)

	_, ok := rb.Get(0)
	assert.False(t, ok)
	_, ok = rb.GetClosest(0)
	assert.False(t, ok)
	_, ok = rb.Latest()
	assert.False(t, ok)
}

func TestSnapshotHashBitExact(t *testing.T) {
	a := Snapshot{
		Tick:        7,
		Pos:         mgl32.Vec3{1.5, 0.25, -3},
		Vel:         mgl32.Vec3{0, 0, 12.125},
		Orientation: mgl32.QuatIdent(),
	}
	b := a
	assert.Equal(t, a.Hash(), b.Hash())

	// A single-ULP change in any component changes the digest.
	b.Vel[2] = math32.Nextafter(b.Vel[2], 100)
	assert.NotEqual(t, a.Hash(), b.Hash())

	c := a
	c.Tick++
	assert.NotEqual(t, a.Hash(), c.Hash())
}
