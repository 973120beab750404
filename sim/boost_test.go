package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/event"
)

func TestStartBoostReplacesActiveBoost(t *testing.T) {
	s := testSimulator(&stubTrack{})
	k := testKart()

	boostY := &content.BoostConfig{Name: "Y", Duration: 3, Acceleration: 5, MaxSpeed: 3}
	boostX := &content.BoostConfig{Name: "X", Duration: 1.2, Acceleration: 8, MaxSpeed: 5}

	s.StartBoost(k, boostY)
	// Burn Y down to 1.5s remaining.
	for i := 0; i < 90; i++ {
		s.updateBoost(k, dt)
	}
	require.Greater(t, k.Boost.Remaining, float32(1.4))

	s.StartBoost(k, boostX)

	// No stacking, no queueing: X fully replaces Y.
	assert.Same(t, boostX, k.Boost.Active)
	assert.Equal(t, boostX.Duration, k.Boost.Remaining)
	assert.Equal(t, boostX.Acceleration, k.Boost.AccelBonus())
	assert.Equal(t, boostX.MaxSpeed, k.Boost.MaxSpeedBonus())

	evs := k.DrainEvents()
	require.Len(t, evs, 2)
	assert.Equal(t, event.BoostStarted{KartID: "test", Boost: "Y"}, evs[0])
	assert.Equal(t, event.BoostStarted{KartID: "test", Boost: "X"}, evs[1])
}

func TestBoostCountdownClears(t *testing.T) {
	s := testSimulator(&stubTrack{})
	k := testKart()
	s.StartBoost(k, &content.BoostConfig{Name: "short", Duration: 3 * dt, Acceleration: 5})

	s.updateBoost(k, dt)
	s.updateBoost(k, dt)
	require.NotNil(t, k.Boost.Active)

	s.updateBoost(k, dt)
	assert.Nil(t, k.Boost.Active)
	assert.Equal(t, float32(0), k.Boost.Remaining)
	assert.Equal(t, float32(0), k.Boost.AccelBonus())
	assert.Equal(t, float32(0), k.Boost.MaxSpeedBonus())
}

func TestBoostInterruptIdempotent(t *testing.T) {
	k := testKart()

	k.Boost.Interrupt()
	assert.Nil(t, k.Boost.Active)
	assert.Equal(t, float32(0), k.Boost.Remaining)

	// Interrupting again changes nothing.
	k.Boost.Interrupt()
	assert.Nil(t, k.Boost.Active)
	assert.Equal(t, float32(0), k.Boost.Remaining)

	k.Boost.Start(&content.BoostConfig{Name: "b", Duration: 1})
	k.Boost.Interrupt()
	assert.Nil(t, k.Boost.Active)
	assert.Equal(t, float32(0), k.Boost.Remaining)
}
