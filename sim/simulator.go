package sim

import (
	"github.com/driftworks/kartsim/assert"
	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
)

// Options define simulator behavior.
type Options struct {
	// TickDelta is the fixed tick duration in seconds. Defaults to
	// game.DefaultTickDelta when zero.
	TickDelta float32

	// Debugf receives internal simulation trace logs for callers that need
	// deep diagnostics.
	Debugf func(format string, args ...any)
}

// Simulator runs the per-tick vehicle simulation for one kart at a time. It
// holds no per-kart state itself, so a single Simulator may be shared across
// karts as long as each kart is processed by one goroutine per tick.
type Simulator struct {
	Track   TrackProvider
	Options Options
}

// NewSimulator creates a simulator over the given track.
func NewSimulator(track TrackProvider, opts Options) *Simulator {
	assert.IsTrue(track != nil, game.ErrorTrackMissing)
	if opts.TickDelta == 0 {
		opts.TickDelta = game.DefaultTickDelta
	}
	assert.IsTrue(opts.TickDelta > 0, game.ErrorTickDeltaNonPositive, opts.TickDelta)
	return &Simulator{Track: track, Options: opts}
}

// Simulate advances one kart by one tick. The required component order is
// fixed: wheel sensing, surface aggregation, collision resolution, drift
// controller, boost controller, vehicle integration. Reordering changes the
// numeric outcome and breaks lockstep determinism.
func (s *Simulator) Simulate(k *kart.Kart, input kart.InputState) Result {
	if k == nil {
		return Result{}
	}
	dt := s.Options.TickDelta

	k.BeginTick()
	if input.RespawnRequested {
		k.Respawn()
		input = kart.InputState{}
	}

	s.senseWheels(k)
	surf := s.aggregateSurface(k)
	s.simulateDrift(k, input, dt)
	s.updateBoost(k, dt)
	s.integrate(k, input, surf, dt)

	return s.resultFromState(k)
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}
