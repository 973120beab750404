// Package kartsim is a deterministic per-tick vehicle simulation core for a
// networked kart-racing game. The Engine owns the karts and drives the fixed
// component order each tick; all arithmetic is single-path float32 so that
// independent instances fed identical inputs stay bit-identical, which the
// per-tick state digest verifies.
package kartsim

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/zeebo/xxh3"

	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/event"
	"github.com/driftworks/kartsim/game"
	"github.com/driftworks/kartsim/kart"
	"github.com/driftworks/kartsim/kerror"
	"github.com/driftworks/kartsim/replay"
	"github.com/driftworks/kartsim/sim"
	"github.com/driftworks/kartsim/worker"
)

// Options configure an Engine.
type Options struct {
	// TickDelta is the fixed tick duration in seconds; defaults to
	// game.DefaultTickDelta.
	TickDelta float32

	// Events receives simulation notifications; nil discards them.
	Events event.Sink

	// HistoryLength is the per-kart snapshot buffer capacity in ticks;
	// defaults to 2 seconds worth.
	HistoryLength int

	// Parallel fans per-kart simulation out on the worker pool. Each kart is
	// still written by exactly one goroutine per tick, and events are drained
	// in kart registration order after the join, so results and emission
	// order are identical to the serial path.
	Parallel bool

	Log zerolog.Logger
}

type entry struct {
	kart    *kart.Kart
	input   kart.InputState
	history *replay.RingBuffer
}

// Engine owns the full simulation state for one instance. It is not safe for
// concurrent use; one goroutine drives Tick.
type Engine struct {
	sim   *sim.Simulator
	karts *orderedmap.OrderedMap[string, *entry]

	tick    int64
	delta   float32
	history int

	events   event.Sink
	parallel bool
	log      zerolog.Logger
}

// New creates an engine simulating over the given track.
func New(track sim.TrackProvider, opts Options) *Engine {
	if opts.TickDelta == 0 {
		opts.TickDelta = game.DefaultTickDelta
	}
	if opts.Events == nil {
		opts.Events = event.NopSink{}
	}
	if opts.HistoryLength <= 0 {
		opts.HistoryLength = 2 * game.DefaultTickRate
	}

	return &Engine{
		sim:      sim.NewSimulator(track, sim.Options{TickDelta: opts.TickDelta}),
		karts:    orderedmap.NewOrderedMap[string, *entry](),
		delta:    opts.TickDelta,
		history:  opts.HistoryLength,
		events:   opts.Events,
		parallel: opts.Parallel,
		log:      opts.Log,
	}
}

// Spawn creates a kart at the given spawn transform. Stats are validated
// here, once: an invalid tuning set is a configuration error and the kart is
// not created.
func (e *Engine) Spawn(id string, stats *content.KartStats, pos mgl32.Vec3, orientation mgl32.Quat) (*kart.Kart, error) {
	if err := stats.Validate(); err != nil {
		return nil, kerror.New(game.ErrorStatsInvalid, err)
	}
	if _, ok := e.karts.Get(id); ok {
		return nil, kerror.New(game.ErrorDuplicateKart, id)
	}

	k := kart.New(id, stats, pos, orientation)
	e.karts.Set(id, &entry{
		kart:    k,
		history: replay.NewRingBuffer(e.history),
	})
	e.log.Info().Str("kart", id).Str("stats", stats.Name).Msg("kart spawned")
	return k, nil
}

// Remove destroys a kart and its history.
func (e *Engine) Remove(id string) error {
	if !e.karts.Delete(id) {
		return kerror.New(game.ErrorUnknownKart, id)
	}
	e.log.Info().Str("kart", id).Msg("kart removed")
	return nil
}

// Kart returns the kart with the given id.
func (e *Engine) Kart(id string) (*kart.Kart, bool) {
	en, ok := e.karts.Get(id)
	if !ok {
		return nil, false
	}
	return en.kart, true
}

// SetInput stores the input record consumed by the kart's next tick.
func (e *Engine) SetInput(id string, input kart.InputState) error {
	en, ok := e.karts.Get(id)
	if !ok {
		return kerror.New(game.ErrorUnknownKart, id)
	}
	en.input = input
	return nil
}

// StartBoost activates a boost on a kart on behalf of an external
// collaborator (e.g. a powerup system).
func (e *Engine) StartBoost(id string, cfg *content.BoostConfig) error {
	en, ok := e.karts.Get(id)
	if !ok {
		return kerror.New(game.ErrorUnknownKart, id)
	}
	e.sim.StartBoost(en.kart, cfg)
	return nil
}

// Tick advances every kart by one fixed step, records replay snapshots and
// delivers the tick's notifications in kart registration order.
func (e *Engine) Tick() {
	e.tick++

	if e.parallel {
		var batch worker.Batch
		for el := e.karts.Front(); el != nil; el = el.Next() {
			en := el.Value
			batch.Go(func() {
				e.sim.Simulate(en.kart, en.input)
			})
		}
		batch.Wait()
	} else {
		for el := e.karts.Front(); el != nil; el = el.Next() {
			en := el.Value
			e.sim.Simulate(en.kart, en.input)
		}
	}

	for el := e.karts.Front(); el != nil; el = el.Next() {
		en := el.Value
		en.input = kart.InputState{}
		en.history.Add(replay.Capture(e.tick, en.kart))
		for _, ev := range en.kart.DrainEvents() {
			e.events.Handle(ev)
		}
	}
}

// CurrentTick returns the number of completed ticks.
func (e *Engine) CurrentTick() int64 {
	return e.tick
}

// TickDelta returns the fixed tick duration in seconds.
func (e *Engine) TickDelta() float32 {
	return e.delta
}

// History returns the snapshot buffer of the given kart.
func (e *Engine) History(id string) (*replay.RingBuffer, bool) {
	en, ok := e.karts.Get(id)
	if !ok {
		return nil, false
	}
	return en.history, true
}

// StateDigest hashes every kart's current transform in registration order.
// Two lockstep instances fed identical inputs must report identical digests
// every tick; any difference pins the first diverging tick.
func (e *Engine) StateDigest() uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 64)
	for el := e.karts.Front(); el != nil; el = el.Next() {
		buf = replay.Capture(e.tick, el.Value.kart).AppendBytes(buf[:0])
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
