package event

// Event is a one-way notification emitted by the simulation core. Consumers
// (view, race, AI layers) must not feed anything back into the tick that
// emitted it.
type Event interface {
	// Kart returns the id of the kart the event belongs to.
	Kart() string
}

// Sink receives simulation events. Events for one tick are delivered after
// every kart has been simulated, in kart registration order.
type Sink interface {
	Handle(ev Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Handle(Event) {}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Handle(ev Event) {
	f(ev)
}
