package kart

// InputState represents a single tick's already-sampled control input for one
// kart. It is produced by an external input or AI layer; the core assumes the
// values are sanitized.
type InputState struct {
	Throttle float32
	Steering float32

	// DriftPressed is edge-triggered: true only on the tick the drift button
	// went down. DriftHeld is the level state.
	DriftPressed bool
	DriftHeld    bool

	PowerupPressed   bool
	RespawnRequested bool
}
