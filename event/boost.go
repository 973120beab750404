package event

// BoostStarted is emitted whenever a boost becomes active on a kart,
// including when it replaces a still-running boost.
type BoostStarted struct {
	KartID string
	Boost  string
}

func (e BoostStarted) Kart() string {
	return e.KartID
}

// DriftBoostCharged is emitted when an ongoing drift crosses a duration
// threshold it had not reached before. Level is the crossed threshold index.
type DriftBoostCharged struct {
	KartID string
	Level  int
}

func (e DriftBoostCharged) Kart() string {
	return e.KartID
}

// DriftBoostApplied is emitted when a drift ends with a reached level > 0 and
// the corresponding boost is started.
type DriftBoostApplied struct {
	KartID string
	Level  int
}

func (e DriftBoostApplied) Kart() string {
	return e.KartID
}
