package sim

import (
	"github.com/driftworks/kartsim/content"
	"github.com/driftworks/kartsim/event"
	"github.com/driftworks/kartsim/kart"
)

// StartBoost activates the given boost on the kart, unconditionally replacing
// any boost already running. Collaborating systems (powerups, drift) all go
// through this entry point so the boost-started notification is emitted
// consistently.
func (s *Simulator) StartBoost(k *kart.Kart, cfg *content.BoostConfig) {
	k.Boost.Start(cfg)
	k.Notify(event.BoostStarted{KartID: k.ID, Boost: cfg.Name})
}

// updateBoost counts the active boost down by one tick and clears it once the
// remaining duration is used up.
func (s *Simulator) updateBoost(k *kart.Kart, dt float32) {
	if k.Boost.Active == nil {
		return
	}
	k.Boost.Remaining -= dt
	if k.Boost.Remaining <= 0 {
		k.Boost.Interrupt()
	}
}
