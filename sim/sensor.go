package sim

import (
	"github.com/driftworks/kartsim/kart"
)

// senseWheels runs the per-wheel short-range downward probe. Each probe
// starts suspensionTravel above the wheel mount and ends suspensionLength
// below it along the kart's down axis. A missing hit marks the wheel
// ungrounded with its surface data unset; that is a normal outcome.
func (s *Simulator) senseWheels(k *kart.Kart) {
	up := k.Up()
	down := up.Mul(-1)
	span := k.Stats.SuspensionLength + k.Stats.SuspensionTravel

	for i := range k.Wheels {
		mount := k.Pos.Add(k.Orientation.Rotate(k.Stats.WheelOffsets[i]))
		origin := mount.Add(up.Mul(k.Stats.SuspensionTravel))

		hit, ok := s.Track.ProbeGround(origin, down, span)
		w := &k.Wheels[i]
		if !ok {
			*w = kart.WheelContact{}
			continue
		}

		w.Grounded = true
		w.HitPoint = hit.Point
		w.HitNormal = hit.Normal
		w.Compression = 1 - hit.Distance/span
		w.Surface = hit.Surface
	}
}
