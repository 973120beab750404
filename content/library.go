package content

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/driftworks/kartsim/kerror"
)

// Library is the immutable asset registry handed to the simulation at
// startup. Registration order is preserved so that iteration is identical
// across instances.
type Library struct {
	surfaces *orderedmap.OrderedMap[string, *SurfaceDefinition]
	boosts   *orderedmap.OrderedMap[string, *BoostConfig]
	stats    *orderedmap.OrderedMap[string, *KartStats]
}

func NewLibrary() *Library {
	return &Library{
		surfaces: orderedmap.NewOrderedMap[string, *SurfaceDefinition](),
		boosts:   orderedmap.NewOrderedMap[string, *BoostConfig](),
		stats:    orderedmap.NewOrderedMap[string, *KartStats](),
	}
}

// AddSurface validates and registers a surface definition.
func (l *Library) AddSurface(s *SurfaceDefinition) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := l.surfaces.Get(s.Name); ok {
		return kerror.New("surface %q registered twice", s.Name)
	}
	l.surfaces.Set(s.Name, s)
	return nil
}

// AddBoost validates and registers a boost config.
func (l *Library) AddBoost(b *BoostConfig) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, ok := l.boosts.Get(b.Name); ok {
		return kerror.New("boost %q registered twice", b.Name)
	}
	l.boosts.Set(b.Name, b)
	return nil
}

// AddStats validates and registers a kart tuning set.
func (l *Library) AddStats(s *KartStats) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := l.stats.Get(s.Name); ok {
		return kerror.New("stats %q registered twice", s.Name)
	}
	l.stats.Set(s.Name, s)
	return nil
}

func (l *Library) Surface(name string) (*SurfaceDefinition, bool) {
	return l.surfaces.Get(name)
}

func (l *Library) Boost(name string) (*BoostConfig, bool) {
	return l.boosts.Get(name)
}

func (l *Library) Stats(name string) (*KartStats, bool) {
	return l.stats.Get(name)
}

// Surfaces iterates registered surfaces in registration order.
func (l *Library) Surfaces(f func(*SurfaceDefinition)) {
	for el := l.surfaces.Front(); el != nil; el = el.Next() {
		f(el.Value)
	}
}

// StatsNames returns registered tuning names in registration order.
func (l *Library) StatsNames() []string {
	names := make([]string, 0, l.stats.Len())
	for el := l.stats.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}
