package engine

import (
	"fmt"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/fit"
)

// Simulation is the result of one pipeline run: an arena of entity stores
// plus the bonus snapshot. It is owned by a single calculation.
type Simulation struct {
	fit      *fit.Fit
	entities []*Entity
	byName   map[string]EntityID
	hull     EntityID
	bonuses  FitBonuses
	skipped  []string
}

func newSimulation(f *fit.Fit) *Simulation {
	return &Simulation{
		fit:      f,
		entities: make([]*Entity, 0, f.ModuleCount()+len(f.Drones)+4),
		byName:   make(map[string]EntityID, f.ModuleCount()+8),
		hull:     NoEntity,
	}
}

// add appends a store for it under instance name and returns the entity.
// alias, when set, is an extra lookup name that does not override an
// existing registration.
func (s *Simulation) add(kind EntityKind, name, alias string, it *data.Item) *Entity {
	e := newEntity(EntityID(len(s.entities)), kind, name, it)
	s.entities = append(s.entities, e)
	s.byName[data.NormalizeName(name)] = e.ID
	if alias != "" {
		if _, ok := s.byName[data.NormalizeName(alias)]; !ok {
			s.byName[data.NormalizeName(alias)] = e.ID
		}
	}
	return e
}

// Fit returns the configuration the simulation was built from.
func (s *Simulation) Fit() *fit.Fit { return s.fit }

// Bonuses returns the proficiency and accumulator snapshot.
func (s *Simulation) Bonuses() FitBonuses { return s.bonuses }

// Skipped returns names that had no catalog entry.
func (s *Simulation) Skipped() []string { return s.skipped }

// Entity returns the entity by id, or nil.
func (s *Simulation) Entity(id EntityID) *Entity {
	if id < 0 || int(id) >= len(s.entities) {
		return nil
	}
	return s.entities[id]
}

// Lookup finds an entity by instance name, or by item name for the first
// instance carrying it.
func (s *Simulation) Lookup(name string) (*Entity, bool) {
	id, ok := s.byName[data.NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return s.entities[id], true
}

// Hull returns the hull entity, or nil when the hull could not be resolved.
func (s *Simulation) Hull() *Entity { return s.Entity(s.hull) }

// Entities returns every entity in creation order.
func (s *Simulation) Entities() []*Entity { return s.entities }

// Modules returns installed module instances in slot order.
func (s *Simulation) Modules() []*Entity { return s.ofKind(KindModule) }

// Drones returns one entity per drone type.
func (s *Simulation) Drones() []*Entity { return s.ofKind(KindDrone) }

// Charges returns one entity per charge type.
func (s *Simulation) Charges() []*Entity { return s.ofKind(KindCharge) }

func (s *Simulation) ofKind(k EntityKind) []*Entity {
	out := make([]*Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// GetModifiedAttribute returns the resolved value of key on the named entity.
// Unknown entities resolve like an empty store.
func (s *Simulation) GetModifiedAttribute(name string, key attr.Key) float64 {
	e, ok := s.Lookup(name)
	if !ok {
		return attr.NewStore(nil).Get(key)
	}
	return e.Get(key)
}

// Base returns the catalog value of key on the named entity.
func (s *Simulation) Base(name string, key attr.Key) (float64, bool) {
	e, ok := s.Lookup(name)
	if !ok {
		return 0, false
	}
	return e.Base(key)
}

// BoostAttribute multiplies key on the named entity by (1 + percent/100)
// with full effect.
func (s *Simulation) BoostAttribute(name string, key attr.Key, percent float64) error {
	e, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("boosting %s: unknown entity %q", data.AttributeName(key), name)
	}
	e.apply(key, attr.NewMultiply(attr.Percent(percent)))
	return nil
}

// SetAbsolute forces key on the named entity to value.
func (s *Simulation) SetAbsolute(name string, key attr.Key, value float64) error {
	e, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("setting %s: unknown entity %q", data.AttributeName(key), name)
	}
	e.apply(key, attr.NewForce(value))
	return nil
}
