package attr

import "fmt"

// DamageMultiplier is the one key with a protective default: a missing or
// zeroed multiplier must not wipe out weapon damage.
const DamageMultiplier Key = 64

// Store owns one entity's base attributes and every modifier applied to it.
// Not safe for concurrent use: a store belongs to exactly one calculation.
type Store struct {
	base      map[Key]float64
	modifiers map[Key][]Modifier
	resolved  map[Key]float64
}

// NewStore copies base so later changes to the caller's map are not observed.
func NewStore(base map[Key]float64) *Store {
	b := make(map[Key]float64, len(base))
	for k, v := range base {
		b[k] = v
	}
	return &Store{
		base:      b,
		modifiers: make(map[Key][]Modifier, 8),
		resolved:  make(map[Key]float64, 8),
	}
}

// Base returns the unmodified base value.
func (s *Store) Base(key Key) (float64, bool) {
	v, ok := s.base[key]
	return v, ok
}

// Get returns the fully resolved value for key.
func (s *Store) Get(key Key) float64 {
	v, ok := s.resolved[key]
	if !ok {
		v = s.base[key]
	}
	if key == DamageMultiplier && v == 0 {
		return 1
	}
	return v
}

// ApplyModifier appends mod and re-resolves key immediately.
// An unknown Kind is a programming error and panics.
func (s *Store) ApplyModifier(key Key, mod Modifier) {
	switch mod.Kind {
	case PreAdd, PostAdd, Multiply, Force, Override:
	default:
		panic(fmt.Sprintf("attr: malformed modifier kind %d for key %d", mod.Kind, key))
	}
	s.modifiers[key] = append(s.modifiers[key], mod)
	s.resolved[key] = s.resolve(key)
}

// Modifiers returns a copy of the modifier sequence attached to key.
func (s *Store) Modifiers(key Key) []Modifier {
	mods := s.modifiers[key]
	if len(mods) == 0 {
		return nil
	}
	out := make([]Modifier, len(mods))
	copy(out, mods)
	return out
}

// Keys returns every key that has a base value or at least one modifier.
func (s *Store) Keys() []Key {
	seen := make(map[Key]struct{}, len(s.base)+len(s.modifiers))
	keys := make([]Key, 0, len(s.base)+len(s.modifiers))
	for k := range s.base {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range s.modifiers {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// resolve folds base and modifiers of one key:
// Force > (Override|base) + PreAdd, x Multiply, x stacking groups, + PostAdd.
func (s *Store) resolve(key Key) float64 {
	mods := s.modifiers[key]

	for i := len(mods) - 1; i >= 0; i-- {
		if mods[i].Kind == Force {
			return mods[i].Value
		}
	}

	value := s.base[key]
	for _, m := range mods {
		if m.Kind == Override {
			value = m.Value
		}
	}

	for _, m := range mods {
		if m.Kind == PreAdd {
			value += m.Value
		}
	}

	var (
		groupOrder []string
		groups     map[string][]float64
	)
	for _, m := range mods {
		if m.Kind != Multiply {
			continue
		}
		if m.Group == "" {
			value *= m.Value
			continue
		}
		if groups == nil {
			groups = make(map[string][]float64, 2)
		}
		if _, ok := groups[m.Group]; !ok {
			groupOrder = append(groupOrder, m.Group)
		}
		groups[m.Group] = append(groups[m.Group], m.Value)
	}
	for _, g := range groupOrder {
		value *= stackGroup(groups[g])
	}

	for _, m := range mods {
		if m.Kind == PostAdd {
			value += m.Value
		}
	}

	return value
}
