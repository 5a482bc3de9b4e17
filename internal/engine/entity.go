package engine

import (
	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/fit"
)

// EntityID indexes the simulation's arena of stores.
type EntityID int

// NoEntity marks an absent reference (e.g. a weapon without a charge).
const NoEntity EntityID = -1

// EntityKind tells what an entity represents.
type EntityKind int8

const (
	KindHull EntityKind = iota
	KindModule
	KindCharge
	KindDrone
)

func (k EntityKind) String() string {
	switch k {
	case KindHull:
		return "hull"
	case KindModule:
		return "module"
	case KindCharge:
		return "charge"
	case KindDrone:
		return "drone"
	default:
		return "unknown"
	}
}

// Entity is one simulated object owning its own attribute store.
type Entity struct {
	ID       EntityID
	Kind     EntityKind
	Name     string // unique instance name
	ItemName string // catalog name
	Category int32
	Class    Class

	Slot   fit.Slot // modules only
	Index  int      // position within the slot group
	Charge EntityID // loaded charge, modules only

	Quantity int // drones and carried charges

	store *attr.Store
}

func newEntity(id EntityID, kind EntityKind, name string, it *data.Item) *Entity {
	base := it.Attributes
	class := Classify(it)
	if class.IsWeapon() || class.Role == RoleDrone {
		base = withDefault(base, data.DamageMultiplier, 1)
	}
	if kind == KindHull {
		base = withResonances(base)
	}
	return &Entity{
		ID:       id,
		Kind:     kind,
		Name:     name,
		ItemName: it.Name,
		Category: it.CategoryID,
		Class:    class,
		Charge:   NoEntity,
		store:    attr.NewStore(base),
	}
}

// withDefault seeds key with v when the catalog omits it or carries zero, so
// multiplicative proficiencies have something to scale.
func withDefault(base map[attr.Key]float64, key attr.Key, v float64) map[attr.Key]float64 {
	if base[key] != 0 {
		return base
	}
	out := make(map[attr.Key]float64, len(base)+1)
	for k, val := range base {
		out[k] = val
	}
	out[key] = v
	return out
}

// withResonances seeds every resonance the catalog omits with 1 (no
// resistance). A resonance read as 0 would mean full immunity.
func withResonances(base map[attr.Key]float64) map[attr.Key]float64 {
	var out map[attr.Key]float64
	for _, l := range data.Layers {
		for _, d := range data.DamageTypes {
			key := data.ResonanceKey(l, d)
			if _, ok := base[key]; ok {
				continue
			}
			if out == nil {
				out = make(map[attr.Key]float64, len(base)+12)
				for k, v := range base {
					out[k] = v
				}
			}
			out[key] = 1
		}
	}
	if out == nil {
		return base
	}
	return out
}

// Get returns the resolved value of key.
func (e *Entity) Get(key attr.Key) float64 { return e.store.Get(key) }

// Base returns the catalog value of key.
func (e *Entity) Base(key attr.Key) (float64, bool) { return e.store.Base(key) }

// Modifiers returns the modifiers attached to key.
func (e *Entity) Modifiers(key attr.Key) []attr.Modifier { return e.store.Modifiers(key) }

// Keys returns every key with a base value or a modifier.
func (e *Entity) Keys() []attr.Key { return e.store.Keys() }

func (e *Entity) apply(key attr.Key, mod attr.Modifier) {
	e.store.ApplyModifier(key, mod)
}
