package stats

import (
	"log/slog"
	"strings"

	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/engine"
)

// droneFallback attributes damage to drones whose catalog entry carries no
// per-type breakdown. Matched by name prefix, first match wins.
var droneFallback = []struct {
	prefix string
	kind   data.DamageType
	damage float64
}{
	{"acolyte", data.EM, 11},
	{"infiltrator", data.EM, 22},
	{"praetor", data.EM, 33},
	{"hobgoblin", data.Thermal, 12},
	{"hammerhead", data.Thermal, 24},
	{"ogre", data.Thermal, 36},
	{"hornet", data.Kinetic, 10},
	{"vespa", data.Kinetic, 20},
	{"wasp", data.Kinetic, 30},
	{"gecko", data.Kinetic, 43},
	{"warrior", data.Explosive, 10},
	{"valkyrie", data.Explosive, 20},
	{"berserker", data.Explosive, 30},
}

// cycleTime returns the resolved cycle time of e in ms, or the default.
func cycleTime(e *engine.Entity) float64 {
	ms := finite(e.Get(data.RateOfFire))
	if ms <= 0 {
		slog.Debug("missing cycle time, using default", "entity", e.Name, "default_ms", DefaultCycleTime)
		return DefaultCycleTime
	}
	return ms
}

// damageOf reads the per-type damage attributes of e.
func damageOf(e *engine.Entity) DamageProfile {
	var p DamageProfile
	for _, d := range data.DamageTypes {
		p.add(d, finite(e.Get(data.DamageKey(d))))
	}
	return p
}

// droneDamage returns the per-cycle damage of one drone before the damage
// multiplier, falling back to the attribution table.
func droneDamage(e *engine.Entity) DamageProfile {
	p := damageOf(e)
	if p.Total > 0 {
		return p
	}
	name := strings.ToLower(e.ItemName)
	for _, fb := range droneFallback {
		if strings.HasPrefix(name, fb.prefix) {
			var out DamageProfile
			out.add(fb.kind, fb.damage)
			return out
		}
	}
	return p
}

func scaled(p DamageProfile, factor float64) DamageProfile {
	var out DamageProfile
	for _, d := range data.DamageTypes {
		out.add(d, finite(p.Get(d)*factor))
	}
	return out
}

func computeDamage(sim *engine.Simulation, s *Stats) {
	for _, m := range sim.Modules() {
		if !m.Class.IsWeapon() {
			continue
		}
		charge := sim.Entity(m.Charge)
		if charge == nil {
			continue
		}
		volley := scaled(damageOf(charge), m.Get(data.DamageMultiplier))
		s.Volley.Weapons.merge(volley)
		s.DPS.Weapons.merge(scaled(volley, 1000/cycleTime(m)))
	}

	for _, d := range sim.Drones() {
		qty := float64(d.Quantity)
		if qty <= 0 {
			continue
		}
		volley := scaled(droneDamage(d), d.Get(data.DamageMultiplier)*qty)
		s.Volley.Drones.merge(volley)
		s.DPS.Drones.merge(scaled(volley, 1000/cycleTime(d)))
	}

	for _, dmg := range []*Damage{&s.DPS, &s.Volley} {
		dmg.Total.merge(dmg.Weapons)
		dmg.Total.merge(dmg.Drones)
	}
}
