// Package engine builds one attribute store per simulated entity of a fit
// and issues every modifier the game's rules would apply to them.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/fit"
)

// Stacking groups used by the pipeline.
const (
	GroupWeaponDamage     = "weaponDamage"
	GroupWeaponRateOfFire = "weaponRateOfFire"
	GroupDroneDamage      = "droneDamage"
	GroupScanResolution   = "scanResolution"
	GroupTargetRange      = "targetRange"
	GroupVelocity         = "velocity"
	GroupSignatureRadius  = "signatureRadius"
	GroupStructureHP      = "structureHP"
)

// Options tune a pipeline run.
type Options struct {
	// SkillLevel every proficiency is treated as trained to, 0..MaxSkillLevel.
	SkillLevel int
	// LookupConcurrency bounds parallel catalog lookups; <= 0 means unbounded.
	LookupConcurrency int
}

// DefaultOptions returns all proficiencies at max rank and 8 parallel lookups.
func DefaultOptions() Options {
	return Options{SkillLevel: MaxSkillLevel, LookupConcurrency: 8}
}

type pipeline struct {
	sim   *Simulation
	items map[string]*data.Item
	level int
}

// Run resolves every name of f through catalog, builds the entity stores and
// applies all modifiers. Names the catalog does not know are skipped; only
// catalog transport errors (and a cancelled ctx) fail the run.
func Run(ctx context.Context, catalog data.Catalog, f *fit.Fit, opts Options) (*Simulation, error) {
	if f == nil {
		return nil, errors.New("running pipeline: nil fit")
	}
	if opts.SkillLevel < 0 || opts.SkillLevel > MaxSkillLevel {
		return nil, fmt.Errorf("running pipeline: skill level %d out of range [0, %d]", opts.SkillLevel, MaxSkillLevel)
	}

	items, err := resolveItems(ctx, catalog, f.Names(), opts.LookupConcurrency)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog items: %w", err)
	}

	p := &pipeline{sim: newSimulation(f), items: items, level: opts.SkillLevel}
	p.initEntities()
	p.sim.bonuses = newFitBonuses(p.level, p.sim.Modules())

	p.applyHullSkills()
	p.applyWeaponSkills()
	p.applyAccumulators()
	p.applyHullBonuses()
	p.applyAuxiliaryEffects()
	p.applyDrawbacks()

	slog.Debug("pipeline complete",
		"hull", f.Hull,
		"entities", len(p.sim.entities),
		"skipped", len(p.sim.skipped),
		"skill_level", p.level)
	return p.sim, nil
}

// item returns the catalog entry of name, recording a skip when missing.
func (p *pipeline) item(name string) *data.Item {
	it := p.items[name]
	if it == nil && !slices.Contains(p.sim.skipped, name) {
		p.sim.skipped = append(p.sim.skipped, name)
	}
	return it
}

// initEntities creates the hull, one store per charge type, one per module
// instance and one per drone type.
func (p *pipeline) initEntities() {
	f := p.sim.fit

	if it := p.item(f.Hull); it != nil {
		p.sim.hull = p.sim.add(KindHull, it.Name, "", it).ID
	}

	charges := make(map[string]*Entity, 4)
	addCharge := func(name string, qty int) {
		if e, ok := charges[name]; ok {
			e.Quantity += qty
			return
		}
		it := p.item(name)
		if it == nil {
			return
		}
		e := p.sim.add(KindCharge, name, "", it)
		e.Quantity = qty
		charges[name] = e
	}
	for _, s := range fit.Slots {
		for _, m := range f.Modules(s) {
			if m.Charge != "" {
				addCharge(m.Charge, 0)
			}
		}
	}
	for _, c := range f.Cargo {
		addCharge(c.Name, c.Quantity)
	}

	occurrences := make(map[string]int, f.ModuleCount())
	for _, s := range fit.Slots {
		for _, m := range f.Modules(s) {
			occurrences[data.NormalizeName(m.Name)]++
		}
	}
	for _, s := range fit.Slots {
		for idx, m := range f.Modules(s) {
			it := p.item(m.Name)
			if it == nil {
				continue
			}
			name, alias := m.Name, ""
			if occurrences[data.NormalizeName(m.Name)] > 1 {
				name, alias = fmt.Sprintf("%s [%s %d]", m.Name, s, idx+1), m.Name
			}
			e := p.sim.add(KindModule, name, alias, it)
			e.Slot, e.Index = s, idx
			if c, ok := charges[m.Charge]; ok {
				e.Charge = c.ID
			}
		}
	}

	drones := make(map[string]*Entity, len(f.Drones))
	for _, d := range f.Drones {
		if e, ok := drones[d.Name]; ok {
			e.Quantity += d.Quantity
			continue
		}
		it := p.item(d.Name)
		if it == nil {
			continue
		}
		e := p.sim.add(KindDrone, d.Name, "", it)
		e.Quantity = d.Quantity
		drones[d.Name] = e
	}
}

// applyHullSkills issues hull-level proficiency bonuses.
func (p *pipeline) applyHullSkills() {
	hull := p.sim.Hull()
	if hull == nil {
		return
	}
	for _, hs := range hullSkills {
		hull.apply(hs.key, attr.NewMultiply(1+hs.fraction(p.level)))
	}
}

// applyWeaponSkills issues weapon-family proficiencies, drone proficiencies
// and local repair proficiencies.
func (p *pipeline) applyWeaponSkills() {
	b := &p.sim.bonuses
	for _, m := range p.sim.Modules() {
		switch m.Class.Role {
		case RoleWeapon:
			wb, ok := b.Weapons[m.Class.Weapon]
			if !ok {
				continue
			}
			m.apply(data.RateOfFire, attr.NewMultiply(1+wb.RateOfFire))
			m.apply(data.DamageMultiplier, attr.NewMultiply(1+wb.Damage))
			if !isTechTwo(m.ItemName) {
				continue
			}
			if wb.SpecRateOfFire != 0 {
				m.apply(data.RateOfFire, attr.NewMultiply(1+wb.SpecRateOfFire))
			}
			if wb.SpecDamage != 0 {
				m.apply(data.DamageMultiplier, attr.NewMultiply(1+wb.SpecDamage))
			}
		case RoleArmorRepairer, RoleHullRepairer:
			m.apply(data.Duration, attr.NewMultiply(1+b.RepairerDuration))
		}
	}

	for _, d := range p.sim.Drones() {
		d.apply(data.DamageMultiplier, attr.NewMultiply(1+b.DroneDamage))
		if isTechTwo(d.ItemName) {
			d.apply(data.DamageMultiplier, attr.NewMultiply(1+b.DroneSpecDamage))
		}
	}
}

// upgradeDamage returns the damage factor a weapon upgrade carries.
func upgradeDamage(m *Entity) (float64, bool) {
	key := data.DamageMultiplier
	if m.Class.Weapon == WeaponMissile {
		key = data.MissileDamageMultiplierBonus
	}
	if _, ok := m.Base(key); !ok {
		return 0, false
	}
	return m.Get(key), true
}

// applyAccumulators gives every qualifying weapon one grouped multiplier per
// installed upgrade, so extra copies receive diminishing returns.
func (p *pipeline) applyAccumulators() {
	modules := p.sim.Modules()
	drones := p.sim.Drones()

	for _, m := range modules {
		switch m.Class.Role {
		case RoleDamageMod:
			dmg, hasDmg := upgradeDamage(m)
			_, hasRof := m.Base(data.SpeedMultiplier)
			for _, w := range modules {
				if !m.Class.Upgrades(w.Class) {
					continue
				}
				if hasDmg {
					w.apply(data.DamageMultiplier, attr.NewStacked(dmg, GroupWeaponDamage))
				}
				if hasRof {
					w.apply(data.RateOfFire, attr.NewStacked(m.Get(data.SpeedMultiplier), GroupWeaponRateOfFire))
				}
			}
		case RoleDroneDamageMod:
			if _, ok := m.Base(data.DroneDamageBonus); !ok {
				continue
			}
			bonus := attr.Percent(m.Get(data.DroneDamageBonus))
			for _, d := range drones {
				d.apply(data.DamageMultiplier, attr.NewStacked(bonus, GroupDroneDamage))
			}
		}
	}
}

// applyHullBonuses issues the recognized hull's bonus table.
func (p *pipeline) applyHullBonuses() {
	hull := p.sim.Hull()
	if hull == nil {
		return
	}
	modules := p.sim.Modules()

	for _, b := range HullBonuses(hull.ItemName) {
		if b.Requires != "" && !subsystemInstalled(modules, b.Requires) {
			continue
		}
		pct := b.PerLevel * float64(p.level)

		mod := attr.NewMultiply(attr.Percent(pct))
		if b.Group != "" {
			mod = attr.NewStacked(attr.Percent(pct), b.Group)
		}

		switch b.Target {
		case TargetHull:
			if data.IsResonance(b.Key) {
				// resonances only move additively
				hull.apply(b.Key, attr.NewPreAdd(-pct/100))
				continue
			}
			hull.apply(b.Key, mod)
		case TargetWeapon:
			for _, m := range modules {
				if b.matchesWeapon(m.Class) {
					m.apply(b.Key, mod)
				}
			}
		case TargetDrones:
			for _, d := range p.sim.Drones() {
				d.apply(b.Key, mod)
			}
		case TargetResistance:
			for _, dt := range data.DamageTypes {
				hull.apply(data.ResonanceKey(b.Layer, dt), attr.NewPreAdd(-pct/100))
			}
		}
	}
}
