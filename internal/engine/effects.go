package engine

import (
	"log/slog"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
)

// subsystemHullKeys are hull attributes a subsystem contributes as flat additions.
var subsystemHullKeys = []attr.Key{
	data.StructureHP,
	data.ArmorHP,
	data.ShieldCapacity,
	data.CapacitorCapacity,
	data.MaxVelocity,
	data.SignatureRadius,
	data.ScanResolution,
	data.MaxTargetRange,
}

// applyAuxiliaryEffects issues the passive per-module effects on the hull:
// sensors, signature, layer capacity and resistances.
func (p *pipeline) applyAuxiliaryEffects() {
	hull := p.sim.Hull()
	if hull == nil {
		return
	}

	// addFlat/addPercent only issue when the module carries the attribute.
	addFlat := func(m *Entity, from, to attr.Key) {
		if _, ok := m.Base(from); ok {
			hull.apply(to, attr.NewPreAdd(m.Get(from)))
		}
	}
	addPercent := func(m *Entity, from, to attr.Key, group string) {
		if _, ok := m.Base(from); !ok {
			return
		}
		f := attr.Percent(m.Get(from))
		if group == "" {
			hull.apply(to, attr.NewMultiply(f))
			return
		}
		hull.apply(to, attr.NewStacked(f, group))
	}

	for _, m := range p.sim.Modules() {
		switch m.Class.Role {
		case RoleShieldExtender:
			addFlat(m, data.CapacityBonus, data.ShieldCapacity)
			addFlat(m, data.SignatureRadiusAdd, data.SignatureRadius)
		case RoleArmorPlate:
			addFlat(m, data.ArmorHPBonusAdd, data.ArmorHP)
		case RoleShieldRig:
			addPercent(m, data.ShieldCapacityBonus, data.ShieldCapacity, "")
		case RoleArmorRig:
			addPercent(m, data.ArmorHPBonus, data.ArmorHP, "")
		case RoleBulkhead:
			addPercent(m, data.StructureHPBonus, data.StructureHP, GroupStructureHP)
		case RoleShieldResist:
			p.applyResistances(hull, m, data.Shield)
		case RoleArmorResist:
			p.applyResistances(hull, m, data.Armor)
		case RoleDamageControl:
			for _, l := range data.Layers {
				for _, dt := range data.DamageTypes {
					key := data.ResonanceKey(l, dt)
					if v, ok := m.Base(key); ok {
						hull.apply(key, attr.NewPreAdd(v-1))
					}
				}
			}
		case RoleSensor, RoleElectronicsRig:
			addPercent(m, data.ScanResolutionBonus, data.ScanResolution, GroupScanResolution)
			addPercent(m, data.MaxTargetRangeBonus, data.MaxTargetRange, GroupTargetRange)
		case RoleVelocity, RoleNavigationRig:
			addPercent(m, data.VelocityBonus, data.MaxVelocity, GroupVelocity)
			addPercent(m, data.StructureHPBonus, data.StructureHP, GroupStructureHP)
		case RolePropulsion:
			// The signature bloom only exists while the module is active,
			// and activation state is not modeled.
			if _, ok := m.Base(data.SignatureRadiusBonus); ok {
				slog.Debug("ignoring active-only signature penalty", "module", m.Name)
			}
		case RoleSubsystem:
			for _, key := range subsystemHullKeys {
				addFlat(m, key, key)
			}
		}
	}
}

// applyResistances issues additive resonance deltas for one layer.
// A bonus of -30 (percent) lowers the resonance by 0.30.
func (p *pipeline) applyResistances(hull, m *Entity, l data.Layer) {
	for _, dt := range data.DamageTypes {
		key := data.ResistanceBonusKey(dt)
		if _, ok := m.Base(key); !ok {
			continue
		}
		hull.apply(data.ResonanceKey(l, dt), attr.NewPreAdd(m.Get(key)/100))
	}
}

// applyDrawbacks issues the documented penalties of rigs and propulsion.
func (p *pipeline) applyDrawbacks() {
	hull := p.sim.Hull()
	if hull == nil {
		return
	}

	for _, m := range p.sim.Modules() {
		drawback, hasDrawback := m.Base(data.Drawback)
		if hasDrawback {
			drawback = m.Get(data.Drawback)
		}

		switch m.Class.Role {
		case RoleShieldRig:
			if hasDrawback {
				hull.apply(data.SignatureRadius, attr.NewStacked(attr.Percent(drawback), GroupSignatureRadius))
			}
		case RoleArmorRig:
			if hasDrawback {
				hull.apply(data.MaxVelocity, attr.NewStacked(attr.Percent(-drawback), GroupVelocity))
			}
		case RoleNavigationRig:
			if hasDrawback {
				hull.apply(data.ArmorHP, attr.NewMultiply(attr.Percent(-drawback)))
			}
		case RoleElectronicsRig:
			if hasDrawback {
				hull.apply(data.ShieldCapacity, attr.NewMultiply(attr.Percent(-drawback)))
			}
		case RolePropulsion:
			if _, ok := m.Base(data.CapacitorCapacityMultiplier); ok {
				hull.apply(data.CapacitorCapacity, attr.NewMultiply(m.Get(data.CapacitorCapacityMultiplier)))
			}
		}
	}
}
