package engine

import (
	"strings"
	"sync"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
)

// TargetKind selects which entities a hull bonus applies to.
type TargetKind int8

const (
	TargetHull       TargetKind = iota // an attribute of the hull itself
	TargetWeapon                       // every weapon matching Weapon
	TargetDrones                       // every drone type
	TargetResistance                   // all four resonances of Layer, additively
)

// HullBonus is one line of a hull's bonus table. PerLevel is a percentage
// per level of the hull's proficiency.
type HullBonus struct {
	Target   TargetKind
	Weapon   Class      // TargetWeapon; Turret == TurretNone matches any turret
	Layer    data.Layer // TargetResistance
	Key      attr.Key
	PerLevel float64
	Group    string // stacking group, empty for full effect

	// Requires makes the bonus conditional on an installed subsystem whose
	// name contains this string (case-insensitive).
	Requires string
}

func (b HullBonus) matchesWeapon(c Class) bool {
	if !c.IsWeapon() || c.Weapon != b.Weapon.Weapon {
		return false
	}
	return b.Weapon.Turret == TurretNone || b.Weapon.Turret == c.Turret
}

var (
	hullMu       sync.RWMutex
	hullRegistry = map[string][]HullBonus{}
)

// RegisterHull replaces the bonus table of the named hull.
func RegisterHull(name string, bonuses ...HullBonus) {
	hullMu.Lock()
	hullRegistry[data.NormalizeName(name)] = bonuses
	hullMu.Unlock()
}

// HullBonuses returns the bonus table of a recognized hull, or nil.
func HullBonuses(name string) []HullBonus {
	hullMu.RLock()
	defer hullMu.RUnlock()
	return hullRegistry[data.NormalizeName(name)]
}

func turretBonus(k TurretKind, key attr.Key, perLevel float64) HullBonus {
	return HullBonus{Target: TargetWeapon, Weapon: turretClass(k), Key: key, PerLevel: perLevel}
}

func missileBonus(key attr.Key, perLevel float64) HullBonus {
	return HullBonus{Target: TargetWeapon, Weapon: missileClass, Key: key, PerLevel: perLevel}
}

func resistBonus(l data.Layer, perLevel float64) HullBonus {
	return HullBonus{Target: TargetResistance, Layer: l, PerLevel: perLevel}
}

func hullAttrBonus(key attr.Key, perLevel float64) HullBonus {
	return HullBonus{Target: TargetHull, Key: key, PerLevel: perLevel}
}

func requires(b HullBonus, subsystem string) HullBonus {
	b.Requires = subsystem
	return b
}

func init() {
	RegisterHull("Rifter",
		turretBonus(TurretProjectile, data.DamageMultiplier, 5),
		hullAttrBonus(data.MaxVelocity, 5),
	)
	RegisterHull("Punisher",
		turretBonus(TurretEnergy, data.DamageMultiplier, 5),
		resistBonus(data.Armor, 4),
	)
	RegisterHull("Merlin",
		turretBonus(TurretHybrid, data.DamageMultiplier, 5),
		resistBonus(data.Shield, 4),
	)
	RegisterHull("Kestrel",
		missileBonus(data.DamageMultiplier, 10),
	)
	RegisterHull("Vexor",
		turretBonus(TurretHybrid, data.DamageMultiplier, 5),
		HullBonus{Target: TargetDrones, Key: data.DamageMultiplier, PerLevel: 10},
	)
	RegisterHull("Drake",
		missileBonus(data.DamageMultiplier, 5),
		resistBonus(data.Shield, 4),
	)
	RegisterHull("Hurricane",
		turretBonus(TurretProjectile, data.RateOfFire, -5),
		turretBonus(TurretProjectile, data.DamageMultiplier, 5),
	)

	// Strategic cruisers: bonuses come from the installed subsystems.
	RegisterHull("Tengu",
		requires(missileBonus(data.RateOfFire, -5), "Accelerated Ejection Bay"),
		requires(missileBonus(data.DamageMultiplier, 5), "Accelerated Ejection Bay"),
		requires(resistBonus(data.Shield, 4), "Supplemental Screening"),
		requires(hullAttrBonus(data.MaxVelocity, 5), "Chassis Optimization"),
	)
	RegisterHull("Loki",
		requires(turretBonus(TurretProjectile, data.RateOfFire, -5), "Projectile Scoping Array"),
		requires(turretBonus(TurretProjectile, data.DamageMultiplier, 7.5), "Projectile Scoping Array"),
		requires(resistBonus(data.Armor, 4), "Covert Reconfiguration"),
	)
}

// subsystemInstalled reports whether any subsystem entity name contains sub.
func subsystemInstalled(modules []*Entity, sub string) bool {
	sub = strings.ToLower(sub)
	for _, m := range modules {
		if m.Class.Role == RoleSubsystem && strings.Contains(strings.ToLower(m.ItemName), sub) {
			return true
		}
	}
	return false
}
