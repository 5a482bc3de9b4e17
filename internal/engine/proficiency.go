package engine

import (
	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
)

// MaxSkillLevel is the rank every proficiency is trained to unless
// Options.SkillLevel says otherwise.
const MaxSkillLevel = 5

// skill is a proficiency with a fixed bonus per trained level, in percent.
// Negative values reduce the attribute (cycle times, recharge times).
type skill struct {
	name     string
	perLevel float64
}

// hullSkill targets one attribute of the hull.
type hullSkill struct {
	skill
	key attr.Key
}

var hullSkills = []hullSkill{
	{skill{"Shield Management", 5}, data.ShieldCapacity},
	{skill{"Hull Upgrades", 5}, data.ArmorHP},
	{skill{"Mechanics", 5}, data.StructureHP},
	{skill{"Navigation", 5}, data.MaxVelocity},
	{skill{"Long Range Targeting", 5}, data.MaxTargetRange},
	{skill{"Signature Analysis", 5}, data.ScanResolution},
	{skill{"Capacitor Management", 5}, data.CapacitorCapacity},
	{skill{"Capacitor Systems Operation", -5}, data.CapacitorRechargeRate},
	{skill{"Shield Operation", -5}, data.ShieldRechargeRate},
}

// weaponSkills lists rate-of-fire and damage proficiencies per family.
// Specialization only applies to tech-II weapons.
var weaponSkills = map[WeaponFamily]struct {
	rateOfFire     []skill
	damage         []skill
	specRateOfFire skill
	specDamage     skill
}{
	WeaponTurret: {
		rateOfFire: []skill{{"Gunnery", -2}, {"Rapid Firing", -4}},
		damage:     []skill{{"Surgical Strike", 3}, {"Turret Size Operation", 5}},
		specDamage: skill{"Turret Specialization", 2},
	},
	WeaponMissile: {
		rateOfFire:     []skill{{"Missile Launcher Operation", -2}, {"Rapid Launch", -3}},
		damage:         []skill{{"Warhead Upgrades", 2}, {"Missile Size Operation", 5}},
		specRateOfFire: skill{"Launcher Specialization", -2},
	},
}

var (
	droneDamageSkills   = []skill{{"Drone Interfacing", 10}, {"Drone Size Operation", 5}}
	droneSpecialization = skill{"Drone Specialization", 2}
	repairSystems       = skill{"Repair Systems", -5}
)

// fraction returns the relative change the skill gives at level, e.g. -0.10.
func (s skill) fraction(level int) float64 {
	return s.perLevel * float64(level) / 100
}

// combine folds several skills into one relative change: the product of
// their individual factors minus one.
func combine(skills []skill, level int) float64 {
	f := 1.0
	for _, s := range skills {
		f *= 1 + s.fraction(level)
	}
	return f - 1
}

// WeaponBonus holds the proficiency fractions for one weapon family.
// Negative RateOfFire shortens the cycle; positive Damage raises the multiplier.
type WeaponBonus struct {
	RateOfFire     float64
	Damage         float64
	SpecRateOfFire float64
	SpecDamage     float64
}

// FitBonuses is computed once per pipeline run and only read afterwards.
type FitBonuses struct {
	SkillLevel int

	Weapons          map[WeaponFamily]WeaponBonus
	DroneDamage      float64
	DroneSpecDamage  float64
	RepairerDuration float64

	// DamageMods counts accumulating weapon upgrades per targeted family.
	DamageMods      map[Class]int
	DroneDamageMods int
}

// DamageModCount returns how many accumulating upgrades apply to weapon w.
func (b *FitBonuses) DamageModCount(w Class) int {
	n := 0
	for c, count := range b.DamageMods {
		if c.Upgrades(w) {
			n += count
		}
	}
	return n
}

func newFitBonuses(level int, modules []*Entity) FitBonuses {
	b := FitBonuses{
		SkillLevel:       level,
		Weapons:          make(map[WeaponFamily]WeaponBonus, len(weaponSkills)),
		DroneDamage:      combine(droneDamageSkills, level),
		DroneSpecDamage:  droneSpecialization.fraction(level),
		RepairerDuration: repairSystems.fraction(level),
		DamageMods:       make(map[Class]int, 4),
	}
	for family, ws := range weaponSkills {
		b.Weapons[family] = WeaponBonus{
			RateOfFire:     combine(ws.rateOfFire, level),
			Damage:         combine(ws.damage, level),
			SpecRateOfFire: ws.specRateOfFire.fraction(level),
			SpecDamage:     ws.specDamage.fraction(level),
		}
	}

	for _, m := range modules {
		switch m.Class.Role {
		case RoleDamageMod:
			b.DamageMods[m.Class]++
		case RoleDroneDamageMod:
			b.DroneDamageMods++
		}
	}
	return b
}
