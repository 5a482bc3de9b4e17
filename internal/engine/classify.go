package engine

import (
	"strings"

	"github.com/udisondev/fitsim/internal/data"
)

// WeaponFamily is the skill family a weapon (or a weapon upgrade) belongs to.
type WeaponFamily int8

const (
	WeaponNone WeaponFamily = iota
	WeaponTurret
	WeaponMissile
)

func (f WeaponFamily) String() string {
	switch f {
	case WeaponTurret:
		return "turret"
	case WeaponMissile:
		return "missile"
	default:
		return "none"
	}
}

// TurretKind narrows WeaponTurret down to the damage-module family.
type TurretKind int8

const (
	TurretNone TurretKind = iota
	TurretEnergy
	TurretHybrid
	TurretProjectile
	TurretPrecursor
)

func (k TurretKind) String() string {
	switch k {
	case TurretEnergy:
		return "energy"
	case TurretHybrid:
		return "hybrid"
	case TurretProjectile:
		return "projectile"
	case TurretPrecursor:
		return "precursor"
	default:
		return "none"
	}
}

// Role is what a component does to the rest of the fit.
type Role int8

const (
	RoleNone Role = iota
	RoleWeapon
	RoleDamageMod      // accumulating weapon upgrade (incl. weapon rigs)
	RoleDroneDamageMod // accumulating drone upgrade
	RoleShieldExtender
	RoleShieldResist
	RoleShieldBooster
	RoleArmorPlate
	RoleArmorResist
	RoleArmorRepairer
	RoleHullRepairer
	RoleDamageControl
	RoleBulkhead
	RolePropulsion
	RoleSensor
	RoleVelocity
	RoleShieldRig
	RoleArmorRig
	RoleNavigationRig
	RoleElectronicsRig
	RoleSubsystem
	RoleDrone
)

var roleNames = [...]string{
	RoleNone:           "none",
	RoleWeapon:         "weapon",
	RoleDamageMod:      "damageMod",
	RoleDroneDamageMod: "droneDamageMod",
	RoleShieldExtender: "shieldExtender",
	RoleShieldResist:   "shieldResist",
	RoleShieldBooster:  "shieldBooster",
	RoleArmorPlate:     "armorPlate",
	RoleArmorResist:    "armorResist",
	RoleArmorRepairer:  "armorRepairer",
	RoleHullRepairer:   "hullRepairer",
	RoleDamageControl:  "damageControl",
	RoleBulkhead:       "bulkhead",
	RolePropulsion:     "propulsion",
	RoleSensor:         "sensor",
	RoleVelocity:       "velocity",
	RoleShieldRig:      "shieldRig",
	RoleArmorRig:       "armorRig",
	RoleNavigationRig:  "navigationRig",
	RoleElectronicsRig: "electronicsRig",
	RoleSubsystem:      "subsystem",
	RoleDrone:          "drone",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Class is the capability classification of a catalog item.
// For RoleWeapon, Weapon/Turret describe the weapon itself; for RoleDamageMod
// they describe the weapons it upgrades.
type Class struct {
	Role   Role
	Weapon WeaponFamily
	Turret TurretKind
}

// IsWeapon reports whether the item fires charges.
func (c Class) IsWeapon() bool { return c.Role == RoleWeapon }

// Upgrades reports whether a damage module of class c applies to weapon w.
func (c Class) Upgrades(w Class) bool {
	if c.Role != RoleDamageMod || w.Role != RoleWeapon || c.Weapon != w.Weapon {
		return false
	}
	return c.Weapon != WeaponTurret || c.Turret == w.Turret
}

func turretClass(k TurretKind) Class { return Class{Role: RoleWeapon, Weapon: WeaponTurret, Turret: k} }
func turretUpgrade(k TurretKind) Class {
	return Class{Role: RoleDamageMod, Weapon: WeaponTurret, Turret: k}
}

var (
	missileClass   = Class{Role: RoleWeapon, Weapon: WeaponMissile}
	missileUpgrade = Class{Role: RoleDamageMod, Weapon: WeaponMissile}
)

// categoryClasses is the closed set of recognized category identifiers.
var categoryClasses = map[int32]Class{
	data.CategoryEnergyWeapon:     turretClass(TurretEnergy),
	data.CategoryHybridWeapon:     turretClass(TurretHybrid),
	data.CategoryProjectileWeapon: turretClass(TurretProjectile),
	data.CategoryPrecursorWeapon:  turretClass(TurretPrecursor),

	data.CategoryLauncherCruise:       missileClass,
	data.CategoryLauncherRocket:       missileClass,
	data.CategoryLauncherTorpedo:      missileClass,
	data.CategoryLauncherLight:        missileClass,
	data.CategoryLauncherHeavy:        missileClass,
	data.CategoryLauncherRapidLight:   missileClass,
	data.CategoryLauncherXLTorpedo:    missileClass,
	data.CategoryLauncherHeavyAssault: missileClass,
	data.CategoryLauncherRapidHeavy:   missileClass,
	data.CategoryLauncherRapidTorpedo: missileClass,

	data.CategoryHeatSink:              turretUpgrade(TurretEnergy),
	data.CategoryMagneticFieldStab:     turretUpgrade(TurretHybrid),
	data.CategoryGyrostabilizer:        turretUpgrade(TurretProjectile),
	data.CategoryEntropicRadiationSink: turretUpgrade(TurretPrecursor),
	data.CategoryBallisticControl:      missileUpgrade,
	data.CategoryRigEnergyWeapon:       turretUpgrade(TurretEnergy),
	data.CategoryRigHybridWeapon:       turretUpgrade(TurretHybrid),
	data.CategoryRigProjectileWeapon:   turretUpgrade(TurretProjectile),
	data.CategoryRigLauncher:           missileUpgrade,
	data.CategoryDroneDamageModule:     {Role: RoleDroneDamageMod},
	data.CategoryRigDrones:             {Role: RoleDroneDamageMod},

	data.CategoryShieldExtender:     {Role: RoleShieldExtender},
	data.CategoryShieldHardener:     {Role: RoleShieldResist},
	data.CategoryShieldAmplifier:    {Role: RoleShieldResist},
	data.CategoryShieldBooster:      {Role: RoleShieldBooster},
	data.CategoryArmorPlate:         {Role: RoleArmorPlate},
	data.CategoryArmorHardener:      {Role: RoleArmorResist},
	data.CategoryArmorCoating:       {Role: RoleArmorResist},
	data.CategoryArmorMembrane:      {Role: RoleArmorResist},
	data.CategoryArmorRepairer:      {Role: RoleArmorRepairer},
	data.CategoryHullRepairer:       {Role: RoleHullRepairer},
	data.CategoryDamageControl:      {Role: RoleDamageControl},
	data.CategoryReinforcedBulkhead: {Role: RoleBulkhead},

	data.CategoryPropulsion:        {Role: RolePropulsion},
	data.CategorySensorBooster:     {Role: RoleSensor},
	data.CategorySignalAmplifier:   {Role: RoleSensor},
	data.CategoryNanofiber:         {Role: RoleVelocity},
	data.CategoryOverdriveInjector: {Role: RoleVelocity},

	data.CategoryRigShield:      {Role: RoleShieldRig},
	data.CategoryRigArmor:       {Role: RoleArmorRig},
	data.CategoryRigNavigation:  {Role: RoleNavigationRig},
	data.CategoryRigElectronics: {Role: RoleElectronicsRig},

	data.CategorySubsystemDefensive:  {Role: RoleSubsystem},
	data.CategorySubsystemOffensive:  {Role: RoleSubsystem},
	data.CategorySubsystemPropulsion: {Role: RoleSubsystem},
	data.CategorySubsystemCore:       {Role: RoleSubsystem},

	data.CategoryCombatDrone: {Role: RoleDrone},
}

// legacyNames catches legacy and fleet-issue items whose category identifier
// is not in the recognized set. Checked in order; first match wins.
var legacyNames = []struct {
	substr string
	class  Class
}{
	{"autocannon", turretClass(TurretProjectile)},
	{"artillery", turretClass(TurretProjectile)},
	{"blaster", turretClass(TurretHybrid)},
	{"railgun", turretClass(TurretHybrid)},
	{"pulse laser", turretClass(TurretEnergy)},
	{"beam laser", turretClass(TurretEnergy)},
	{"entropic disintegrator", turretClass(TurretPrecursor)},
	{"missile launcher", missileClass},
	{"rocket launcher", missileClass},
	{"torpedo launcher", missileClass},
	{"gyrostabilizer", turretUpgrade(TurretProjectile)},
	{"heat sink", turretUpgrade(TurretEnergy)},
	{"magnetic field stabilizer", turretUpgrade(TurretHybrid)},
	{"entropic radiation sink", turretUpgrade(TurretPrecursor)},
	{"ballistic control", missileUpgrade},
}

// Classify returns the capability class of a catalog item.
func Classify(it *data.Item) Class {
	if it == nil {
		return Class{}
	}
	if c, ok := categoryClasses[it.CategoryID]; ok {
		return c
	}
	name := strings.ToLower(it.Name)
	for _, ln := range legacyNames {
		if strings.Contains(name, ln.substr) {
			return ln.class
		}
	}
	return Class{}
}

// isTechTwo reports whether the item name denotes a tech-II variant.
func isTechTwo(name string) bool {
	return strings.HasSuffix(strings.TrimSpace(name), " II")
}
