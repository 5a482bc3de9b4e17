package data

import (
	"sort"

	"github.com/udisondev/fitsim/internal/attr"
)

// Attribute keys shared with the catalog. Values follow the game's own
// attribute numbering so exported catalogs can be imported unchanged.
const (
	// Hull layers
	StructureHP    attr.Key = 9
	ArmorHP        attr.Key = 265
	ShieldCapacity attr.Key = 263

	ShieldRechargeRate    attr.Key = 479 // ms
	CapacitorCapacity     attr.Key = 482
	CapacitorRechargeRate attr.Key = 55 // ms

	MaxVelocity     attr.Key = 37
	SignatureRadius attr.Key = 552
	ScanResolution  attr.Key = 564
	MaxTargetRange  attr.Key = 76

	// Weapons and charges
	DamageMultiplier          = attr.DamageMultiplier
	RateOfFire       attr.Key = 51 // cycle time, ms

	EMDamage        attr.Key = 114
	ExplosiveDamage attr.Key = 116
	KineticDamage   attr.Key = 117
	ThermalDamage   attr.Key = 118

	// Damage resonances: 1.0 means no resistance, 0 means immune.
	ShieldEMResonance        attr.Key = 271
	ShieldExplosiveResonance attr.Key = 272
	ShieldKineticResonance   attr.Key = 273
	ShieldThermalResonance   attr.Key = 274

	ArmorEMResonance        attr.Key = 267
	ArmorExplosiveResonance attr.Key = 268
	ArmorKineticResonance   attr.Key = 269
	ArmorThermalResonance   attr.Key = 270

	HullEMResonance        attr.Key = 113
	HullExplosiveResonance attr.Key = 111
	HullKineticResonance   attr.Key = 109
	HullThermalResonance   attr.Key = 110

	// Module effect attributes
	SpeedMultiplier              attr.Key = 204 // rate of fire factor of damage mods
	MissileDamageMultiplierBonus attr.Key = 213
	DroneDamageBonus             attr.Key = 1255 // percent

	CapacityBonus       attr.Key = 72   // flat shield HP
	ShieldCapacityBonus attr.Key = 337  // percent
	ArmorHPBonusAdd     attr.Key = 1159 // flat armor HP
	ArmorHPBonus        attr.Key = 335  // percent
	StructureHPBonus    attr.Key = 327  // percent

	SignatureRadiusAdd   attr.Key = 983 // flat
	SignatureRadiusBonus attr.Key = 554 // percent
	ScanResolutionBonus  attr.Key = 566 // percent
	MaxTargetRangeBonus  attr.Key = 309 // percent
	VelocityBonus        attr.Key = 1076

	EMResistanceBonus        attr.Key = 984 // percent, negative hardens
	ExplosiveResistanceBonus attr.Key = 985
	KineticResistanceBonus   attr.Key = 986
	ThermalResistanceBonus   attr.Key = 987

	Drawback                    attr.Key = 1138 // percent
	CapacitorCapacityMultiplier attr.Key = 147

	ShieldBonus           attr.Key = 68 // HP per cycle
	ArmorDamageAmount     attr.Key = 84
	StructureDamageAmount attr.Key = 83
	Duration              attr.Key = 73 // ms
)

var attributeNames = map[string]attr.Key{
	"structureHP":                    StructureHP,
	"armorHP":                        ArmorHP,
	"shieldCapacity":                 ShieldCapacity,
	"shieldRechargeRate":             ShieldRechargeRate,
	"capacitorCapacity":              CapacitorCapacity,
	"rechargeRate":                   CapacitorRechargeRate,
	"maxVelocity":                    MaxVelocity,
	"signatureRadius":                SignatureRadius,
	"scanResolution":                 ScanResolution,
	"maxTargetRange":                 MaxTargetRange,
	"damageMultiplier":               DamageMultiplier,
	"speed":                          RateOfFire,
	"emDamage":                       EMDamage,
	"explosiveDamage":                ExplosiveDamage,
	"kineticDamage":                  KineticDamage,
	"thermalDamage":                  ThermalDamage,
	"shieldEmDamageResonance":        ShieldEMResonance,
	"shieldExplosiveDamageResonance": ShieldExplosiveResonance,
	"shieldKineticDamageResonance":   ShieldKineticResonance,
	"shieldThermalDamageResonance":   ShieldThermalResonance,
	"armorEmDamageResonance":         ArmorEMResonance,
	"armorExplosiveDamageResonance":  ArmorExplosiveResonance,
	"armorKineticDamageResonance":    ArmorKineticResonance,
	"armorThermalDamageResonance":    ArmorThermalResonance,
	"emDamageResonance":              HullEMResonance,
	"explosiveDamageResonance":       HullExplosiveResonance,
	"kineticDamageResonance":         HullKineticResonance,
	"thermalDamageResonance":         HullThermalResonance,
	"speedMultiplier":                SpeedMultiplier,
	"missileDamageMultiplierBonus":   MissileDamageMultiplierBonus,
	"droneDamageBonus":               DroneDamageBonus,
	"capacityBonus":                  CapacityBonus,
	"shieldCapacityBonus":            ShieldCapacityBonus,
	"armorHPBonusAdd":                ArmorHPBonusAdd,
	"armorHpBonus":                   ArmorHPBonus,
	"structureHPBonus":               StructureHPBonus,
	"signatureRadiusAdd":             SignatureRadiusAdd,
	"signatureRadiusBonus":           SignatureRadiusBonus,
	"scanResolutionBonus":            ScanResolutionBonus,
	"maxTargetRangeBonus":            MaxTargetRangeBonus,
	"velocityBonus":                  VelocityBonus,
	"emDamageResistanceBonus":        EMResistanceBonus,
	"explosiveDamageResistanceBonus": ExplosiveResistanceBonus,
	"kineticDamageResistanceBonus":   KineticResistanceBonus,
	"thermalDamageResistanceBonus":   ThermalResistanceBonus,
	"drawback":                       Drawback,
	"capacitorCapacityMultiplier":    CapacitorCapacityMultiplier,
	"shieldBonus":                    ShieldBonus,
	"armorDamageAmount":              ArmorDamageAmount,
	"structureDamageAmount":          StructureDamageAmount,
	"duration":                       Duration,
}

var attributeKeys = func() map[attr.Key]string {
	m := make(map[attr.Key]string, len(attributeNames))
	for name, key := range attributeNames {
		m[key] = name
	}
	return m
}()

// AttributeByName returns the key registered under name.
func AttributeByName(name string) (attr.Key, bool) {
	k, ok := attributeNames[name]
	return k, ok
}

// AttributeName returns the conventional name of key, or "" when unknown.
func AttributeName(key attr.Key) string {
	return attributeKeys[key]
}

// AttributeNames returns every known attribute name, sorted.
func AttributeNames() []string {
	names := make([]string, 0, len(attributeNames))
	for n := range attributeNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DamageType is one of the four elemental damage types.
type DamageType int8

const (
	EM DamageType = iota
	Thermal
	Kinetic
	Explosive
)

// DamageTypes lists all damage types in display order.
var DamageTypes = [4]DamageType{EM, Thermal, Kinetic, Explosive}

func (d DamageType) String() string {
	switch d {
	case EM:
		return "em"
	case Thermal:
		return "thermal"
	case Kinetic:
		return "kinetic"
	case Explosive:
		return "explosive"
	default:
		return "unknown"
	}
}

// DamageKey returns the charge/drone damage attribute for d.
func DamageKey(d DamageType) attr.Key {
	return [...]attr.Key{EMDamage, ThermalDamage, KineticDamage, ExplosiveDamage}[d]
}

// ResistanceBonusKey returns the module resistance bonus attribute for d.
func ResistanceBonusKey(d DamageType) attr.Key {
	return [...]attr.Key{EMResistanceBonus, ThermalResistanceBonus, KineticResistanceBonus, ExplosiveResistanceBonus}[d]
}

// Layer is one of the three hit point layers.
type Layer int8

const (
	Shield Layer = iota
	Armor
	Hull
)

// Layers lists all layers outermost first.
var Layers = [3]Layer{Shield, Armor, Hull}

func (l Layer) String() string {
	switch l {
	case Shield:
		return "shield"
	case Armor:
		return "armor"
	case Hull:
		return "hull"
	default:
		return "unknown"
	}
}

// HPKey returns the hit point attribute of layer l.
func HPKey(l Layer) attr.Key {
	return [...]attr.Key{ShieldCapacity, ArmorHP, StructureHP}[l]
}

var resonanceKeys = [3][4]attr.Key{
	Shield: {ShieldEMResonance, ShieldThermalResonance, ShieldKineticResonance, ShieldExplosiveResonance},
	Armor:  {ArmorEMResonance, ArmorThermalResonance, ArmorKineticResonance, ArmorExplosiveResonance},
	Hull:   {HullEMResonance, HullThermalResonance, HullKineticResonance, HullExplosiveResonance},
}

// ResonanceKey returns the damage resonance attribute of layer l for d.
func ResonanceKey(l Layer, d DamageType) attr.Key {
	return resonanceKeys[l][d]
}

// IsResonance reports whether key is one of the twelve resonance attributes.
func IsResonance(key attr.Key) bool {
	for _, layer := range resonanceKeys {
		for _, k := range layer {
			if k == key {
				return true
			}
		}
	}
	return false
}
