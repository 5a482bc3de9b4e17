package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/fitsim/internal/attr"
	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/fit"
)

const testHullName = "Test Hull" // no registered hull bonuses

func testHull() *data.Item {
	return &data.Item{
		Name:       testHullName,
		CategoryID: 25,
		Attributes: map[attr.Key]float64{
			data.StructureHP:           400,
			data.ArmorHP:               500,
			data.ShieldCapacity:        600,
			data.ShieldRechargeRate:    600000,
			data.CapacitorCapacity:     300,
			data.CapacitorRechargeRate: 120000,
			data.MaxVelocity:           300,
			data.SignatureRadius:       40,
			data.ScanResolution:        600,
			data.MaxTargetRange:        25000,

			data.ShieldEMResonance:        1.0,
			data.ShieldThermalResonance:   0.8,
			data.ShieldKineticResonance:   0.6,
			data.ShieldExplosiveResonance: 0.5,
			data.ArmorEMResonance:         0.5,
			data.ArmorThermalResonance:    0.65,
			data.ArmorKineticResonance:    0.75,
			data.ArmorExplosiveResonance:  0.9,
			data.HullEMResonance:          0.67,
			data.HullThermalResonance:     0.67,
			data.HullKineticResonance:     0.67,
			data.HullExplosiveResonance:   0.67,
		},
	}
}

func item(name string, category int32, attrs map[attr.Key]float64) *data.Item {
	return &data.Item{Name: name, CategoryID: category, Attributes: attrs}
}

// testCatalog returns a catalog with round numbers for exact assertions.
func testCatalog() *data.MemoryCatalog {
	hull := testHull()
	rifter := testHull()
	rifter.Name = "Rifter"
	tengu := testHull()
	tengu.Name = "Tengu"

	return data.NewMemoryCatalog(
		hull, rifter, tengu,
		item("Test Autocannon I", data.CategoryProjectileWeapon, map[attr.Key]float64{
			data.RateOfFire: 4000, data.DamageMultiplier: 1.5,
		}),
		item("Test Autocannon II", data.CategoryProjectileWeapon, map[attr.Key]float64{
			data.RateOfFire: 4000, data.DamageMultiplier: 2,
		}),
		item("Test Blaster I", data.CategoryHybridWeapon, map[attr.Key]float64{
			data.RateOfFire: 3000, data.DamageMultiplier: 2,
		}),
		item("Test Launcher II", data.CategoryLauncherLight, map[attr.Key]float64{
			data.RateOfFire: 10000,
		}),
		item("Kinetic Slug", 83, map[attr.Key]float64{data.KineticDamage: 100}),
		item("Test Missile", 384, map[attr.Key]float64{data.KineticDamage: 80, data.ThermalDamage: 20}),
		item("Gyro", data.CategoryGyrostabilizer, map[attr.Key]float64{
			data.DamageMultiplier: 1.10, data.SpeedMultiplier: 0.9,
		}),
		item("BCS", data.CategoryBallisticControl, map[attr.Key]float64{
			data.MissileDamageMultiplierBonus: 1.10,
		}),
		item("DDA", data.CategoryDroneDamageModule, map[attr.Key]float64{data.DroneDamageBonus: 20}),
		item("Drone Rig", data.CategoryRigDrones, map[attr.Key]float64{data.DroneDamageBonus: 10}),
		item("Extender", data.CategoryShieldExtender, map[attr.Key]float64{
			data.CapacityBonus: 1000, data.SignatureRadiusAdd: 10,
		}),
		item("Plate", data.CategoryArmorPlate, map[attr.Key]float64{data.ArmorHPBonusAdd: 500}),
		item("Hardener", data.CategoryShieldHardener, map[attr.Key]float64{
			data.EMResistanceBonus: -30, data.ThermalResistanceBonus: -30,
		}),
		item("DCU", data.CategoryDamageControl, map[attr.Key]float64{
			data.ArmorEMResonance: 0.85, data.HullKineticResonance: 0.6,
		}),
		item("MWD", data.CategoryPropulsion, map[attr.Key]float64{
			data.SignatureRadiusBonus: 500, data.CapacitorCapacityMultiplier: 0.8,
		}),
		item("Booster", data.CategorySensorBooster, map[attr.Key]float64{
			data.ScanResolutionBonus: 20, data.MaxTargetRangeBonus: 10,
		}),
		item("Shield Rig", data.CategoryRigShield, map[attr.Key]float64{
			data.ShieldCapacityBonus: 10, data.Drawback: 10,
		}),
		item("Armor Rig", data.CategoryRigArmor, map[attr.Key]float64{
			data.ArmorHPBonus: 20, data.Drawback: 10,
		}),
		item("Repairer", data.CategoryArmorRepairer, map[attr.Key]float64{
			data.ArmorDamageAmount: 100, data.Duration: 10000,
		}),
		item("Tengu Offensive - Accelerated Ejection Bay", data.CategorySubsystemOffensive, nil),
		item("Tengu Defensive - Supplemental Screening", data.CategorySubsystemDefensive, map[attr.Key]float64{
			data.ShieldCapacity: 1000,
		}),
		item("Light Drone II", data.CategoryCombatDrone, map[attr.Key]float64{
			data.ThermalDamage: 10, data.DamageMultiplier: 2, data.RateOfFire: 4000,
		}),
	)
}

// untrained runs the pipeline with every proficiency at level 0, leaving
// only module and hull effects in play.
func untrained() Options {
	return Options{SkillLevel: 0, LookupConcurrency: 4}
}

func run(t *testing.T, f *fit.Fit, opts Options) *Simulation {
	t.Helper()
	sim, err := Run(context.Background(), testCatalog(), f, opts)
	require.NoError(t, err)
	return sim
}

func mods(names ...string) []fit.Module {
	out := make([]fit.Module, len(names))
	for i, n := range names {
		out[i] = fit.Module{Name: n}
	}
	return out
}
