package stats

import (
	"math"

	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/engine"
)

// MaxResistance caps a resistance so EHP stays finite.
const MaxResistance = 0.995

// LayerEHP is the defense of one hit-point layer.
type LayerEHP struct {
	HP          float64       `json:"hp"`
	Resistances DamageProfile `json:"resistances"` // fractions in [0, MaxResistance]
	EHP         DamageProfile `json:"ehp"`         // Total is the uniform-profile EHP
}

// EHP covers all three layers.
type EHP struct {
	Shield LayerEHP `json:"shield"`
	Armor  LayerEHP `json:"armor"`
	Hull   LayerEHP `json:"hull"`
	Total  float64  `json:"total"`
}

// Layer returns the entry for l.
func (e *EHP) Layer(l data.Layer) *LayerEHP {
	switch l {
	case data.Shield:
		return &e.Shield
	case data.Armor:
		return &e.Armor
	default:
		return &e.Hull
	}
}

// Tank is the sustained repair per second, raw and after resistances.
type Tank struct {
	ShieldRegen float64 `json:"shieldRegen"`
	ShieldBoost float64 `json:"shieldBoost"`
	ArmorRepair float64 `json:"armorRepair"`
	HullRepair  float64 `json:"hullRepair"`
	Raw         float64 `json:"raw"`
	Effective   float64 `json:"effective"`
}

// resistance converts a damage resonance (1 = no resistance) into the
// resisted fraction, clamped to [0, MaxResistance]. A non-finite resonance
// grants no resistance.
func resistance(resonance float64) float64 {
	if math.IsNaN(resonance) || math.IsInf(resonance, 0) {
		return 0
	}
	r := 1 - resonance
	switch {
	case r < 0:
		return 0
	case r > MaxResistance:
		return MaxResistance
	default:
		return r
	}
}

func layerEHP(hull *engine.Entity, l data.Layer) LayerEHP {
	out := LayerEHP{HP: finite(hull.Get(data.HPKey(l)))}
	if out.HP < 0 {
		out.HP = 0
	}

	var passed float64
	for _, d := range data.DamageTypes {
		res := resistance(hull.Get(data.ResonanceKey(l, d)))
		out.Resistances.add(d, res)
		out.EHP.add(d, out.HP/(1-res))
		passed += (1 - res) / float64(len(data.DamageTypes))
	}
	// Resistances.Total and EHP.Total from add() are sums; replace them with
	// the average resistance and the uniform-profile EHP.
	out.Resistances.Total = 1 - passed
	out.EHP.Total = out.HP / passed
	return out
}

func computeEHP(hull *engine.Entity) EHP {
	var e EHP
	for _, l := range data.Layers {
		*e.Layer(l) = layerEHP(hull, l)
		e.Total += e.Layer(l).EHP.Total
	}
	return e
}

// perSecond returns amount per cycle of duration ms, 0 when either is unusable.
func perSecond(amount, durationMs float64) float64 {
	amount, durationMs = finite(amount), finite(durationMs)
	if amount <= 0 || durationMs <= 0 {
		return 0
	}
	return amount / (durationMs / 1000)
}

func computeTank(sim *engine.Simulation, ehp EHP) Tank {
	hull := sim.Hull()
	t := Tank{
		ShieldRegen: peakRecharge(hull.Get(data.ShieldCapacity), hull.Get(data.ShieldRechargeRate)),
	}

	for _, m := range sim.Modules() {
		dur := m.Get(data.Duration)
		switch m.Class.Role {
		case engine.RoleShieldBooster:
			t.ShieldBoost += perSecond(m.Get(data.ShieldBonus), dur)
		case engine.RoleArmorRepairer:
			t.ArmorRepair += perSecond(m.Get(data.ArmorDamageAmount), dur)
		case engine.RoleHullRepairer:
			t.HullRepair += perSecond(m.Get(data.StructureDamageAmount), dur)
		}
	}

	// effective multiplies each layer by its uniform-profile EHP/HP ratio.
	effective := func(raw float64, l LayerEHP) float64 {
		if l.HP <= 0 {
			return 0
		}
		return raw * l.EHP.Total / l.HP
	}
	shield := t.ShieldRegen + t.ShieldBoost
	t.Raw = shield + t.ArmorRepair + t.HullRepair
	t.Effective = finite(effective(shield, ehp.Shield) +
		effective(t.ArmorRepair, ehp.Armor) +
		effective(t.HullRepair, ehp.Hull))
	return t
}
