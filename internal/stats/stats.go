// Package stats folds the resolved attributes of a simulation into the
// summary returned to callers: damage, effective hit points, tank,
// capacitor and the hull scalars.
package stats

import (
	"math"

	"github.com/udisondev/fitsim/internal/data"
	"github.com/udisondev/fitsim/internal/engine"
)

// DefaultCycleTime replaces a missing or non-positive cycle time, in ms.
const DefaultCycleTime = 1000.0

// DamageProfile is a value split per damage type.
type DamageProfile struct {
	EM        float64 `json:"em"`
	Thermal   float64 `json:"thermal"`
	Kinetic   float64 `json:"kinetic"`
	Explosive float64 `json:"explosive"`
	Total     float64 `json:"total"`
}

// Get returns the share of damage type d.
func (p DamageProfile) Get(d data.DamageType) float64 {
	switch d {
	case data.EM:
		return p.EM
	case data.Thermal:
		return p.Thermal
	case data.Kinetic:
		return p.Kinetic
	case data.Explosive:
		return p.Explosive
	default:
		return 0
	}
}

func (p *DamageProfile) add(d data.DamageType, v float64) {
	switch d {
	case data.EM:
		p.EM += v
	case data.Thermal:
		p.Thermal += v
	case data.Kinetic:
		p.Kinetic += v
	case data.Explosive:
		p.Explosive += v
	default:
		return
	}
	p.Total += v
}

func (p *DamageProfile) merge(o DamageProfile) {
	for _, d := range data.DamageTypes {
		p.add(d, o.Get(d))
	}
}

// Damage splits a damage figure into weapon and drone contributions.
type Damage struct {
	Weapons DamageProfile `json:"weapons"`
	Drones  DamageProfile `json:"drones"`
	Total   DamageProfile `json:"total"`
}

// Capacitor summarizes the hull's capacitor.
type Capacitor struct {
	Capacity     float64 `json:"capacity"`
	RechargeTime float64 `json:"rechargeTime"` // seconds
	PeakRecharge float64 `json:"peakRecharge"` // GJ/s
}

// Stats is the output contract of a calculation.
type Stats struct {
	DPS             Damage    `json:"dps"`
	Volley          Damage    `json:"volley"`
	EHP             EHP       `json:"ehp"`
	Tank            Tank      `json:"tank"`
	Speed           float64   `json:"speed"`
	SignatureRadius float64   `json:"signatureRadius"`
	ScanResolution  float64   `json:"scanResolution"`
	LockRange       float64   `json:"lockRange"`
	Capacitor       Capacitor `json:"capacitor"`
	Fingerprint     string    `json:"fingerprint,omitempty"`
}

// Compute aggregates sim. It never returns NaN or infinite values.
func Compute(sim *engine.Simulation) Stats {
	var s Stats
	if f := sim.Fit(); f != nil {
		s.Fingerprint = f.Fingerprint()
	}

	computeDamage(sim, &s)

	hull := sim.Hull()
	if hull == nil {
		return s
	}

	s.EHP = computeEHP(hull)
	s.Tank = computeTank(sim, s.EHP)

	s.Speed = finite(hull.Get(data.MaxVelocity))
	s.SignatureRadius = finite(hull.Get(data.SignatureRadius))
	s.ScanResolution = finite(hull.Get(data.ScanResolution))
	s.LockRange = finite(hull.Get(data.MaxTargetRange))

	capacity := finite(hull.Get(data.CapacitorCapacity))
	recharge := finite(hull.Get(data.CapacitorRechargeRate))
	s.Capacitor = Capacitor{
		Capacity:     capacity,
		RechargeTime: recharge / 1000,
		PeakRecharge: peakRecharge(capacity, recharge),
	}
	return s
}

// peakRecharge is the regeneration rate at the top of the recharge curve
// (around 25% of capacity): 2.5 × capacity / recharge time in seconds.
func peakRecharge(capacity, rechargeMs float64) float64 {
	if capacity <= 0 || rechargeMs <= 0 {
		return 0
	}
	return finite(2.5 * capacity / (rechargeMs / 1000))
}

// finite maps NaN and ±Inf to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
