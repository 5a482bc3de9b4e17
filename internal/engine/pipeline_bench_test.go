package engine

import (
	"context"
	"testing"

	"github.com/udisondev/fitsim/internal/fit"
)

func BenchmarkRun(b *testing.B) {
	ctx := context.Background()
	cat := testCatalog()
	f := &fit.Fit{
		Hull: "Tengu",
		High: []fit.Module{
			{Name: "Test Launcher II", Charge: "Test Missile"},
			{Name: "Test Launcher II", Charge: "Test Missile"},
			{Name: "Test Launcher II", Charge: "Test Missile"},
		},
		Mid:        mods("Extender", "Extender", "Hardener", "Booster", "MWD"),
		Low:        mods("BCS", "BCS", "BCS", "DCU", "DDA"),
		Rigs:       mods("Shield Rig", "Shield Rig"),
		Subsystems: mods("Tengu Offensive - Accelerated Ejection Bay", "Tengu Defensive - Supplemental Screening"),
		Drones:     []fit.Drone{{Name: "Light Drone II", Quantity: 5}},
	}

	for b.Loop() {
		if _, err := Run(ctx, cat, f, DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
