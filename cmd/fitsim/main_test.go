package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/fitsim/internal/data"
)

func runCLI(t *testing.T, args ...string) ([]report, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...)
	require.NoError(t, run(context.Background(), args, &stdout, &stderr))

	var reports []report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
	return reports, stderr.String()
}

func TestRun_EmbeddedCatalog(t *testing.T) {
	reports, _ := runCLI(t, "testdata/rifter.yaml", "testdata/tengu.yaml")
	require.Len(t, reports, 2)

	rifter := reports[0]
	assert.Equal(t, "brawler", rifter.Name)
	assert.Empty(t, rifter.Skipped)
	assert.Positive(t, rifter.Stats.DPS.Weapons.Total)
	assert.Positive(t, rifter.Stats.DPS.Drones.Explosive)
	assert.Positive(t, rifter.Stats.EHP.Total)
	assert.Positive(t, rifter.Stats.Tank.ArmorRepair)
	assert.NotEmpty(t, rifter.Stats.Fingerprint)

	tengu := reports[1]
	assert.Equal(t, []string{"Prototype Widget"}, tengu.Skipped)
	assert.Positive(t, tengu.Stats.DPS.Weapons.Kinetic)
	assert.Positive(t, tengu.Stats.DPS.Drones.Kinetic, "fallback attribution")
	assert.NotEqual(t, rifter.Stats.Fingerprint, tengu.Stats.Fingerprint)
}

func TestRun_SkillLevelFlag(t *testing.T) {
	trained, _ := runCLI(t, "testdata/rifter.yaml")
	untrained, _ := runCLI(t, "--skill-level", "0", "testdata/rifter.yaml")

	assert.Greater(t, trained[0].Stats.DPS.Total.Total, untrained[0].Stats.DPS.Total.Total)
	assert.Greater(t, trained[0].Stats.EHP.Total, untrained[0].Stats.EHP.Total)
}

func TestRun_Explain(t *testing.T) {
	_, stderr := runCLI(t, "--explain", "200mm AutoCannon II:damageMultiplier", "testdata/rifter.yaml")

	assert.Contains(t, stderr, "200mm AutoCannon II [high 1] damageMultiplier")
	assert.Contains(t, stderr, "multiply")
	assert.Contains(t, stderr, "[weaponDamage]")
	assert.Contains(t, stderr, "resolved")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no fit files", nil},
		{"missing fit file", []string{"testdata/absent.yaml"}},
		{"bad explain target", []string{"--explain", "Rifter", "testdata/rifter.yaml"}},
		{"unknown explain entity", []string{"--explain", "Drake:maxVelocity", "testdata/rifter.yaml"}},
		{"skill level out of range", []string{"--skill-level", "9", "testdata/rifter.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, tt.args...)
			assert.Error(t, run(context.Background(), args, &stdout, &stderr))
		})
	}
}

func TestParseTarget(t *testing.T) {
	entity, key, err := parseTarget("Rifter:maxVelocity")
	require.NoError(t, err)
	assert.Equal(t, "Rifter", entity)
	assert.Equal(t, data.MaxVelocity, key)

	_, key, err = parseTarget("Rifter: 9")
	require.NoError(t, err)
	assert.Equal(t, data.StructureHP, key)

	for _, bad := range []string{"Rifter", ":speed", "Rifter:", "Rifter:warp"} {
		_, _, err := parseTarget(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("verbose").String())
}
