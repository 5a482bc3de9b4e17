package data

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/fitsim/internal/attr"
)

func TestLoadDefaultCatalog(t *testing.T) {
	cat, err := LoadDefaultCatalog()
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 50)

	ctx := context.Background()
	rifter, err := cat.Lookup(ctx, "  rifter ")
	require.NoError(t, err)
	require.NotNil(t, rifter, "lookup is case and whitespace insensitive")
	assert.Equal(t, "Rifter", rifter.Name)
	assert.Equal(t, 350.0, rifter.Attributes[StructureHP])
	assert.Equal(t, 0.5, rifter.Attributes[ShieldExplosiveResonance])

	gyro, err := cat.Lookup(ctx, "Gyrostabilizer II")
	require.NoError(t, err)
	require.NotNil(t, gyro)
	assert.Equal(t, CategoryGyrostabilizer, gyro.CategoryID)
	assert.Equal(t, 1.10, gyro.Attributes[DamageMultiplier])
}

func TestMemoryCatalog_LookupMissing(t *testing.T) {
	cat := NewMemoryCatalog()
	it, err := cat.Lookup(context.Background(), "Nonexistent Widget")
	assert.NoError(t, err)
	assert.Nil(t, it)
}

func TestMemoryCatalog_CancelledContext(t *testing.T) {
	cat := NewMemoryCatalog(&Item{Name: "Rifter"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cat.Lookup(ctx, "Rifter")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryCatalog_PutReplaces(t *testing.T) {
	cat := NewMemoryCatalog(&Item{Name: "Rifter", CategoryID: 1})
	cat.Put(&Item{Name: "RIFTER", CategoryID: 2})

	it, err := cat.Lookup(context.Background(), "Rifter")
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, int32(2), it.CategoryID)
	assert.Equal(t, 1, cat.Len())
	assert.Len(t, cat.Items(), 1)
}

func TestReadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		check   func(t *testing.T, items []*Item)
	}{
		{
			name: "named and numeric keys",
			input: `
items:
  - name: Widget
    category: 55
    attributes: {speed: 2000, "9999": 1.5}
`,
			check: func(t *testing.T, items []*Item) {
				require.Len(t, items, 1)
				assert.Equal(t, 2000.0, items[0].Attributes[RateOfFire])
				assert.Equal(t, 1.5, items[0].Attributes[attr.Key(9999)])
			},
		},
		{
			name:    "unknown attribute name",
			input:   "items:\n  - name: Widget\n    attributes: {bogus: 1}\n",
			wantErr: `unknown attribute "bogus"`,
		},
		{
			name:    "empty name",
			input:   "items:\n  - category: 1\n",
			wantErr: "empty name",
		},
		{
			name:    "malformed yaml",
			input:   "items: [",
			wantErr: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ReadCatalog(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, items)
		})
	}
}

func TestAttributeNames(t *testing.T) {
	for _, name := range AttributeNames() {
		key, ok := AttributeByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, AttributeName(key))
	}
	assert.Equal(t, "", AttributeName(attr.Key(-1)))
}

func TestResonanceKeys(t *testing.T) {
	seen := map[attr.Key]bool{}
	for _, l := range Layers {
		for _, d := range DamageTypes {
			k := ResonanceKey(l, d)
			assert.True(t, IsResonance(k))
			assert.False(t, seen[k], "duplicate resonance key %d", k)
			seen[k] = true
		}
	}
	assert.Len(t, seen, 12)
	assert.False(t, IsResonance(ShieldCapacity))
	assert.Equal(t, ShieldKineticResonance, ResonanceKey(Shield, Kinetic))
}
