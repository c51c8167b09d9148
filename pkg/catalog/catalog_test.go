package catalog

import (
	"testing"

	"github.com/aretw0/furrow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_PreservesOrderAndCopies(t *testing.T) {
	src := []domain.Action{
		{WaterAmount: 0.5, FertilizerAmount: 0.2},
		{WaterAmount: 1.0, FertilizerAmount: 0.3},
		{WaterAmount: 0.2, FertilizerAmount: 0.1},
	}
	c := NewFixed(src...)
	src[0].WaterAmount = 9

	got := c.Actions()
	require.Len(t, got, 3)
	assert.Equal(t, 0.5, got[0].WaterAmount)

	got[1].WaterAmount = 7
	assert.Equal(t, 1.0, c.Actions()[1].WaterAmount, "callers must not alias the catalog")
	assert.Equal(t, 3, c.Len())
}

func TestGrid_Generates(t *testing.T) {
	g, err := NewGrid(GridConfig{WaterStep: 0.25, MaxWater: 0.5, FertilizerStep: 0.1, MaxFertilizer: 0.2})
	require.NoError(t, err)

	got := g.Actions()
	// 3 water levels x 3 fertilizer levels, minus the no-op.
	require.Len(t, got, 8)
	assert.Equal(t, domain.Action{WaterAmount: 0, FertilizerAmount: 0.1}, got[0])
	assert.Equal(t, domain.Action{WaterAmount: 0.5, FertilizerAmount: 0.2}, got[len(got)-1])
	for _, a := range got {
		assert.False(t, a.IsNoop())
	}
}

func TestGrid_SingleAxis(t *testing.T) {
	g, err := NewGrid(GridConfig{WaterStep: 0.1, MaxWater: 0.3})
	require.NoError(t, err)
	assert.Equal(t, []domain.Action{
		{WaterAmount: 0.1},
		{WaterAmount: 0.2},
		{WaterAmount: 0.3},
	}, g.Actions())
}

func TestGrid_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  GridConfig
	}{
		{"negative max", GridConfig{WaterStep: 0.1, MaxWater: -1}},
		{"zero step", GridConfig{WaterStep: 0, MaxWater: 1}},
		{"too many points", GridConfig{WaterStep: 0.0001, MaxWater: 1, FertilizerStep: 0.0001, MaxFertilizer: 1}},
		{"axis beyond int range", GridConfig{WaterStep: 1e-9, MaxWater: 1e12}},
		{"huge single axis", GridConfig{WaterStep: 1, MaxWater: 1e9}},
		{"overflowing count", GridConfig{WaterStep: 1e-300, MaxWater: 1e300}},
		{"product over limit", GridConfig{WaterStep: 0.01, MaxWater: 1, FertilizerStep: 0.01, MaxFertilizer: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = NewGrid(tt.cfg) })
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestGrid_AtLimit(t *testing.T) {
	// 100 x 100 points, minus the no-op.
	g, err := NewGrid(GridConfig{WaterStep: 0.01, MaxWater: 0.99, FertilizerStep: 0.01, MaxFertilizer: 0.99})
	require.NoError(t, err)
	assert.Len(t, g.Actions(), maxGridPoints-1)
}
