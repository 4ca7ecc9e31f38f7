package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
)

func TestResolveAveragesSamples(t *testing.T) {
	tests := []struct {
		name    string
		samples []DimensionedEdge
		want    float64
	}{
		{
			name: "consistent",
			samples: []DimensionedEdge{
				{PixelLength: 100, RealLength: 2, Unit: geometry.Meters},
				{PixelLength: 200, RealLength: 4, Unit: geometry.Meters},
			},
			want: 50,
		},
		{
			name: "inconsistent",
			samples: []DimensionedEdge{
				{PixelLength: 100, RealLength: 2, Unit: geometry.Meters},
				{PixelLength: 300, RealLength: 4, Unit: geometry.Meters},
			},
			want: 62.5,
		},
		{
			name: "single",
			samples: []DimensionedEdge{
				{PixelLength: 30, RealLength: 10, Unit: geometry.Feet},
			},
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.samples, 0, 0)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.ScaleFactor, 1e-9)
			assert.Equal(t, tt.samples[0].Unit, got.Unit)
			assert.Equal(t, len(tt.samples), got.Samples)
		})
	}
}

func TestResolveMixedUnits(t *testing.T) {
	// 100 px for 1 m and 50 px for 50 cm agree on 0.1 px/mm.
	got, err := Resolve([]DimensionedEdge{
		{PixelLength: 50, RealLength: 50, Unit: geometry.Centimeters},
		{PixelLength: 100, RealLength: 1, Unit: geometry.Meters},
	}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, geometry.Centimeters, got.Unit)
	assert.InDelta(t, 0.1, got.PixelsPerMillimeter, 1e-12)
	assert.InDelta(t, 1.0, got.ScaleFactor, 1e-9)
	assert.InDelta(t, 100.0, got.PixelsPerMeter(), 1e-9)
}

func TestResolveMeasuresOutline(t *testing.T) {
	// A 400x300 px rectangle at 100 px/m is 4 m by 3 m.
	got, err := Resolve([]DimensionedEdge{
		{PixelLength: 400, RealLength: 4, Unit: geometry.Meters},
	}, 400*300, 2*(400+300))
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got.Area, 1e-9)
	assert.InDelta(t, 14.0, got.Perimeter, 1e-9)
	assert.InDelta(t, 12.0, got.AreaM2, 1e-9)
	assert.InDelta(t, 14.0, got.PerimeterM, 1e-9)
	assert.InDelta(t, 2.5, got.ToUnit(250), 1e-9)
}

func TestResolveUnresolved(t *testing.T) {
	tests := []struct {
		name    string
		samples []DimensionedEdge
	}{
		{"none", nil},
		{"zero length", []DimensionedEdge{{PixelLength: 100, RealLength: 0, Unit: geometry.Meters}}},
		{"unknown unit", []DimensionedEdge{{PixelLength: 100, RealLength: 1, Unit: "yd"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.samples, 100, 40)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeScaleUnresolved))
		})
	}
}

func TestResolveSkipsUnusableSamples(t *testing.T) {
	got, err := Resolve([]DimensionedEdge{
		{PixelLength: 100, RealLength: 0, Unit: geometry.Feet},
		{PixelLength: 100, RealLength: 1, Unit: geometry.Meters},
	}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, geometry.Meters, got.Unit)
	assert.Equal(t, 1, got.Samples)
}
