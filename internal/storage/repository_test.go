package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePriceRepository_Lookup(t *testing.T) {
	repo := NewBasePriceRepository(map[string]float64{"THYAO": 256.40, "garan": 48.72}, 100.0)

	cases := []struct {
		name   string
		symbol string
		want   float64
	}{
		{name: "known", symbol: "THYAO", want: 256.40},
		{name: "key normalized", symbol: "GARAN", want: 48.72},
		{name: "unknown", symbol: "XYZ", want: 100.0},
		{name: "empty", symbol: "", want: 100.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, repo.Lookup(tc.symbol))
		})
	}
}

func TestBasePriceRepository_Immutable(t *testing.T) {
	src := map[string]float64{"SASA": 342.50}
	repo := NewBasePriceRepository(src, 100.0)
	src["SASA"] = 1
	src["EREGL"] = 2

	assert.Equal(t, 342.50, repo.Lookup("SASA"))
	assert.Equal(t, 100.0, repo.Lookup("EREGL"))
	assert.Equal(t, []string{"SASA"}, repo.Symbols())
}

func TestBasePriceRepository_Symbols(t *testing.T) {
	repo := NewBasePriceRepository(map[string]float64{"THYAO": 1, "AKBNK": 2, "GARAN": 3}, 100.0)
	assert.Equal(t, []string{"AKBNK", "GARAN", "THYAO"}, repo.Symbols())

	empty := NewBasePriceRepository(nil, 100.0)
	assert.Empty(t, empty.Symbols())
}
