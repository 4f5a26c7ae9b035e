package storage

import (
	"sort"
	"strings"
)

// BasePriceRepository defines read access to the reference price table.
type BasePriceRepository interface {
	Lookup(symbol string) float64
	Symbols() []string
}

type basePriceRepository struct {
	prices       map[string]float64
	defaultPrice float64
}

// NewBasePriceRepository copies prices into an immutable table. Keys are
// uppercased; symbols absent from the table resolve to defaultPrice.
func NewBasePriceRepository(prices map[string]float64, defaultPrice float64) BasePriceRepository {
	table := make(map[string]float64, len(prices))
	for sym, p := range prices {
		table[strings.ToUpper(sym)] = p
	}
	return &basePriceRepository{prices: table, defaultPrice: defaultPrice}
}

// Lookup returns the reference price for an uppercase symbol.
func (r *basePriceRepository) Lookup(symbol string) float64 {
	if p, ok := r.prices[symbol]; ok {
		return p
	}
	return r.defaultPrice
}

// Symbols returns the known tickers in lexical order.
func (r *basePriceRepository) Symbols() []string {
	out := make([]string, 0, len(r.prices))
	for sym := range r.prices {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
