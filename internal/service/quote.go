package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/guttosm/tickerstub/internal/domain/models"
	"github.com/guttosm/tickerstub/internal/storage"
	"github.com/shopspring/decimal"
)

// QuoteService defines business logic for producing mock quotes.
// This decouples HTTP handlers from the generator and its randomness.
type QuoteService interface {
	GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error)
}

// RandomSource is the subset of *rand.Rand used by the generator.
// Tests inject a fixed source to assert exact quote values.
type RandomSource interface {
	Float64() float64
	Int64N(n int64) int64
}

// NewSeededSource returns a deterministic PCG-backed source.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// QuoteOptions bounds the random parts of a quote.
type QuoteOptions struct {
	MaxVariationPct float64 // variation is uniform in [-MaxVariationPct, +MaxVariationPct]
	MinVolume       int64
	MaxVolume       int64
}

// DefaultQuoteOptions returns ±2% price moves and volumes in [100000, 1000000].
func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{MaxVariationPct: 2.0, MinVolume: 100000, MaxVolume: 1000000}
}

type quoteService struct {
	repo storage.BasePriceRepository
	opts QuoteOptions
	now  func() time.Time

	mu  sync.Mutex // guards src; rand sources are not safe for concurrent use
	src RandomSource
}

// NewQuoteService builds a generator over repo. A nil src is replaced by a
// clock-seeded source and a nil now by time.Now.
func NewQuoteService(repo storage.BasePriceRepository, opts QuoteOptions, src RandomSource, now func() time.Time) (QuoteService, error) {
	if repo == nil {
		return nil, fmt.Errorf("base price repository is required")
	}
	if opts.MaxVariationPct < 0 || opts.MaxVariationPct >= 100 {
		return nil, fmt.Errorf("max variation must be in [0, 100), got %v", opts.MaxVariationPct)
	}
	if opts.MinVolume < 0 || opts.MaxVolume < opts.MinVolume {
		return nil, fmt.Errorf("invalid volume range [%d, %d]", opts.MinVolume, opts.MaxVolume)
	}
	if now == nil {
		now = time.Now
	}
	if src == nil {
		src = NewSeededSource(uint64(now().UnixNano()))
	}
	return &quoteService{repo: repo, opts: opts, now: now, src: src}, nil
}

// GetQuotes returns one quote per symbol, in input order. Duplicates yield
// independent quotes.
func (s *quoteService) GetQuotes(ctx context.Context, symbols []string) ([]models.Quote, error) {
	quotes := make([]models.Quote, 0, len(symbols))
	for _, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		quotes = append(quotes, s.quote(sym))
	}
	return quotes, nil
}

func (s *quoteService) quote(symbol string) models.Quote {
	s.mu.Lock()
	variation := -s.opts.MaxVariationPct + 2*s.opts.MaxVariationPct*s.src.Float64()
	volume := s.opts.MinVolume + s.src.Int64N(s.opts.MaxVolume-s.opts.MinVolume+1)
	s.mu.Unlock()

	ref := s.repo.Lookup(symbol)
	ts := s.now()

	return models.Quote{
		Symbol:           symbol,
		Price:            round2(ref * (1 + variation/100)),
		ChangePercentage: round2(variation),
		Volume:           volume,
		Timestamp:        float64(ts.UnixNano()) / float64(time.Second),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
