package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerstub/config"
	"github.com/guttosm/tickerstub/internal/api"
	"github.com/guttosm/tickerstub/internal/logger"
	"github.com/guttosm/tickerstub/internal/service"
	"github.com/guttosm/tickerstub/internal/storage"
)

// clock and randomSource are indirections for unit testing; production uses
// the wall clock and a clock-seeded generator.
var (
	clock        func() time.Time
	randomSource service.RandomSource
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the immutable base price table (BasePriceRepository).
//   - Initializes the quote service with the configured bounds.
//   - Creates the HTTP handler layer and the Gin router.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	if !config.ValidGinMode(cfg.Server.GinMode) {
		return nil, nil, fmt.Errorf("unknown gin mode %q", cfg.Server.GinMode)
	}
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	repo := storage.NewBasePriceRepository(cfg.Quotes.BasePrices, cfg.Quotes.DefaultPrice)

	opts := service.QuoteOptions{
		MaxVariationPct: cfg.Quotes.MaxVariationPct,
		MinVolume:       cfg.Quotes.MinVolume,
		MaxVolume:       cfg.Quotes.MaxVolume,
	}
	svc, err := service.NewQuoteService(repo, opts, randomSource, clock)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize quote service: %w", err)
	}

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	logger.L().Info().
		Strs("symbols", repo.Symbols()).
		Float64("default_price", cfg.Quotes.DefaultPrice).
		Float64("max_variation_pct", opts.MaxVariationPct).
		Msg("base price table loaded")

	// Nothing to release yet.
	cleanup := func() {}

	return router, cleanup, nil
}
