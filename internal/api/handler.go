package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerstub/internal/domain/dto"
	"github.com/guttosm/tickerstub/internal/logger"
	"github.com/guttosm/tickerstub/internal/middleware"
	"github.com/guttosm/tickerstub/internal/service"
)

// Handler provides HTTP handlers for the mock price endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Ask the quote service for one quote per requested symbol
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.QuoteService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.QuoteService) *Handler {
	return &Handler{svc: svc}
}

// GetPrices handles GET /prices requests.
//
// Query Parameters:
//   - symbols (string, required): comma-separated tickers, case-insensitive (e.g., "THYAO,garan").
//     When repeated, the first non-empty value is used.
//
// Responses:
//   - 200 OK: PricesResponse with one quote per symbol, in request order.
//   - 400 Bad Request: symbols missing or empty.
//   - 500 Internal Server Error: quote generation failed; body is the error text.
//
// GetPrices godoc
// @Summary      Get mock prices
// @Description  Returns randomized quotes around fixed base prices for the requested tickers
// @Tags         prices
// @Produce      json
// @Param        symbols  query     string  true  "Comma-separated tickers" example(THYAO,GARAN)
// @Success      200      {object}  dto.PricesResponse  "Success"
// @Failure      400      {string}  string              "No symbols provided"
// @Failure      500      {string}  string              "Internal Error"
// @Router       /prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	// ─── Validate "symbols" param ─────────────────────────────
	raw := firstNonEmpty(c.QueryArray("symbols"))
	if raw == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "No symbols provided", nil)
		return
	}
	symbols := ParseSymbols(raw)

	logger.L().Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Strs("symbols", symbols).
		Msg("processing request for symbols")

	// ─── Generate quotes (with request context) ───────────────
	quotes, err := h.svc.GetQuotes(c.Request.Context(), symbols)
	if err != nil {
		_ = c.Error(fmt.Errorf("failed to generate quotes: %w", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewPricesResponse(quotes))
}

// ParseSymbols splits a comma-separated list, trimming whitespace and
// uppercasing each element. Empty elements are kept so the response always
// has one entry per comma-separated item.
func ParseSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.ToUpper(strings.TrimSpace(p))
	}
	return parts
}

// firstNonEmpty returns the first non-blank value of a repeated query
// parameter, so "?symbols=&symbols=THYAO" is treated as "THYAO".
func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// NotFound answers every unmatched GET/HEAD/POST/... with a plain 404.
func NotFound(c *gin.Context) {
	middleware.AbortWithError(c, http.StatusNotFound, "Not Found", nil)
}
