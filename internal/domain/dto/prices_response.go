package dto

import "github.com/guttosm/tickerstub/internal/domain/models"

// PricesResponse represents the JSON structure returned by the
// GET /prices endpoint.
type PricesResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    []models.Quote `json:"data"`
}

// NewPricesResponse wraps quotes in a successful envelope. Data is never
// serialized as null.
func NewPricesResponse(quotes []models.Quote) PricesResponse {
	if quotes == nil {
		quotes = []models.Quote{}
	}
	return PricesResponse{Success: true, Data: quotes}
}
