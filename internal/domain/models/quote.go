package models

// Quote is a single synthetic price observation for a ticker.
//
// Fields:
//   - Symbol: uppercase ticker (e.g., "THYAO").
//   - Price: reference price moved by ChangePercentage, rounded to 2 decimals.
//   - ChangePercentage: the random move applied, in percent, rounded to 2 decimals.
//   - Volume: random traded volume.
//   - Timestamp: generation time as fractional seconds since the Unix epoch.
//
// Quotes live only for the request that produced them.
type Quote struct {
	Symbol           string  `json:"symbol" example:"THYAO"`
	Price            float64 `json:"price" example:"257.11"`
	ChangePercentage float64 `json:"change_percentage" example:"0.28"`
	Volume           int64   `json:"volume" example:"542193"`
	Timestamp        float64 `json:"timestamp" example:"1700000000.123"`
}
