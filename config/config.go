package config

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the mock quote generator.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8000
//	SERVER_PID_FILE=api/stocks.pid
//	QUOTES_BASE_PRICES=THYAO=256.40,GARAN=48.72
//	QUOTES_DEFAULT_PRICE=100
//	QUOTES_MAX_VARIATION_PCT=2
//	QUOTES_MIN_VOLUME=100000
//	QUOTES_MAX_VOLUME=1000000
type Config struct {
	Server ServerConfig // HTTP server and process settings
	Quotes QuotesConfig // Mock quote generation settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    string // The TCP port the HTTP server will listen on (e.g., "8000")
	PIDFile string // Path of the process-id marker file
	GinMode string // gin mode: release, debug or test
}

// QuotesConfig defines how mock quotes are generated.
//
// Fields:
//   - BasePrices: reference price per uppercase ticker.
//   - DefaultPrice: reference price for tickers absent from BasePrices.
//   - MaxVariationPct: quotes move uniformly within [-MaxVariationPct, +MaxVariationPct] percent.
//   - MinVolume / MaxVolume: inclusive bounds of the random traded volume.
type QuotesConfig struct {
	BasePrices      map[string]float64
	DefaultPrice    float64
	MaxVariationPct float64
	MinVolume       int64
	MaxVolume       int64
}

// DefaultBasePrices is the sample table of BIST tickers served when
// QUOTES_BASE_PRICES is not set.
const DefaultBasePrices = "THYAO=256.40,GARAN=48.72,ASELS=84.15,KCHOL=176.90,SASA=342.50,EREGL=52.85,BIMAS=164.30,AKBNK=44.92"

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// invalid collects keys whose values could not be parsed during LoadConfig.
var invalid []string

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig() will terminate
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SERVER_PID_FILE", "api/stocks.pid")
	viper.SetDefault("GIN_MODE", "release")

	viper.SetDefault("QUOTES_BASE_PRICES", DefaultBasePrices)
	viper.SetDefault("QUOTES_DEFAULT_PRICE", 100.0)
	viper.SetDefault("QUOTES_MAX_VARIATION_PCT", 2.0)
	viper.SetDefault("QUOTES_MIN_VOLUME", 100000)
	viper.SetDefault("QUOTES_MAX_VOLUME", 1000000)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	invalid = nil
	prices, err := ParseBasePrices(viper.GetString("QUOTES_BASE_PRICES"))
	if err != nil {
		invalid = append(invalid, "QUOTES_BASE_PRICES ("+err.Error()+")")
	}

	AppConfig = Config{
		Server: ServerConfig{
			Port:    viper.GetString("SERVER_PORT"),
			PIDFile: viper.GetString("SERVER_PID_FILE"),
			GinMode: viper.GetString("GIN_MODE"),
		},
		Quotes: QuotesConfig{
			BasePrices:      prices,
			DefaultPrice:    viper.GetFloat64("QUOTES_DEFAULT_PRICE"),
			MaxVariationPct: viper.GetFloat64("QUOTES_MAX_VARIATION_PCT"),
			MinVolume:       viper.GetInt64("QUOTES_MIN_VOLUME"),
			MaxVolume:       viper.GetInt64("QUOTES_MAX_VOLUME"),
		},
	}

	validateConfig()
}

// ParseBasePrices parses a "SYM=PRICE,SYM=PRICE" list into a ticker table.
// Symbols are uppercased; blank entries are skipped; prices must be positive.
func ParseBasePrices(raw string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		sym, val, ok := strings.Cut(pair, "=")
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if !ok || sym == "" {
			return nil, fmt.Errorf("malformed entry %q, expected SYMBOL=PRICE", pair)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price for %s: %w", sym, err)
		}
		if price <= 0 {
			return nil, fmt.Errorf("price for %s must be positive, got %v", sym, price)
		}
		out[sym] = price
	}
	return out, nil
}

// validateConfig ensures required variables are present and sane and terminates
// the application if they are not.
func validateConfig() {
	if problems := checkConfig(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", problems)
	}
}

// ValidGinMode reports whether mode is accepted by gin.SetMode. Empty means
// "leave gin's own default".
func ValidGinMode(mode string) bool {
	switch mode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return true
	}
	return false
}

// checkConfig returns the list of offending keys, sorted for stable output.
func checkConfig(cfg Config) []string {
	missing := append([]string(nil), invalid...)

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.PIDFile == "" {
		missing = append(missing, "SERVER_PID_FILE")
	}
	if !ValidGinMode(cfg.Server.GinMode) {
		missing = append(missing, "GIN_MODE")
	}
	if cfg.Quotes.DefaultPrice <= 0 {
		missing = append(missing, "QUOTES_DEFAULT_PRICE")
	}
	if cfg.Quotes.MaxVariationPct < 0 || cfg.Quotes.MaxVariationPct >= 100 {
		missing = append(missing, "QUOTES_MAX_VARIATION_PCT")
	}
	if cfg.Quotes.MinVolume < 0 || cfg.Quotes.MaxVolume < cfg.Quotes.MinVolume {
		missing = append(missing, "QUOTES_MIN_VOLUME/QUOTES_MAX_VOLUME")
	}

	sort.Strings(missing)
	return missing
}
