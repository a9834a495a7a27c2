// Package config defines service configuration structures and loading hooks.
//
// Endpoint URLs and pipeline tuning live here rather than as package-level
// globals, so the ingestion pipeline stays a pure function of (raw text,
// config).
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// PrimaryEndpoint is the published-CSV export of the performance sheet.
	PrimaryEndpoint string `koanf:"primary_endpoint"`

	// SecondaryEndpoint is the differently-formatted fallback export, tried
	// only after the primary fails.
	SecondaryEndpoint string `koanf:"secondary_endpoint"`

	// OpenPredictionsEndpoint serves the open-predictions sheet. Optional.
	OpenPredictionsEndpoint string `koanf:"open_predictions_endpoint"`

	// BaselinePath points at a local CSV used as the static fallback
	// snapshot. Optional.
	BaselinePath string `koanf:"baseline_path"`

	// RefreshIntervalMinutes sets how often the background scheduler
	// rebuilds the snapshot.
	RefreshIntervalMinutes int `koanf:"refresh_interval_minutes"`

	// LeaderboardSize, IntervalSize, and AssetLimit size the board panels.
	LeaderboardSize int `koanf:"leaderboard_size"`
	IntervalSize    int `koanf:"interval_size"`
	AssetLimit      int `koanf:"asset_limit"`

	// MaxAssetLimit caps GET /assets?limit.
	MaxAssetLimit int `koanf:"max_asset_limit"`

	// FetchRatePerMinute and FetchBurst bound outbound fetches.
	FetchRatePerMinute float64 `koanf:"fetch_rate_per_minute"`
	FetchBurst         int     `koanf:"fetch_burst"`

	// BreakerFailureThreshold and BreakerCooldownSeconds tune the
	// per-endpoint circuit breakers.
	BreakerFailureThreshold int `koanf:"breaker_failure_threshold"`
	BreakerCooldownSeconds  int `koanf:"breaker_cooldown_seconds"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		Addr:                    ":9090",
		RefreshIntervalMinutes:  15,
		LeaderboardSize:         4,
		IntervalSize:            3,
		AssetLimit:              8,
		MaxAssetLimit:           50,
		FetchRatePerMinute:      6,
		FetchBurst:              2,
		BreakerFailureThreshold: 3,
		BreakerCooldownSeconds:  60,
	}
}
