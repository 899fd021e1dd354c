package report

import "time"

const (
	DefaultCacheTTL                = 24 * time.Hour
	DefaultRefreshTimeout          = 2 * time.Minute
	DefaultRefreshConcurrency      = 4
	DefaultAvailabilityConcurrency = 8
	DefaultPageSize                = 10
)

// Config carries the tunables of the report engine.
type Config struct {
	CacheTTL                time.Duration
	RefreshTimeout          time.Duration
	RefreshConcurrency      int
	AvailabilityConcurrency int
	DefaultPageSize         int
}

func DefaultConfig() Config {
	return Config{
		CacheTTL:                DefaultCacheTTL,
		RefreshTimeout:          DefaultRefreshTimeout,
		RefreshConcurrency:      DefaultRefreshConcurrency,
		AvailabilityConcurrency: DefaultAvailabilityConcurrency,
		DefaultPageSize:         DefaultPageSize,
	}
}

// withDefaults replaces non-positive values with the defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CacheTTL <= 0 {
		c.CacheTTL = d.CacheTTL
	}
	if c.RefreshTimeout <= 0 {
		c.RefreshTimeout = d.RefreshTimeout
	}
	if c.RefreshConcurrency <= 0 {
		c.RefreshConcurrency = d.RefreshConcurrency
	}
	if c.AvailabilityConcurrency <= 0 {
		c.AvailabilityConcurrency = d.AvailabilityConcurrency
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = d.DefaultPageSize
	}
	return c
}
