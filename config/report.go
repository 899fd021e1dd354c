package config

import (
	"rental-backend/services/report"
	"rental-backend/utils"
)

// LoadReportConfig reads the REPORT_* variables over the engine defaults.
func LoadReportConfig() report.Config {
	return report.Config{
		CacheTTL:                utils.EnvDuration("REPORT_CACHE_TTL", report.DefaultCacheTTL),
		RefreshTimeout:          utils.EnvDuration("REPORT_REFRESH_TIMEOUT", report.DefaultRefreshTimeout),
		RefreshConcurrency:      utils.EnvInt("REPORT_REFRESH_CONCURRENCY", report.DefaultRefreshConcurrency),
		AvailabilityConcurrency: utils.EnvInt("REPORT_AVAILABILITY_CONCURRENCY", report.DefaultAvailabilityConcurrency),
		DefaultPageSize:         utils.EnvInt("REPORT_DEFAULT_PAGE_SIZE", report.DefaultPageSize),
	}
}
