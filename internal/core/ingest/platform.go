package ingest

import (
	"slices"

	"ads-reconciler/internal/core/domain"
)

// platformMarkers are header tokens that only appear in a given platform's
// exports. They are checked in slice order and the first match wins.
var platformMarkers = []struct {
	platform domain.Platform
	markers  []string
}{
	{
		platform: domain.PlatformFacebook,
		markers: []string{
			"amount_spent", "amount spent (usd)", "amount spent",
			"link_clicks", "link clicks",
			"reporting_starts", "reporting starts",
			"adset_name", "ad set name",
		},
	},
	{
		platform: domain.PlatformGoogle,
		markers: []string{
			"cost_micros", "average_daily_budget", "impr", "impr.",
			"avg. cpc", "customer_email",
		},
	},
	{
		platform: domain.PlatformShareIT,
		markers:  []string{"taps", "report_date", "campaign_budget"},
	},
}

// DetectPlatform classifies a header row by its platform marker tokens.
// Headers are compared case-insensitively after trimming. Inputs without any
// marker are PlatformGeneric.
func DetectPlatform(headers []string) domain.Platform {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}
	for _, p := range platformMarkers {
		for _, m := range p.markers {
			if slices.Contains(normalized, m) {
				return p.platform
			}
		}
	}
	return domain.PlatformGeneric
}
