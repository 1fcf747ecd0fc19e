// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"strings"

	domainerror "github.com/village-finance/backend/internal/domain/error"
)

// Granularity represents the period size used to group records on the trend chart.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// IsValid reports whether g is one of the supported granularities.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}
	return false
}

// ParseGranularity converts a selector value into a Granularity.
// Unknown values are rejected rather than defaulted.
func ParseGranularity(value string) (Granularity, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeMissingGranularity,
			"granularity is required",
			domainerror.ErrMissingGranularity,
		)
	}

	g := Granularity(value)
	if !g.IsValid() {
		return "", invalidGranularityError()
	}
	return g, nil
}

func invalidGranularityError() error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidGranularity,
		"granularity must be: daily, weekly, or monthly",
		domainerror.ErrInvalidGranularity,
	)
}
