package analysis

import (
	"strings"
	"time"
)

// Recency band thresholds in months and their scores
const (
	defaultRecency = 0.5

	recencyCurrent      = 1.0
	recencyHalfYear     = 0.9
	recencyOneYear      = 0.8
	recencyTwoYears     = 0.6
	recencyFiveYears    = 0.4
	recencyFloor        = 0.1
	recencyDecayMonths  = 120.0
	daysPerMonth        = 30.0
	presentSentinelDate = "Present"
)

// dateLayouts are the accepted input date formats, most specific first
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// CalculateRecency scores how current a date range is, relative to now.
// See CalculateRecencyAt for the mapping.
func CalculateRecency(startDate, endDate string) float64 {
	return CalculateRecencyAt(time.Now(), startDate, endDate)
}

// CalculateRecencyAt scores how current a date range is relative to the
// given reference time. An absent start date yields the neutral default; an
// absent or "Present" end date means the range is still open. The score is
// banded by months since the range ended: current 1.0, within six months
// 0.9, within a year 0.8, within two years 0.6, within five years 0.4, then
// linear decay with a 0.1 floor.
func CalculateRecencyAt(now time.Time, startDate, endDate string) float64 {
	if startDate == "" {
		return defaultRecency
	}
	if _, ok := parseDate(startDate); !ok {
		return defaultRecency
	}

	end := now
	if endDate != "" && !strings.EqualFold(endDate, presentSentinelDate) {
		if parsed, ok := parseDate(endDate); ok {
			end = parsed
		}
	}

	monthsAgo := now.Sub(end).Hours() / (24 * daysPerMonth)

	switch {
	case monthsAgo <= 0:
		return recencyCurrent
	case monthsAgo <= 6:
		return recencyHalfYear
	case monthsAgo <= 12:
		return recencyOneYear
	case monthsAgo <= 24:
		return recencyTwoYears
	case monthsAgo <= 60:
		return recencyFiveYears
	}

	decayed := recencyFiveYears - (monthsAgo-60)/recencyDecayMonths
	if decayed < recencyFloor {
		return recencyFloor
	}
	return decayed
}

// parseDate tries the accepted layouts in order
func parseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
