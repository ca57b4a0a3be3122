package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var recencyNow = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestCalculateRecencyAt_OpenRangeIsCurrent(t *testing.T) {
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2020-01", ""), 1e-9)
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2020-01", "Present"), 1e-9)
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2020-01", "present"), 1e-9)
}

func TestCalculateRecencyAt_Bands(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		want    float64
	}{
		{"three months ago", "2026-03", 0.9},
		{"nine months ago", "2025-09", 0.8},
		{"eighteen months ago", "2024-12", 0.6},
		{"four years ago", "2022-06", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRecencyAt(recencyNow, "2019-01", tt.endDate)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateRecencyAt_DecaysToFloor(t *testing.T) {
	// Well past five years: banded decay applies
	decayed := CalculateRecencyAt(recencyNow, "2000-01", "2018-06")
	assert.Less(t, decayed, 0.4)
	assert.GreaterOrEqual(t, decayed, 0.1)

	// Ancient history bottoms out at the floor
	ancient := CalculateRecencyAt(recencyNow, "1980-01", "1985-01")
	assert.InDelta(t, 0.1, ancient, 1e-9)
}

func TestCalculateRecencyAt_MissingOrBadStartDate(t *testing.T) {
	assert.InDelta(t, 0.5, CalculateRecencyAt(recencyNow, "", ""), 1e-9)
	assert.InDelta(t, 0.5, CalculateRecencyAt(recencyNow, "not a date", "2026-01"), 1e-9)
}

func TestCalculateRecencyAt_AcceptedLayouts(t *testing.T) {
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2024-01-15", ""), 1e-9)
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2024-01", ""), 1e-9)
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2024", ""), 1e-9)
}

func TestCalculateRecencyAt_UnparseableEndTreatedAsOpen(t *testing.T) {
	assert.InDelta(t, 1.0, CalculateRecencyAt(recencyNow, "2020-01", "ongoing???"), 1e-9)
}
