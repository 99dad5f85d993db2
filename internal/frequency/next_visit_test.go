package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextVisitIn(t *testing.T) {
	visits := []Visit{
		{Date: FrequencyDate{ISO: "2025-06-18"}, Day: "Wednesday"},
		{Date: FrequencyDate{ISO: "2025-05-21"}, Day: "Wednesday"},
		{Date: FrequencyDate{ISO: "2025-05-22"}, Day: "Thursday"},
	}

	tests := []struct {
		name     string
		today    string
		expected string
	}{
		{name: "picks the nearest upcoming date", today: "2025-05-01", expected: "2025-05-21"},
		{name: "includes today", today: "2025-05-22", expected: "2025-05-22"},
		{name: "skips past dates", today: "2025-05-23", expected: "2025-06-18"},
		{name: "falls back to the earliest date when all are past", today: "2026-01-01", expected: "2025-05-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := NextVisitIn(visits, tt.today)
			require.NotNil(t, next)
			assert.Equal(t, tt.expected, next.Date.ISO)
		})
	}

	assert.Equal(t, "2025-06-18", visits[0].Date.ISO, "input order is preserved")
}

func TestNextVisitInEmpty(t *testing.T) {
	assert.Nil(t, NextVisitIn(nil, "2025-05-01"))
	assert.Nil(t, NextVisitIn([]Visit{}, "2025-05-01"))
}

func TestNextVisitAcrossMatches(t *testing.T) {
	directory := defaultDirectory(t)
	result := directory.FindFrequencyForPostcode("BA5 1AA")
	require.NotNil(t, result)

	next := NextVisit(result, "2025-05-01")
	require.NotNil(t, next)
	assert.Equal(t, "2025-05-21", next.Date.ISO)
	assert.Equal(t, "Wednesday", next.Day)

	next = NextVisit(result, "2025-05-22")
	require.NotNil(t, next)
	assert.Equal(t, "2025-05-22", next.Date.ISO)
	assert.Equal(t, "Thursday", next.Day)

	assert.Nil(t, NextVisit(nil, "2025-05-01"))
}
