package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildFlightSearchKey(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	key := BuildFlightSearchKey("jfk", "Zrh", date, 3)

	assert.Equal(t, "alpineair:flights:search:JFK:ZRH:2026-09-15:pax:3", key)
}

func TestBuildFlightSearchKey_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 15, 22, 0, 0, 0, time.UTC)

	assert.Equal(t,
		BuildFlightSearchKey("JFK", "ZRH", morning, 2),
		BuildFlightSearchKey("JFK", "ZRH", evening, 2),
	)
}

func TestSearchKeysMatchInvalidationPattern(t *testing.T) {
	key := BuildFlightSearchKey("IAD", "GVA", time.Now(), 1)

	assert.Contains(t, key, CACHE_KEY_FLIGHT_SEARCH+":")
	assert.Equal(t, CACHE_KEY_FLIGHT_SEARCH+":*", PATTERN_INVALIDATE_FLIGHT_SEARCH)
}
