package constants

import (
	"fmt"
	"strings"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: alpineair:{module}:{operation}:{params}

const (
	CACHE_PREFIX = "alpineair"
)

// ================== CACHE TTL DURATIONS ==================

const (
	// Route reference data is immutable once created.
	TTL_ROUTE_LIST   = 12 * time.Hour
	TTL_ROUTE_DETAIL = 12 * time.Hour

	// Flight search results. Seat counts drift while a booking is in flight,
	// so entries stay fresh for at most five minutes; search never
	// invalidates on booking (accepted staleness window).
	TTL_FLIGHT_SEARCH = 5 * time.Minute
)

// ================== CACHE KEYS ==================

const (
	CACHE_KEY_FLIGHT_SEARCH = CACHE_PREFIX + ":flights:search" // + :{origin}:{dest}:{date}:pax:{n}
	CACHE_KEY_ROUTES_LIST   = CACHE_PREFIX + ":routes:list:all"
	CACHE_KEY_ROUTE_DETAIL  = CACHE_PREFIX + ":routes:detail:uuid:" // + route-id
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_FLIGHT_SEARCH = CACHE_KEY_FLIGHT_SEARCH + ":*"
	PATTERN_INVALIDATE_ROUTES_ALL    = CACHE_PREFIX + ":routes:*"
)

// BuildFlightSearchKey builds the canonical search cache key. Every
// parameter that filters the result set is part of the key; origin and
// destination are upper-cased so "jfk" and "JFK" share an entry.
func BuildFlightSearchKey(origin, destination string, departureDate time.Time, passengers int) string {
	return fmt.Sprintf("%s:%s:%s:%s:pax:%d",
		CACHE_KEY_FLIGHT_SEARCH,
		strings.ToUpper(origin),
		strings.ToUpper(destination),
		departureDate.Format("2006-01-02"),
		passengers,
	)
}

func BuildRouteDetailKey(routeID string) string {
	return CACHE_KEY_ROUTE_DETAIL + routeID
}
