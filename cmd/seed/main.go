package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"alpineair/internal/flights"
	"alpineair/internal/routes"
	"alpineair/internal/shared/config"
	"alpineair/internal/shared/constants"
	"alpineair/internal/shared/database"
	"alpineair/pkg/cache"
)

type Seeder struct {
	db *database.DB
}

// routeSeed is one city pair with its reference pricing
type routeSeed struct {
	origin      string
	destination string
	basePrice   float64
	durationMin int
	distanceKm  int
}

var routeSeeds = []routeSeed{
	{"IAD", "GVA", 899, 450, 6543},
	{"JFK", "ZRH", 849, 440, 6322},
	{"LHR", "ZRH", 199, 100, 813},
}

const (
	scheduleDays    = 14
	flightsPerDay   = 3
	defaultCapacity = 12
)

func main() {
	fmt.Println("Starting AlpineAir database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded")

	fmt.Println("\nFlushing search cache...")
	if err := seeder.FlushSearchCache(); err != nil {
		log.Printf("Warning: failed to flush search cache: %v", err)
	} else {
		fmt.Println("Search cache flushed")
	}

	fmt.Println("\nSeeding completed. Database is ready.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"passengers",
		"bookings",
		"preferences",
		"flights",
		"routes",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds routes and a rolling flight schedule
func (s *Seeder) SeedAll() error {
	routeIDs, err := s.SeedRoutes()
	if err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}

	if err := s.SeedFlights(routeIDs); err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}

	return nil
}

// SeedRoutes inserts the reference city pairs
func (s *Seeder) SeedRoutes() (map[string]uuid.UUID, error) {
	routeIDs := make(map[string]uuid.UUID, len(routeSeeds))

	for _, seed := range routeSeeds {
		route := routes.Route{
			ID:             uuid.New(),
			Origin:         seed.origin,
			Destination:    seed.destination,
			BasePrice:      seed.basePrice,
			FlightDuration: seed.durationMin,
			Distance:       seed.distanceKm,
		}
		if err := s.db.PostgreSQL.Create(&route).Error; err != nil {
			return nil, fmt.Errorf("failed to create route %s-%s: %w", seed.origin, seed.destination, err)
		}
		routeIDs[seed.origin+"-"+seed.destination] = route.ID
		fmt.Printf("  Created route %s -> %s ($%.0f)\n", seed.origin, seed.destination, seed.basePrice)
	}

	return routeIDs, nil
}

// SeedFlights builds a rolling schedule: a few departures per day per route
// for the next two weeks, with mild price jitter around the route base price.
func (s *Seeder) SeedFlights(routeIDs map[string]uuid.UUID) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	departureHours := []int{8, 13, 18}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	total := 0

	for _, seed := range routeSeeds {
		routeID := routeIDs[seed.origin+"-"+seed.destination]

		for day := 0; day < scheduleDays; day++ {
			for slot := 0; slot < flightsPerDay; slot++ {
				departure := today.AddDate(0, 0, day).Add(time.Duration(departureHours[slot]) * time.Hour)
				arrival := departure.Add(time.Duration(seed.durationMin) * time.Minute)

				// +/- 15% around the base price
				jitter := 1 + (rng.Float64()*0.3 - 0.15)
				price := float64(int(seed.basePrice*jitter/10)) * 10

				flight := flights.Flight{
					ID:             uuid.New(),
					RouteID:        routeID,
					DepartureTime:  departure,
					ArrivalTime:    arrival,
					Price:          price,
					Capacity:       defaultCapacity,
					AvailableSeats: defaultCapacity,
					Status:         flights.StatusScheduled,
				}
				if err := s.db.PostgreSQL.Create(&flight).Error; err != nil {
					return fmt.Errorf("failed to create flight on %s-%s: %w", seed.origin, seed.destination, err)
				}
				total++
			}
		}
	}

	fmt.Printf("  Created %d flights across %d routes (%d days)\n", total, len(routeSeeds), scheduleDays)
	return nil
}

// FlushSearchCache drops any cached search results so reseeded data is
// visible immediately.
func (s *Seeder) FlushSearchCache() error {
	cacheService := cache.NewService(s.db.GetRedisClient())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FLIGHT_SEARCH); err != nil {
		return err
	}
	return cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ROUTES_ALL)
}
