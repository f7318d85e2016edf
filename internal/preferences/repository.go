package preferences

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, pref *Preference) error
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Preference, error)
	GetByUserAndRoute(ctx context.Context, userID, routeID uuid.UUID) (*Preference, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts the preference or, when the user already saved one for the
// same route, overwrites it in place. The conflict target is the composite
// unique index on (user_id, route_id).
func (r *repository) Upsert(ctx context.Context, pref *Preference) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "route_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"time_slot", "time_window", "passengers", "updated_at",
		}),
	}).Create(pref).Error
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Preference, error) {
	var prefs []Preference
	err := r.db.WithContext(ctx).
		Preload("Route").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&prefs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return prefs, nil
}

func (r *repository) GetByUserAndRoute(ctx context.Context, userID, routeID uuid.UUID) (*Preference, error) {
	var pref Preference
	err := r.db.WithContext(ctx).
		Preload("Route").
		First(&pref, "user_id = ? AND route_id = ?", userID, routeID).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
