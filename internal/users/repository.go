package users

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	GetBySubjectID(ctx context.Context, subjectID string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	FindOrCreate(ctx context.Context, subjectID, email, name string) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBySubjectID(ctx context.Context, subjectID string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindOrCreate resolves the local mirror for an identity-provider subject,
// creating the row on first sight. A concurrent first request can lose the
// insert race on the unique subject index, in which case the winner's row
// is returned.
func (r *repository) FindOrCreate(ctx context.Context, subjectID, email, name string) (*User, error) {
	user, err := r.GetBySubjectID(ctx, subjectID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user = &User{
		SubjectID: subjectID,
		Email:     email,
		Name:      name,
	}
	if createErr := r.Create(ctx, user); createErr != nil {
		if existing, getErr := r.GetBySubjectID(ctx, subjectID); getErr == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return user, nil
}
