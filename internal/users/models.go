package users

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors an identity-provider account. SubjectID is the provider's
// stable identifier; the row is created the first time a token for that
// subject is seen.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	SubjectID string    `json:"-" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"index;not null"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}
