package user

import (
	"time"

	"github.com/google/uuid"
)

// User exists so answers and attempts have a real row to reference.
// There is no login: a single default user is seeded and its id is threaded
// through every call as an explicit parameter.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
