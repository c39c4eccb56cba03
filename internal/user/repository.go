package user

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultUsername = "default_user"

type UserRepository interface {
	FindByID(id uuid.UUID) (*User, error)
	EnsureDefault() (*User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EnsureDefault seeds the single quiz-taking user. DEFAULT_USER_ID pins the
// id so deployments and tests get a stable value.
func (r *userRepository) EnsureDefault() (*User, error) {
	var u User
	err := r.db.Where("username = ?", defaultUsername).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u = User{Username: defaultUsername}
	if raw := os.Getenv("DEFAULT_USER_ID"); raw != "" {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		u.ID = id
	} else {
		u.ID = uuid.New()
	}

	if err := r.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
