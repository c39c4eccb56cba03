package answer

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(a *Answer) error
	ListByAttempt(attemptID uuid.UUID) ([]Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(a *Answer) error {
	return r.db.Create(a).Error
}

func (r *answerRepository) ListByAttempt(attemptID uuid.UUID) ([]Answer, error) {
	var answers []Answer
	err := r.db.
		Where("quiz_attempt_id = ?", attemptID).
		Order("timestamp ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
