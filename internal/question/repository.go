package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(q *Question) error
	ListByStatus(status QuestionStatus, topicID *uuid.UUID) ([]Question, error)
	FindEligible(topicID, userID uuid.UUID, answeredSince time.Time) ([]Question, error)
	CountApproved(topicID uuid.UUID) (int64, error)
	UpdateStatus(id uuid.UUID, status QuestionStatus) (int64, error)
	Delete(id uuid.UUID) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *questionRepository) ListByStatus(status QuestionStatus, topicID *uuid.UUID) ([]Question, error) {
	query := r.db.
		Preload("Topic").
		Where("status = ?", status)

	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}

	var questions []Question
	if err := query.Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindEligible returns the approved questions of a topic that the user has
// not answered since the cutoff, in one batch. The subquery walks the
// append-only answers log, which is why answers double as the audit trail
// for the rolling exclusion window.
func (r *questionRepository) FindEligible(topicID, userID uuid.UUID, answeredSince time.Time) ([]Question, error) {
	answered := r.db.Table("answers").
		Select("answers.question_id").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ?", userID).
		Where("questions.topic_id = ?", topicID).
		Where("answers.timestamp >= ?", answeredSince)

	var questions []Question
	err := r.db.
		Where("topic_id = ? AND status = ?", topicID, StatusApproved).
		Where("id NOT IN (?)", answered).
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountApproved(topicID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&Question{}).
		Where("topic_id = ? AND status = ?", topicID, StatusApproved).
		Count(&count).Error
	return count, err
}

func (r *questionRepository) UpdateStatus(id uuid.UUID, status QuestionStatus) (int64, error) {
	res := r.db.Model(&Question{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Delete is the hard reject: the row goes away and the answers referencing it
// follow via the FK cascade.
func (r *questionRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&Question{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
