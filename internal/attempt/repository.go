package attempt

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	FindActive(userID, topicID uuid.UUID) (*QuizAttempt, error)
	FindByID(id uuid.UUID) (*QuizAttempt, error)
	CreateWithSnapshot(a *QuizAttempt) error
	UpdateProgress(id uuid.UUID, expectedIndex, nextIndex, newScore int, complete bool) (int64, error)
	Abandon(id uuid.UUID) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

// FindActive returns the most recent in-progress attempt for the pair, or
// nil when there is none. The id tie-break keeps the ordering stable when
// start times collide at second resolution.
func (r *attemptRepository) FindActive(userID, topicID uuid.UUID) (*QuizAttempt, error) {
	var a QuizAttempt
	err := r.db.
		Where("user_id = ? AND topic_id = ? AND status = ?", userID, topicID, StatusInProgress).
		Order("start_time DESC").
		Order("id DESC").
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) FindByID(id uuid.UUID) (*QuizAttempt, error) {
	var a QuizAttempt
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// CreateWithSnapshot counts the topic's approved questions and inserts the
// attempt with that count frozen in, both inside one transaction so the
// snapshot cannot race with the pool changing between count and insert.
// A unique violation from the partial active index comes back as
// gorm.ErrDuplicatedKey.
func (r *attemptRepository) CreateWithSnapshot(a *QuizAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&question.Question{}).
			Where("topic_id = ? AND status = ?", a.TopicID, question.StatusApproved).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count approved questions: %w", err)
		}

		a.TotalQuestionsInAttempt = int(count)
		return tx.Create(a).Error
	})
}

// UpdateProgress is a compare-and-swap: the row only moves forward when the
// stored cursor still equals expectedIndex, so two racing submissions cannot
// silently overwrite each other. Returns the number of rows that matched.
func (r *attemptRepository) UpdateProgress(id uuid.UUID, expectedIndex, nextIndex, newScore int, complete bool) (int64, error) {
	updates := map[string]interface{}{
		"current_question_index": nextIndex,
		"current_score":          newScore,
		"last_activity_time":     time.Now(),
	}
	if complete {
		updates["status"] = StatusCompleted
	}

	res := r.db.Model(&QuizAttempt{}).
		Where("id = ? AND status = ? AND current_question_index = ?", id, StatusInProgress, expectedIndex).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *attemptRepository) Abandon(id uuid.UUID) (int64, error) {
	res := r.db.Model(&QuizAttempt{}).
		Where("id = ? AND status = ?", id, StatusInProgress).
		Updates(map[string]interface{}{
			"status":             StatusAbandoned,
			"last_activity_time": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// EnsureActiveIndex creates the partial unique index backing the "at most one
// in-progress attempt per (user, topic)" invariant. AutoMigrate cannot
// express a filtered index, so it is created here.
func EnsureActiveIndex(db *gorm.DB) error {
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_quiz_attempts_one_active
		 ON quiz_attempts (user_id, topic_id)
		 WHERE status = 'in-progress'`,
	).Error
}
