package answer

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
)

// Answer is append-only: written once per submission, never mutated, removed
// only by cascade when its question or attempt is deleted. The question
// selector reads this log to compute the 24h exclusion window.
type Answer struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"question_id"`
	QuizAttemptID   *uuid.UUID `gorm:"type:uuid;index" json:"quiz_attempt_id,omitempty"`
	UserAnswer      string     `gorm:"type:text" json:"user_answer"`
	Score           int        `gorm:"not null;default:0" json:"score"`
	Feedback        string     `gorm:"type:text" json:"feedback"`
	SuggestedAnswer string     `gorm:"type:text" json:"suggested_answer"`
	Timestamp       time.Time  `gorm:"autoCreateTime;index" json:"timestamp"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Question question.Question   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Attempt  attempt.QuizAttempt `gorm:"foreignKey:QuizAttemptID;constraint:OnDelete:CASCADE" json:"-"`
}
