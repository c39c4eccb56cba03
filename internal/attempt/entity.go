package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"github.com/quizmentor/quizmentor-lambda/internal/user"
)

type AttemptStatus string

const (
	StatusInProgress AttemptStatus = "in-progress"
	StatusCompleted  AttemptStatus = "completed"
	StatusAbandoned  AttemptStatus = "abandoned"
)

// QuizAttempt is one user's run through a topic's question pool.
//
// TotalQuestionsInAttempt is a snapshot of the approved-question count taken
// when the attempt was created and never recomputed, so the "N of M" display
// stays stable for the attempt's whole lifetime. The live pool can drift from
// it as questions are approved or deactivated afterwards; that staleness is
// accepted and bounded by the attempt lifetime.
type QuizAttempt struct {
	ID                      uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                  uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	TopicID                 uuid.UUID     `gorm:"type:uuid;not null;index" json:"topic_id"`
	StartTime               time.Time     `gorm:"autoCreateTime" json:"start_time"`
	Status                  AttemptStatus `gorm:"type:varchar(20);not null;default:'in-progress'" json:"status"`
	CurrentQuestionIndex    int           `gorm:"not null;default:0" json:"current_question_index"`
	CurrentScore            int           `gorm:"not null;default:0" json:"current_score"`
	TotalQuestionsInAttempt int           `gorm:"not null;default:0" json:"total_questions_in_attempt"`
	LastActivityTime        time.Time     `gorm:"autoCreateTime" json:"last_activity_time"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`

	User  user.User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Topic topic.Topic `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
}

// ActiveAttemptResponse matches what the quiz frontend restores its state
// from after a page reload.
type ActiveAttemptResponse struct {
	QuizAttemptID           uuid.UUID     `json:"quizAttemptId"`
	CurrentQuestionIndex    int           `json:"current_question_index"`
	CurrentScore            int           `json:"current_score"`
	Status                  AttemptStatus `json:"status"`
	TotalQuestionsInAttempt int           `json:"totalQuestionsInAttempt"`
}

type StartAttemptResponse struct {
	QuizAttemptID           uuid.UUID `json:"quizAttemptId"`
	TotalQuestionsInAttempt int       `json:"totalQuestionsInAttempt"`
}
