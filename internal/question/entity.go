package question

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"gorm.io/datatypes"
)

type QuestionType string

const (
	TypeFreeText       QuestionType = "free-text"
	TypeMultipleChoice QuestionType = "multiple-choice"
)

// QuestionStatus is the moderation state machine: questions are generated as
// pending, admins move them between pending, approved and deactivated, and
// reject removes them for good. Only approved questions are served to
// quiz-takers.
type QuestionStatus string

const (
	StatusPending     QuestionStatus = "pending"
	StatusApproved    QuestionStatus = "approved"
	StatusDeactivated QuestionStatus = "deactivated"
)

type Question struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"topic_id"`
	QuestionText string            `gorm:"type:text;not null" json:"question_text"`
	QuestionType QuestionType      `gorm:"type:varchar(50);not null;default:'free-text'" json:"question_type"`
	AnswerKey    string            `gorm:"type:text" json:"answer_key"`
	Options      datatypes.JSONMap `gorm:"type:jsonb" json:"options,omitempty"`
	Difficulty   string            `gorm:"type:varchar(50)" json:"difficulty,omitempty"`
	Status       QuestionStatus    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Topic topic.Topic `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
}

// QuestionWithTopic is the moderation-list shape, one row per question with
// its topic name joined in.
type QuestionWithTopic struct {
	Question
	TopicName string `json:"topic_name"`
}
