package attempt

import (
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Handler *Handler
	Service AttemptService
	Repo    AttemptRepository
}

func NewAttemptContainer(db *gorm.DB, topicRepo topic.TopicRepository) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicRepo)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
