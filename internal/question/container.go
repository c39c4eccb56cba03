package question

import (
	"github.com/quizmentor/quizmentor-lambda/internal/llm"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
	Repo    QuestionRepository
}

func NewQuestionContainer(db *gorm.DB, topicRepo topic.TopicRepository, provider llm.Provider) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, topicRepo, provider)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
