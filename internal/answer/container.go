package answer

import (
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/grader"
	"gorm.io/gorm"
)

type AnswerContainer struct {
	Handler *Handler
	Service AnswerService
	Repo    AnswerRepository
}

func NewAnswerContainer(db *gorm.DB, g grader.Grader, attempts attempt.AttemptService) *AnswerContainer {
	repo := NewRepository(db)
	service := NewService(repo, g, attempts)
	handler := NewHandler(service)

	return &AnswerContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
