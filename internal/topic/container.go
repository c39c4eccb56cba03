package topic

import "gorm.io/gorm"

type TopicContainer struct {
	Handler *Handler
	Repo    TopicRepository
}

func NewTopicContainer(db *gorm.DB) *TopicContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &TopicContainer{
		Handler: handler,
		Repo:    repo,
	}
}
