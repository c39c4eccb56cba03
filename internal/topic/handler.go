package topic

import (
	"net/http"

	"github.com/quizmentor/quizmentor-lambda/internal/config"
)

type Handler struct {
	repo TopicRepository
}

func NewHandler(repo TopicRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topics, err := h.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list topics")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, topics)
}
