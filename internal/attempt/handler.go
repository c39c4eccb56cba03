package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetActiveAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid or missing userId query parameter")
		return
	}
	topicID, err := uuid.Parse(r.URL.Query().Get("topicId"))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid or missing topicId query parameter")
		return
	}

	a, err := h.service.GetActiveAttempt(r.Context(), userID, topicID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch active quiz attempt")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if a == nil {
		config.JSON(w, http.StatusNotFound, map[string]string{
			"message": "No active quiz attempt found for this user and topic.",
		})
		return
	}

	config.JSON(w, http.StatusOK, ActiveAttemptResponse{
		QuizAttemptID:           a.ID,
		CurrentQuestionIndex:    a.CurrentQuestionIndex,
		CurrentScore:            a.CurrentScore,
		Status:                  a.Status,
		TotalQuestionsInAttempt: a.TotalQuestionsInAttempt,
	})
}

func (h *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		UserID  string `json:"userId"`
		TopicID string `json:"topicId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "missing or invalid userId in request body")
		return
	}
	topicID, err := uuid.Parse(payload.TopicID)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "missing or invalid topicId in request body")
		return
	}

	result, err := h.service.StartAttempt(r.Context(), userID, topicID)
	if err != nil {
		if errors.Is(err, ErrTopicNotFound) {
			config.JSONError(w, http.StatusNotFound, "topic not found")
			return
		}
		log.WithError(err).Error("Failed to start quiz attempt")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, result)
}

func (h *Handler) AbandonAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid attempt ID")
		return
	}

	if err := h.service.AbandonAttempt(r.Context(), id); err != nil {
		if errors.Is(err, ErrAttemptNotFound) {
			config.JSONError(w, http.StatusNotFound, "no in-progress attempt with this ID")
			return
		}
		log.WithError(err).Error("Failed to abandon quiz attempt")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Quiz attempt abandoned.",
	})
}
