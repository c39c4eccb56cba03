package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
)

const maxQuestionsPerBatch = 10

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// ListEligibleQuestions serves GET /api/quiz/{topicId}/questions?userId=...,
// the full batch a quiz run iterates over client-side.
func (h *Handler) ListEligibleQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	topicID, err := uuid.Parse(chi.URLParam(r, "topicId"))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid topic ID")
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	questions, err := h.service.SelectQuestions(r.Context(), topicID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz questions")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if questions == nil {
		questions = []Question{}
	}
	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		TopicID           string `json:"topicId"`
		NumberOfQuestions int    `json:"numberOfQuestions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := uuid.Parse(payload.TopicID)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "topicId is required and must be a valid id")
		return
	}
	if payload.NumberOfQuestions <= 0 || payload.NumberOfQuestions > maxQuestionsPerBatch {
		config.JSONError(w, http.StatusBadRequest,
			fmt.Sprintf("numberOfQuestions must be between 1 and %d", maxQuestionsPerBatch))
		return
	}

	generated, err := h.service.GenerateQuestions(r.Context(), topicID, payload.NumberOfQuestions)
	if err != nil {
		if errors.Is(err, ErrTopicNotFound) {
			config.JSONError(w, http.StatusNotFound, fmt.Sprintf("Topic with ID %s not found.", topicID))
			return
		}
		log.WithError(err).Error("Failed to generate questions")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":            fmt.Sprintf("%d questions generated and are pending approval.", len(generated)),
		"generatedQuestions": generated,
	})
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, StatusPending)
}

func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, StatusApproved)
}

func (h *Handler) ListDeactivated(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, StatusDeactivated)
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request, status QuestionStatus) {
	log := config.WithContext(r.Context())

	var topicID *uuid.UUID
	if raw := r.URL.Query().Get("topicId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			config.JSONError(w, http.StatusBadRequest, "invalid topicId query parameter")
			return
		}
		topicID = &id
	}

	items, err := h.service.ListByStatus(r.Context(), status, topicID)
	if err != nil {
		log.WithError(err).Errorf("Failed to list %s questions", status)
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, items)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Approve, "approved successfully")
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Deactivate, "deactivated successfully")
}

func (h *Handler) MakePending(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.MakePending, "status changed to pending")
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Reject, "rejected and deleted successfully")
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, id uuid.UUID) error, outcome string) {

	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid question ID")
		return
	}

	if err := op(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.JSONError(w, http.StatusNotFound, fmt.Sprintf("Question with ID %s not found.", id))
			return
		}
		log.WithError(err).Errorf("Question status operation failed for %s", id)
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Question %s %s.", id, outcome),
	})
}
