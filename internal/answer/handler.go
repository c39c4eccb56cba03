package answer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/grader"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
)

type Handler struct {
	service AnswerService
}

func NewHandler(s AnswerService) *Handler {
	return &Handler{service: s}
}

type submitAnswerRequest struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	QuestionType string `json:"questionType"`
	UserAnswer   string `json:"userAnswer"`
	MCQAnswerKey string `json:"mcqAnswerKey"`

	UserID                            string `json:"userId"`
	QuizAttemptID                     string `json:"quizAttemptId"`
	AnsweredQuestionIndex             *int   `json:"answeredQuestionIndex"`
	CurrentTotalScoreBeforeThisAnswer *int   `json:"currentTotalScoreBeforeThisAnswer"`
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.QuestionText == "" || req.QuestionType == "" {
		config.JSONError(w, http.StatusBadRequest,
			"Missing required fields for answer submission (questionId, questionText, questionType, userAnswer).")
		return
	}
	if question.QuestionType(req.QuestionType) == question.TypeMultipleChoice && req.MCQAnswerKey == "" {
		config.JSONError(w, http.StatusBadRequest, "mcqAnswerKey is required for multiple-choice questions.")
		return
	}
	if req.AnsweredQuestionIndex == nil || req.CurrentTotalScoreBeforeThisAnswer == nil {
		config.JSONError(w, http.StatusBadRequest,
			"Missing required fields for quiz progress (userId, quizAttemptId, answeredQuestionIndex, currentTotalScoreBeforeThisAnswer).")
		return
	}
	if *req.AnsweredQuestionIndex < 0 {
		config.JSONError(w, http.StatusBadRequest, "answeredQuestionIndex must be non-negative.")
		return
	}
	if *req.CurrentTotalScoreBeforeThisAnswer < 0 {
		config.JSONError(w, http.StatusBadRequest, "currentTotalScoreBeforeThisAnswer must be non-negative.")
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid questionId")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid userId")
		return
	}
	attemptID, err := uuid.Parse(req.QuizAttemptID)
	if err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid quizAttemptId")
		return
	}

	result, err := h.service.Submit(r.Context(), Submission{
		QuestionID:                        questionID,
		QuestionText:                      req.QuestionText,
		QuestionType:                      question.QuestionType(req.QuestionType),
		UserAnswer:                        req.UserAnswer,
		MCQAnswerKey:                      req.MCQAnswerKey,
		UserID:                            userID,
		QuizAttemptID:                     attemptID,
		AnsweredQuestionIndex:             *req.AnsweredQuestionIndex,
		CurrentTotalScoreBeforeThisAnswer: *req.CurrentTotalScoreBeforeThisAnswer,
	})
	if err != nil {
		switch {
		case errors.Is(err, grader.ErrMissingAnswerKey), errors.Is(err, grader.ErrUnsupportedQuestionType):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, attempt.ErrAttemptNotFound):
			config.JSONError(w, http.StatusNotFound, "quiz attempt not found")
		case errors.Is(err, attempt.ErrProgressConflict):
			config.JSONError(w, http.StatusConflict,
				"Progress update conflicts with the attempt's current state. Reload the attempt and retry.")
		default:
			log.WithError(err).Error("Failed to submit answer")
			config.JSONError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}
