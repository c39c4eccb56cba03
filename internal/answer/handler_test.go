package answer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/grader"
)

type stubAnswerService struct {
	result *grader.Result
	err    error
}

func (s *stubAnswerService) Submit(ctx context.Context, sub Submission) (*grader.Result, error) {
	return s.result, s.err
}

func validPayload() string {
	return fmt.Sprintf(`{
  "questionId": %q,
  "questionText": "Which command lists running containers?",
  "questionType": "multiple-choice",
  "userAnswer": "A",
  "mcqAnswerKey": "A",
  "userId": %q,
  "quizAttemptId": %q,
  "answeredQuestionIndex": 0,
  "currentTotalScoreBeforeThisAnswer": 0
}`, uuid.New(), uuid.New(), uuid.New())
}

func post(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/answers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitAnswer(rec, req)
	return rec
}

func TestSubmitAnswerHandler(t *testing.T) {
	t.Run("ReturnsGradingResult", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{result: &grader.Result{
			Score:           5,
			Feedback:        "Correct!",
			SuggestedAnswer: "The correct option was A.",
		}})

		rec := post(handler, validPayload())
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var body grader.Result
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body.Score != 5 || body.Feedback != "Correct!" {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("MissingQuestionFieldsIs400", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{})

		rec := post(handler, `{"userAnswer": "A"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("MCQWithoutAnswerKeyIs400", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{})

		body := strings.Replace(validPayload(), `"mcqAnswerKey": "A",`, "", 1)
		rec := post(handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("MissingProgressFieldsIs400", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{})

		// A zero index is valid; an absent one is not. The pointer decode
		// has to tell those apart.
		body := strings.Replace(validPayload(), `"answeredQuestionIndex": 0,`, "", 1)
		rec := post(handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("NegativeIndexIs400", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{})

		body := strings.Replace(validPayload(),
			`"answeredQuestionIndex": 0,`, `"answeredQuestionIndex": -1,`, 1)
		rec := post(handler, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("ProgressConflictIs409", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{err: attempt.ErrProgressConflict})

		rec := post(handler, validPayload())
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["error"] == "" {
			t.Errorf("conflict response should carry an error message")
		}
	})

	t.Run("UnknownAttemptIs404", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{err: attempt.ErrAttemptNotFound})

		rec := post(handler, validPayload())
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("GraderValidationIs400", func(t *testing.T) {
		handler := NewHandler(&stubAnswerService{err: grader.ErrMissingAnswerKey})

		rec := post(handler, validPayload())
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
