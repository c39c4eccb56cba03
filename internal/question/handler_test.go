package question

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type stubQuestionService struct {
	generated   []Question
	generateErr error

	gotCount int
}

func (s *stubQuestionService) SelectQuestions(ctx context.Context, topicID, userID uuid.UUID) ([]Question, error) {
	return nil, nil
}

func (s *stubQuestionService) GenerateQuestions(ctx context.Context, topicID uuid.UUID, count int) ([]Question, error) {
	s.gotCount = count
	return s.generated, s.generateErr
}

func (s *stubQuestionService) ListByStatus(ctx context.Context, status QuestionStatus, topicID *uuid.UUID) ([]QuestionWithTopic, error) {
	return nil, nil
}

func (s *stubQuestionService) Approve(ctx context.Context, id uuid.UUID) error     { return nil }
func (s *stubQuestionService) Deactivate(ctx context.Context, id uuid.UUID) error  { return nil }
func (s *stubQuestionService) MakePending(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubQuestionService) Reject(ctx context.Context, id uuid.UUID) error      { return nil }

func postGenerate(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/questions/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.GenerateQuestions(rec, req)
	return rec
}

func TestGenerateQuestionsHandler(t *testing.T) {
	topicID := uuid.New()

	t.Run("Created", func(t *testing.T) {
		svc := &stubQuestionService{generated: []Question{
			{ID: uuid.New(), TopicID: topicID, Status: StatusPending},
			{ID: uuid.New(), TopicID: topicID, Status: StatusPending},
		}}
		handler := NewHandler(svc)

		body := fmt.Sprintf(`{"topicId": %q, "numberOfQuestions": 2}`, topicID)
		rec := postGenerate(handler, body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.gotCount != 2 {
			t.Errorf("service called with count %d, want 2", svc.gotCount)
		}

		var resp struct {
			Message            string     `json:"message"`
			GeneratedQuestions []Question `json:"generatedQuestions"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if len(resp.GeneratedQuestions) != 2 {
			t.Errorf("expected 2 questions in response, got %d", len(resp.GeneratedQuestions))
		}
		if resp.Message != "2 questions generated and are pending approval." {
			t.Errorf("unexpected message %q", resp.Message)
		}
	})

	t.Run("EmptyBatchIsStillCreated", func(t *testing.T) {
		// An LLM outage degrades to zero questions; the endpoint succeeds.
		handler := NewHandler(&stubQuestionService{generated: []Question{}})

		body := fmt.Sprintf(`{"topicId": %q, "numberOfQuestions": 5}`, topicID)
		rec := postGenerate(handler, body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("CountOutOfRangeIs400", func(t *testing.T) {
		handler := NewHandler(&stubQuestionService{})

		for _, count := range []int{0, -1, 11} {
			body := fmt.Sprintf(`{"topicId": %q, "numberOfQuestions": %d}`, topicID, count)
			rec := postGenerate(handler, body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("count %d: expected 400, got %d", count, rec.Code)
			}
		}
	})

	t.Run("MissingTopicIDIs400", func(t *testing.T) {
		handler := NewHandler(&stubQuestionService{})

		rec := postGenerate(handler, `{"numberOfQuestions": 3}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("UnknownTopicIs404", func(t *testing.T) {
		handler := NewHandler(&stubQuestionService{generateErr: ErrTopicNotFound})

		body := fmt.Sprintf(`{"topicId": %q, "numberOfQuestions": 3}`, topicID)
		rec := postGenerate(handler, body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
