package grader

import (
	"context"
	"errors"
	"testing"

	"github.com/quizmentor/quizmentor-lambda/internal/llm"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
)

type fakeProvider struct {
	result *llm.GradingResult
	err    error

	calls int
}

func (f *fakeProvider) GenerateQuestions(ctx context.Context, topicName string, count int) ([]llm.GeneratedQuestion, error) {
	return nil, errors.New("not used in this test")
}

func (f *fakeProvider) GradeAnswer(ctx context.Context, questionText, userAnswer string) (*llm.GradingResult, error) {
	f.calls++
	return f.result, f.err
}

func TestGradeMultipleChoice(t *testing.T) {
	ctx := context.Background()

	t.Run("ExactMatchScoresFive", func(t *testing.T) {
		provider := &fakeProvider{}
		result, err := New(provider).Grade(ctx, Input{
			QuestionType: question.TypeMultipleChoice,
			UserAnswer:   "B",
			MCQAnswerKey: "B",
		})
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != MaxScore {
			t.Errorf("expected score %d, got %d", MaxScore, result.Score)
		}
		if result.Feedback != "Correct!" {
			t.Errorf("unexpected feedback %q", result.Feedback)
		}
		if provider.calls != 0 {
			t.Errorf("MCQ grading must not call the LLM")
		}
	})

	t.Run("MismatchScoresZero", func(t *testing.T) {
		result, err := New(&fakeProvider{}).Grade(ctx, Input{
			QuestionType: question.TypeMultipleChoice,
			UserAnswer:   "A",
			MCQAnswerKey: "B",
		})
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 0 {
			t.Errorf("expected score 0, got %d", result.Score)
		}
		if result.Feedback != "Incorrect. The correct answer was B." {
			t.Errorf("unexpected feedback %q", result.Feedback)
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		result, err := New(&fakeProvider{}).Grade(ctx, Input{
			QuestionType: question.TypeMultipleChoice,
			UserAnswer:   "b",
			MCQAnswerKey: "B",
		})
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 0 {
			t.Errorf("comparison must be exact, got score %d", result.Score)
		}
	})

	t.Run("MissingAnswerKey", func(t *testing.T) {
		_, err := New(&fakeProvider{}).Grade(ctx, Input{
			QuestionType: question.TypeMultipleChoice,
			UserAnswer:   "A",
		})
		if !errors.Is(err, ErrMissingAnswerKey) {
			t.Fatalf("expected ErrMissingAnswerKey, got %v", err)
		}
	})
}

func TestGradeFreeText(t *testing.T) {
	ctx := context.Background()

	t.Run("UsesProviderResult", func(t *testing.T) {
		provider := &fakeProvider{result: &llm.GradingResult{
			Score:           4,
			Feedback:        "Good answer, but mention rollbacks.",
			SuggestedAnswer: "Blue-green deployment swaps traffic between two environments.",
		}}

		result, err := New(provider).Grade(ctx, Input{
			QuestionType: question.TypeFreeText,
			QuestionText: "Explain blue-green deployment.",
			UserAnswer:   "Two environments, swap on release.",
		})
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 4 || result.Feedback != provider.result.Feedback {
			t.Errorf("provider result not carried through: %+v", result)
		}
		if provider.calls != 1 {
			t.Errorf("expected one provider call, got %d", provider.calls)
		}
	})

	t.Run("ProviderFailureFallsBackToDefault", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("model timeout")}

		result, err := New(provider).Grade(ctx, Input{
			QuestionType: question.TypeFreeText,
			UserAnswer:   "some answer",
		})
		if err != nil {
			t.Fatalf("grading outage must not surface as an error, got %v", err)
		}
		if result.Score != 0 {
			t.Errorf("fallback score must be 0, got %d", result.Score)
		}
		if result.Feedback != fallbackFeedback {
			t.Errorf("unexpected fallback feedback %q", result.Feedback)
		}
		if result.SuggestedAnswer != fallbackSuggestedAnswer {
			t.Errorf("unexpected fallback suggested answer %q", result.SuggestedAnswer)
		}
		if provider.calls != 1 {
			t.Errorf("fallback must not retry, got %d calls", provider.calls)
		}
	})

	t.Run("NilResultFallsBackToDefault", func(t *testing.T) {
		result, err := New(&fakeProvider{}).Grade(ctx, Input{
			QuestionType: question.TypeFreeText,
			UserAnswer:   "some answer",
		})
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 0 || result.Feedback != fallbackFeedback {
			t.Errorf("nil provider result must fall back, got %+v", result)
		}
	})
}

func TestGradeUnsupportedType(t *testing.T) {
	_, err := New(&fakeProvider{}).Grade(context.Background(), Input{
		QuestionType: question.QuestionType("true-false"),
	})
	if !errors.Is(err, ErrUnsupportedQuestionType) {
		t.Fatalf("expected ErrUnsupportedQuestionType, got %v", err)
	}
}
