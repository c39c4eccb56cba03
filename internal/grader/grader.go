package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/llm"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
)

const (
	MaxScore = 5

	fallbackFeedback        = "Could not grade the answer at this time. Please try again later."
	fallbackSuggestedAnswer = "N/A"
)

var (
	ErrMissingAnswerKey        = errors.New("multiple choice question submitted without an answer key for grading")
	ErrUnsupportedQuestionType = errors.New("unsupported question type")
)

type Input struct {
	QuestionText string
	QuestionType question.QuestionType
	UserAnswer   string
	MCQAnswerKey string
}

type Result struct {
	Score           int    `json:"score"`
	Feedback        string `json:"feedback"`
	SuggestedAnswer string `json:"suggestedAnswer"`
}

// Grader maps a (question, user answer) pair to a score in [0,5] plus
// feedback. Multiple choice is graded locally; free text goes to the LLM.
type Grader interface {
	Grade(ctx context.Context, in Input) (Result, error)
}

type grader struct {
	provider llm.Provider
}

func New(provider llm.Provider) Grader {
	return &grader{provider: provider}
}

func (g *grader) Grade(ctx context.Context, in Input) (Result, error) {
	switch in.QuestionType {
	case question.TypeMultipleChoice:
		return g.gradeMultipleChoice(in)
	case question.TypeFreeText:
		return g.gradeFreeText(ctx, in), nil
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedQuestionType, in.QuestionType)
	}
}

// gradeMultipleChoice is binary: exact match on the answer key scores 5,
// anything else scores 0. No partial credit, no external call.
func (g *grader) gradeMultipleChoice(in Input) (Result, error) {
	if in.MCQAnswerKey == "" {
		return Result{}, ErrMissingAnswerKey
	}

	result := Result{
		SuggestedAnswer: fmt.Sprintf("The correct option was %s.", in.MCQAnswerKey),
	}
	if in.UserAnswer == in.MCQAnswerKey {
		result.Score = MaxScore
		result.Feedback = "Correct!"
	} else {
		result.Score = 0
		result.Feedback = fmt.Sprintf("Incorrect. The correct answer was %s.", in.MCQAnswerKey)
	}
	return result, nil
}

// gradeFreeText delegates to the LLM and fails safe: a grading outage must
// degrade scoring, not block quiz-taking, so any provider failure becomes
// the zero-score default instead of an error. No retry.
func (g *grader) gradeFreeText(ctx context.Context, in Input) Result {
	log := config.WithContext(ctx)

	grading, err := g.provider.GradeAnswer(ctx, in.QuestionText, in.UserAnswer)
	if err != nil || grading == nil {
		log.WithError(err).Warn("Free-text grading degraded to default result")
		return Result{
			Score:           0,
			Feedback:        fallbackFeedback,
			SuggestedAnswer: fallbackSuggestedAnswer,
		}
	}

	return Result{
		Score:           grading.Score,
		Feedback:        grading.Feedback,
		SuggestedAnswer: grading.SuggestedAnswer,
	}
}
