package answer

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/grader"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
)

type Submission struct {
	QuestionID   uuid.UUID
	QuestionText string
	QuestionType question.QuestionType
	UserAnswer   string
	MCQAnswerKey string

	UserID                            uuid.UUID
	QuizAttemptID                     uuid.UUID
	AnsweredQuestionIndex             int
	CurrentTotalScoreBeforeThisAnswer int
}

type AnswerService interface {
	Submit(ctx context.Context, sub Submission) (*grader.Result, error)
}

type answerService struct {
	repo     AnswerRepository
	grader   grader.Grader
	attempts attempt.AttemptService
}

func NewService(repo AnswerRepository, g grader.Grader, attempts attempt.AttemptService) AnswerService {
	return &answerService{
		repo:     repo,
		grader:   g,
		attempts: attempts,
	}
}

// Submit grades the answer, appends it to the audit log, then advances the
// attempt cursor and running score. The answer row is written before the
// progress update: even when the progress CAS rejects a stale submission,
// the graded answer stays recorded.
func (s *answerService) Submit(ctx context.Context, sub Submission) (*grader.Result, error) {
	log := config.WithContext(ctx)

	result, err := s.grader.Grade(ctx, grader.Input{
		QuestionText: sub.QuestionText,
		QuestionType: sub.QuestionType,
		UserAnswer:   sub.UserAnswer,
		MCQAnswerKey: sub.MCQAnswerKey,
	})
	if err != nil {
		return nil, err
	}

	attemptID := sub.QuizAttemptID
	record := Answer{
		ID:              uuid.New(),
		UserID:          sub.UserID,
		QuestionID:      sub.QuestionID,
		QuizAttemptID:   &attemptID,
		UserAnswer:      sub.UserAnswer,
		Score:           result.Score,
		Feedback:        result.Feedback,
		SuggestedAnswer: result.SuggestedAnswer,
	}
	if err := s.repo.Create(&record); err != nil {
		log.WithError(err).Error("Failed to store answer")
		return nil, err
	}

	nextIndex := sub.AnsweredQuestionIndex + 1
	newScore := sub.CurrentTotalScoreBeforeThisAnswer + result.Score
	if err := s.attempts.RecordProgress(ctx, sub.QuizAttemptID, nextIndex, newScore); err != nil {
		return nil, err
	}

	return &result, nil
}
