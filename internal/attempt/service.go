package attempt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"gorm.io/gorm"
)

var (
	ErrAttemptNotFound = errors.New("quiz attempt not found")
	ErrTopicNotFound   = errors.New("topic not found")
	// ErrProgressConflict means the caller's view of the cursor is stale:
	// another submission already advanced the attempt.
	ErrProgressConflict = errors.New("progress update conflicts with current attempt state")
)

type AttemptService interface {
	GetActiveAttempt(ctx context.Context, userID, topicID uuid.UUID) (*QuizAttempt, error)
	StartAttempt(ctx context.Context, userID, topicID uuid.UUID) (*StartAttemptResponse, error)
	RecordProgress(ctx context.Context, attemptID uuid.UUID, nextQuestionIndex, newScore int) error
	AbandonAttempt(ctx context.Context, attemptID uuid.UUID) error
}

type attemptService struct {
	repo      AttemptRepository
	topicRepo topic.TopicRepository
}

func NewService(repo AttemptRepository, topicRepo topic.TopicRepository) AttemptService {
	return &attemptService{
		repo:      repo,
		topicRepo: topicRepo,
	}
}

// GetActiveAttempt returns the attempt to resume, or nil when the user has
// none for this topic. Absence is an expected outcome, not an error.
func (s *attemptService) GetActiveAttempt(ctx context.Context, userID, topicID uuid.UUID) (*QuizAttempt, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindActive(userID, topicID)
	if err != nil {
		log.WithError(err).Error("Failed to look up active quiz attempt")
		return nil, err
	}
	return a, nil
}

// StartAttempt creates a new in-progress attempt with the approved-question
// count frozen into it. Count and insert share one transaction so the
// snapshot cannot race with the pool shrinking in between.
//
// The partial unique index on active attempts closes the check-then-insert
// race: when a concurrent start wins, the insert fails with a unique
// violation and the pre-existing attempt is returned instead of a duplicate.
func (s *attemptService) StartAttempt(ctx context.Context, userID, topicID uuid.UUID) (*StartAttemptResponse, error) {
	log := config.WithContext(ctx)

	t, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		log.WithError(err).Error("Failed to look up topic for quiz start")
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	created := QuizAttempt{
		ID:      uuid.New(),
		UserID:  userID,
		TopicID: topicID,
		Status:  StatusInProgress,
	}

	if err := s.repo.CreateWithSnapshot(&created); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, findErr := s.repo.FindActive(userID, topicID)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				log.Infof("Concurrent start collapsed to existing attempt %s", existing.ID)
				return &StartAttemptResponse{
					QuizAttemptID:           existing.ID,
					TotalQuestionsInAttempt: existing.TotalQuestionsInAttempt,
				}, nil
			}
			// The winner finished between our insert and the lookup; the
			// caller can simply retry.
		}
		log.WithError(err).Error("Failed to start quiz attempt")
		return nil, fmt.Errorf("failed to start quiz attempt: %w", err)
	}

	log.Infof("Started quiz attempt %s with %d questions", created.ID, created.TotalQuestionsInAttempt)
	return &StartAttemptResponse{
		QuizAttemptID:           created.ID,
		TotalQuestionsInAttempt: created.TotalQuestionsInAttempt,
	}, nil
}

// RecordProgress advances the cursor and running score. The update only
// applies when nextQuestionIndex is exactly one past the stored cursor;
// out-of-order or duplicate submissions get ErrProgressConflict instead of
// silently losing an update. Reaching the frozen snapshot count completes
// the attempt, which also frees the active-attempt slot for the pair.
func (s *attemptService) RecordProgress(ctx context.Context, attemptID uuid.UUID, nextQuestionIndex, newScore int) error {
	log := config.WithContext(ctx)

	if nextQuestionIndex <= 0 {
		return ErrProgressConflict
	}

	a, err := s.repo.FindByID(attemptID)
	if err != nil {
		log.WithError(err).Error("Failed to load attempt for progress update")
		return err
	}
	if a == nil {
		return ErrAttemptNotFound
	}

	complete := a.TotalQuestionsInAttempt > 0 && nextQuestionIndex >= a.TotalQuestionsInAttempt

	rows, err := s.repo.UpdateProgress(attemptID, nextQuestionIndex-1, nextQuestionIndex, newScore, complete)
	if err != nil {
		log.WithError(err).Error("Failed to update attempt progress")
		return err
	}
	if rows == 0 {
		log.Warnf("Rejected out-of-order progress update for attempt %s (next index %d)",
			attemptID, nextQuestionIndex)
		return ErrProgressConflict
	}

	if complete {
		log.Infof("Attempt %s completed with score %d", attemptID, newScore)
	}
	return nil
}

func (s *attemptService) AbandonAttempt(ctx context.Context, attemptID uuid.UUID) error {
	log := config.WithContext(ctx)

	rows, err := s.repo.Abandon(attemptID)
	if err != nil {
		log.WithError(err).Error("Failed to abandon attempt")
		return err
	}
	if rows == 0 {
		return ErrAttemptNotFound
	}
	return nil
}
