package question

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/llm"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"gorm.io/datatypes"
)

// Questions answered in this window are excluded from selection so the user
// does not see the same question twice in a day.
const answeredExclusionWindow = 24 * time.Hour

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrTopicNotFound    = errors.New("topic not found")
)

type QuestionService interface {
	SelectQuestions(ctx context.Context, topicID, userID uuid.UUID) ([]Question, error)
	GenerateQuestions(ctx context.Context, topicID uuid.UUID, count int) ([]Question, error)
	ListByStatus(ctx context.Context, status QuestionStatus, topicID *uuid.UUID) ([]QuestionWithTopic, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	MakePending(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
}

type questionService struct {
	repo      QuestionRepository
	topicRepo topic.TopicRepository
	provider  llm.Provider
}

func NewService(repo QuestionRepository, topicRepo topic.TopicRepository, provider llm.Provider) QuestionService {
	return &questionService{
		repo:      repo,
		topicRepo: topicRepo,
		provider:  provider,
	}
}

// SelectQuestions returns every question eligible for a quiz run: approved,
// and not answered by this user within the trailing 24 hours. An empty
// result is a valid terminal state, not an error.
func (s *questionService) SelectQuestions(ctx context.Context, topicID, userID uuid.UUID) ([]Question, error) {
	log := config.WithContext(ctx)

	cutoff := time.Now().Add(-answeredExclusionWindow)
	questions, err := s.repo.FindEligible(topicID, userID, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to select eligible questions")
		return nil, err
	}
	return questions, nil
}

// GenerateQuestions asks the LLM for a batch and stores every valid item as
// pending. A provider failure degrades to an empty batch: generation is an
// admin convenience and must not take the service down with it.
func (s *questionService) GenerateQuestions(ctx context.Context, topicID uuid.UUID, count int) ([]Question, error) {
	log := config.WithContext(ctx)

	t, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		log.WithError(err).Error("Failed to look up topic for generation")
		return nil, err
	}
	if t == nil {
		return nil, ErrTopicNotFound
	}

	generated, err := s.provider.GenerateQuestions(ctx, t.Name, count)
	if err != nil {
		log.WithError(err).Warn("LLM generation failed, returning empty batch")
		return []Question{}, nil
	}

	stored := make([]Question, 0, len(generated))
	for _, g := range generated {
		q := Question{
			ID:           uuid.New(),
			TopicID:      topicID,
			QuestionText: g.QuestionText,
			QuestionType: QuestionType(g.QuestionType),
			AnswerKey:    g.AnswerKey,
			Difficulty:   g.Difficulty,
			Status:       StatusPending,
		}
		if len(g.Options) > 0 {
			options := make(datatypes.JSONMap, len(g.Options))
			for letter, text := range g.Options {
				options[letter] = text
			}
			q.Options = options
		}

		if err := s.repo.Create(&q); err != nil {
			log.WithError(err).Warn("Skipping generated question that could not be stored")
			continue
		}
		stored = append(stored, q)
	}

	log.Infof("Stored %d generated questions as pending for topic %q", len(stored), t.Name)
	return stored, nil
}

func (s *questionService) ListByStatus(ctx context.Context, status QuestionStatus, topicID *uuid.UUID) ([]QuestionWithTopic, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.ListByStatus(status, topicID)
	if err != nil {
		log.WithError(err).Errorf("Failed to list %s questions", status)
		return nil, err
	}

	items := make([]QuestionWithTopic, 0, len(questions))
	for _, q := range questions {
		items = append(items, QuestionWithTopic{
			Question:  q,
			TopicName: q.Topic.Name,
		})
	}
	return items, nil
}

func (s *questionService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusApproved)
}

func (s *questionService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusDeactivated)
}

func (s *questionService) MakePending(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, StatusPending)
}

func (s *questionService) transition(ctx context.Context, id uuid.UUID, status QuestionStatus) error {
	log := config.WithContext(ctx)

	rows, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		log.WithError(err).Errorf("Failed to set question %s to %s", id, status)
		return err
	}
	if rows == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Reject permanently deletes a question regardless of status. Answers that
// reference it are removed by the cascade; there is no way back.
func (s *questionService) Reject(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	rows, err := s.repo.Delete(id)
	if err != nil {
		log.WithError(err).Errorf("Failed to reject question %s", id)
		return err
	}
	if rows == 0 {
		return ErrQuestionNotFound
	}

	log.Infof("Question %s rejected and deleted", id)
	return nil
}
