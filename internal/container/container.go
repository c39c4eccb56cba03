package container

import (
	"context"
	"log"
	"os"

	"github.com/quizmentor/quizmentor-lambda/internal/answer"
	"github.com/quizmentor/quizmentor-lambda/internal/attempt"
	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/grader"
	"github.com/quizmentor/quizmentor-lambda/internal/llm"
	"github.com/quizmentor/quizmentor-lambda/internal/question"
	"github.com/quizmentor/quizmentor-lambda/internal/topic"
	"github.com/quizmentor/quizmentor-lambda/internal/user"
)

type Container struct {
	TopicContainer    *topic.TopicContainer
	QuestionContainer *question.QuestionContainer
	AttemptContainer  *attempt.AttemptContainer
	AnswerContainer   *answer.AnswerContainer
}

func New() *Container {
	config.Init()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := migrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	provider, err := llm.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	topicContainer := topic.NewTopicContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB, topicContainer.Repo, provider)
	attemptContainer := attempt.NewAttemptContainer(config.DB, topicContainer.Repo)
	answerContainer := answer.NewAnswerContainer(config.DB, grader.New(provider), attemptContainer.Service)

	return &Container{
		TopicContainer:    topicContainer,
		QuestionContainer: questionContainer,
		AttemptContainer:  attemptContainer,
		AnswerContainer:   answerContainer,
	}
}

func migrate() error {
	if err := config.DB.AutoMigrate(
		&user.User{},
		&topic.Topic{},
		&question.Question{},
		&attempt.QuizAttempt{},
		&answer.Answer{},
	); err != nil {
		return err
	}

	if err := attempt.EnsureActiveIndex(config.DB); err != nil {
		return err
	}

	if err := topic.NewRepository(config.DB).Seed(); err != nil {
		return err
	}
	if _, err := user.NewRepository(config.DB).EnsureDefault(); err != nil {
		return err
	}
	return nil
}
