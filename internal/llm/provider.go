package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Provider is the external LLM collaborator. Responses are non-deterministic
// and fallible; callers decide how to degrade when a call fails.
type Provider interface {
	GenerateQuestions(ctx context.Context, topicName string, count int) ([]GeneratedQuestion, error)
	GradeAnswer(ctx context.Context, questionText, userAnswer string) (*GradingResult, error)
}

type geminiProvider struct {
	client          *genai.Client
	generationModel string
	gradingModel    string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	generationModel := os.Getenv("GEMINI_GENERATION_MODEL")
	if generationModel == "" {
		generationModel = defaultModel
	}
	gradingModel := os.Getenv("GEMINI_GRADING_MODEL")
	if gradingModel == "" {
		gradingModel = defaultModel
	}

	return &geminiProvider{
		client:          client,
		generationModel: generationModel,
		gradingModel:    gradingModel,
	}, nil
}

func (p *geminiProvider) GenerateQuestions(ctx context.Context, topicName string, count int) ([]GeneratedQuestion, error) {
	log := config.WithContext(ctx)

	prompt := generationSystemPrompt + "\n\n" + buildGenerationPrompt(topicName, count)
	result, err := p.client.Models.GenerateContent(ctx, p.generationModel, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini question generation call failed")
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	raw := result.Text()
	log.Debugf("[LLM] Raw generation response:\n%s", raw)

	questions, err := decodeGeneratedQuestions(raw)
	if err != nil {
		log.WithError(err).Error("[LLM] Generation response failed validation")
		return nil, err
	}

	log.Infof("[LLM] Generated %d questions for topic %q", len(questions), topicName)
	return questions, nil
}

func (p *geminiProvider) GradeAnswer(ctx context.Context, questionText, userAnswer string) (*GradingResult, error) {
	log := config.WithContext(ctx)

	prompt := gradingSystemPrompt + "\n\n" + buildGradingPrompt(questionText, userAnswer)
	result, err := p.client.Models.GenerateContent(ctx, p.gradingModel, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini grading call failed")
		return nil, fmt.Errorf("failed to grade answer: %w", err)
	}

	raw := result.Text()
	log.Debugf("[LLM] Raw grading response:\n%s", raw)

	grading, err := decodeGradingResult(raw)
	if err != nil {
		log.WithError(err).Error("[LLM] Grading response failed validation")
		return nil, err
	}
	return grading, nil
}
