package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errEmptyResponse = errors.New("empty response from model")

// cleanModelJSON strips the markdown fences Gemini likes to wrap JSON in.
func cleanModelJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(clean, "`")
}

// decodeGeneratedQuestions parses and validates a generation response.
// The model output is untrusted: items that fail validation invalidate the
// whole batch so no half-formed question ever reaches the store.
func decodeGeneratedQuestions(raw string) ([]GeneratedQuestion, error) {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return nil, errEmptyResponse
	}

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		// Some models wrap the array in {"questions": [...]}.
		var wrapped struct {
			Questions []GeneratedQuestion `json:"questions"`
		}
		if wrapErr := json.Unmarshal([]byte(clean), &wrapped); wrapErr != nil || wrapped.Questions == nil {
			return nil, fmt.Errorf("failed to decode generation response: %w", err)
		}
		questions = wrapped.Questions
	}

	for i, q := range questions {
		if err := validateGeneratedQuestion(q); err != nil {
			return nil, fmt.Errorf("generated question %d is invalid: %w", i, err)
		}
	}
	return questions, nil
}

func validateGeneratedQuestion(q GeneratedQuestion) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return errors.New("missing question_text")
	}
	if strings.TrimSpace(q.AnswerKey) == "" {
		return errors.New("missing answer_key")
	}

	switch q.QuestionType {
	case "free-text":
		return nil
	case "multiple-choice":
		if len(q.Options) == 0 {
			return errors.New("multiple-choice question has no options")
		}
		if _, ok := q.Options[q.AnswerKey]; !ok {
			return fmt.Errorf("answer_key %q is not one of the options", q.AnswerKey)
		}
		return nil
	default:
		return fmt.Errorf("unknown question_type %q", q.QuestionType)
	}
}

// decodeGradingResult parses and validates a grading response.
func decodeGradingResult(raw string) (*GradingResult, error) {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return nil, errEmptyResponse
	}

	var result GradingResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, fmt.Errorf("failed to decode grading response: %w", err)
	}
	if result.Score < 0 || result.Score > 5 {
		return nil, fmt.Errorf("grading score %d out of range", result.Score)
	}
	if strings.TrimSpace(result.Feedback) == "" {
		return nil, errors.New("grading response has no feedback")
	}
	if strings.TrimSpace(result.SuggestedAnswer) == "" {
		return nil, errors.New("grading response has no suggested answer")
	}
	return &result, nil
}
