package llm

import (
	"strings"
	"testing"
)

const validBatch = `[
  {
    "question_text": "What is a Docker image?",
    "question_type": "free-text",
    "answer_key": "A read-only template used to create containers.",
    "difficulty": "easy"
  },
  {
    "question_text": "Which command lists running containers?",
    "question_type": "multiple-choice",
    "answer_key": "A",
    "options": {"A": "docker ps", "B": "docker images", "C": "docker run"},
    "difficulty": "easy"
  }
]`

func TestDecodeGeneratedQuestions(t *testing.T) {
	t.Run("PlainArray", func(t *testing.T) {
		questions, err := decodeGeneratedQuestions(validBatch)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
		if questions[1].Options["A"] != "docker ps" {
			t.Errorf("options not decoded: %v", questions[1].Options)
		}
	})

	t.Run("MarkdownFenced", func(t *testing.T) {
		fenced := "```json\n" + validBatch + "\n```"
		questions, err := decodeGeneratedQuestions(fenced)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
	})

	t.Run("WrappedInObject", func(t *testing.T) {
		wrapped := `{"questions": ` + validBatch + `}`
		questions, err := decodeGeneratedQuestions(wrapped)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
	})

	t.Run("EmptyResponse", func(t *testing.T) {
		if _, err := decodeGeneratedQuestions("```json\n```"); err == nil {
			t.Fatal("expected error for empty response")
		}
	})

	t.Run("NotJSON", func(t *testing.T) {
		if _, err := decodeGeneratedQuestions("Sure! Here are your questions:"); err == nil {
			t.Fatal("expected error for prose response")
		}
	})

	t.Run("OneBadItemInvalidatesBatch", func(t *testing.T) {
		bad := `[
  {"question_text": "Valid?", "question_type": "free-text", "answer_key": "Yes."},
  {"question_text": "", "question_type": "free-text", "answer_key": "orphan"}
]`
		if _, err := decodeGeneratedQuestions(bad); err == nil {
			t.Fatal("expected the whole batch to be rejected")
		}
	})

	t.Run("AnswerKeyMustBeAnOption", func(t *testing.T) {
		bad := `[{
  "question_text": "Pick one.",
  "question_type": "multiple-choice",
  "answer_key": "D",
  "options": {"A": "first", "B": "second"}
}]`
		_, err := decodeGeneratedQuestions(bad)
		if err == nil {
			t.Fatal("expected rejection when answer_key is not an option")
		}
		if !strings.Contains(err.Error(), "answer_key") {
			t.Errorf("error should name the answer_key problem, got %v", err)
		}
	})

	t.Run("UnknownQuestionType", func(t *testing.T) {
		bad := `[{"question_text": "T or F?", "question_type": "true-false", "answer_key": "T"}]`
		if _, err := decodeGeneratedQuestions(bad); err == nil {
			t.Fatal("expected rejection of unknown question type")
		}
	})
}

func TestDecodeGradingResult(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		raw := `{"score": 4, "feedback": "Close, but mention layers.", "suggestedAnswer": "Images are layered read-only templates."}`
		result, err := decodeGradingResult(raw)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if result.Score != 4 {
			t.Errorf("expected score 4, got %d", result.Score)
		}
	})

	t.Run("Fenced", func(t *testing.T) {
		raw := "```json\n{\"score\": 5, \"feedback\": \"Perfect.\", \"suggestedAnswer\": \"As given.\"}\n```"
		result, err := decodeGradingResult(raw)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if result.Score != 5 {
			t.Errorf("expected score 5, got %d", result.Score)
		}
	})

	t.Run("ScoreOutOfRange", func(t *testing.T) {
		for _, raw := range []string{
			`{"score": 6, "feedback": "f", "suggestedAnswer": "s"}`,
			`{"score": -1, "feedback": "f", "suggestedAnswer": "s"}`,
		} {
			if _, err := decodeGradingResult(raw); err == nil {
				t.Errorf("expected rejection of %s", raw)
			}
		}
	})

	t.Run("MissingFeedback", func(t *testing.T) {
		raw := `{"score": 3, "feedback": "  ", "suggestedAnswer": "s"}`
		if _, err := decodeGradingResult(raw); err == nil {
			t.Fatal("expected rejection of blank feedback")
		}
	})

	t.Run("MissingSuggestedAnswer", func(t *testing.T) {
		raw := `{"score": 3, "feedback": "ok"}`
		if _, err := decodeGradingResult(raw); err == nil {
			t.Fatal("expected rejection of missing suggested answer")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := decodeGradingResult(""); err == nil {
			t.Fatal("expected error for empty response")
		}
	})
}
