package llm

// GeneratedQuestion is one item of the generation response. The field names
// mirror the JSON contract the prompt demands from the model.
type GeneratedQuestion struct {
	QuestionText string            `json:"question_text"`
	QuestionType string            `json:"question_type"`
	AnswerKey    string            `json:"answer_key"`
	Options      map[string]string `json:"options,omitempty"`
	Difficulty   string            `json:"difficulty,omitempty"`
}

type GradingResult struct {
	Score           int    `json:"score"`
	Feedback        string `json:"feedback"`
	SuggestedAnswer string `json:"suggestedAnswer"`
}
