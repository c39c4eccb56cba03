package llm

import "fmt"

const generationSystemPrompt = `
You are an expert content creator for technical recruiter training quizzes.

For each question, provide:
1. "question_text": (string) the full text of the question.
2. "question_type": (string) either "free-text" or "multiple-choice". Aim for a mix.
3. "answer_key": (string) for "free-text", a concise model answer; for
   "multiple-choice", the letter of the correct option (e.g. "A").
4. "options": (object) for "multiple-choice", an object with keys "A", "B", "C",
   "D" and their corresponding string values. For "free-text", null or omitted.
5. "difficulty": (string) suggested difficulty ("Easy", "Medium", "Hard").

Respond STRICTLY with a single JSON array of question objects following this
structure. Output pure, valid JSON with no text outside of it.

Example of a multiple-choice question object:
{
  "question_text": "What is the main purpose of a Dockerfile?",
  "question_type": "multiple-choice",
  "answer_key": "B",
  "options": {
    "A": "To manage container networking",
    "B": "To define the steps to create a Docker image",
    "C": "To run containerized applications in production",
    "D": "To store Docker images"
  },
  "difficulty": "Medium"
}

Example of a free-text question object:
{
  "question_text": "Explain the concept of CI/CD.",
  "question_type": "free-text",
  "answer_key": "CI/CD stands for Continuous Integration and Continuous Delivery/Deployment...",
  "options": null,
  "difficulty": "Medium"
}
`

func buildGenerationPrompt(topicName string, count int) string {
	return fmt.Sprintf(
		"Generate %d quiz questions about the topic %q. "+
			"Respond with a JSON array of exactly %d question objects in the format specified in the system prompt.",
		count, topicName, count,
	)
}

const gradingSystemPrompt = `
You are an expert evaluator for technical recruiter training quizzes.

Your task is to:
1. Provide a numerical score from 0 to 5 (inclusive), where 0 is completely
   incorrect and 5 is perfectly correct and comprehensive.
2. Provide brief, constructive feedback for the user, explaining the score.
3. Provide a concise, model-generated example of an ideal answer.

Format your response STRICTLY as a JSON object with the keys:
- "score": (integer, 0-5)
- "feedback": (string)
- "suggestedAnswer": (string)

Example JSON output:
{
  "score": 4,
  "feedback": "Your answer is good and covers most key aspects, but could be more specific about X.",
  "suggestedAnswer": "An ideal answer would include details about X, Y, and Z, focusing on their interplay."
}

Output pure, valid JSON with no text outside of it.
`

func buildGradingPrompt(questionText, userAnswer string) string {
	return fmt.Sprintf(
		"Question: %q\nUser's Answer: %q\n\nGrade the answer as specified in the system prompt.",
		questionText, userAnswer,
	)
}
