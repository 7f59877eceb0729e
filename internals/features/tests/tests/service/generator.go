// internals/features/tests/tests/service/generator.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// GeneratedQuestion is one multiple-choice question as the model emits it.
// The JSON keys match the shape the prompt demands.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionGenerator produces a fresh batch of questions for a subject.
// Handlers depend on this interface so tests can swap in a stub.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, subjectTitle string) ([]GeneratedQuestion, error)
}

// GeminiGenerator calls the Gemini API once per request. No retry, no
// fallback question bank: a failed call surfaces as a generation error.
type GeminiGenerator struct {
	APIKey string
}

func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	return &GeminiGenerator{APIKey: apiKey}
}

func buildPrompt(subjectTitle string) string {
	return fmt.Sprintf(`
Generate exactly 5 multiple-choice questions on the topic "%s", it should not include same question when i ask again, every time all 5 questions should be diffent from past ones.
Each question must follow this JSON format:
[
  {
    "question": "What is ...?",
    "options": ["A", "B", "C", "D"],
    "correctAnswer": "A"
  }
]
Only return the raw JSON array — no extra text, explanation, or markdown.`, subjectTitle)
}

func (g *GeminiGenerator) GenerateQuestions(ctx context.Context, subjectTitle string) ([]GeneratedQuestion, error) {
	if g.APIKey == "" {
		return nil, errors.New("missing Gemini API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(buildPrompt(subjectTitle)), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini call: %w", err)
	}

	return ParseGeneratedQuestions(resp.Text())
}

// ParseGeneratedQuestions strips markdown code fences from the raw model
// output and decodes it as a JSON array of questions.
func ParseGeneratedQuestions(raw string) ([]GeneratedQuestion, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("response is not a valid array: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("response is not a valid array: empty")
	}
	return questions, nil
}
