// Package translator provides text translation adapters backed by chat
// model providers.
package translator

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

const defaultChatModel = openai.GPT4oMini

// defaultBudgetFactor caps translation output at a multiple of the input
// length. A cost/safety cap, not a correctness guarantee; oversized output
// is still caught by the quality gate downstream.
const defaultBudgetFactor = 3

// translationSystemPrompt instructs the model to return the translation
// only, preserving tone, with no added content.
const translationSystemPrompt = `You are a professional translator. Translate from %s to %s.

RULES:
1. Translate ONLY the provided text
2. No explanations or commentary
3. No added content
4. Preserve tone and style
5. Provide ONLY the translation`

// OpenAITranslator implements Translator using OpenAI chat completions.
type OpenAITranslator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.Translator = (*OpenAITranslator)(nil)

// NewOpenAITranslator creates a chat-completion translator. The API key
// comes from OPENAI_API_KEY; OPENAI_TRANSLATION_MODEL overrides the model.
func NewOpenAITranslator(logger *zap.Logger) (*OpenAITranslator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	model := os.Getenv("OPENAI_TRANSLATION_MODEL")
	if model == "" {
		model = defaultChatModel
	}

	return &OpenAITranslator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}, nil
}

// Translate implements repositories.Translator
func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceName, targetName string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(translationSystemPrompt, sourceName, targetName),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.3,
		MaxTokens:   len(text) * defaultBudgetFactor,
	})
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translation returned no choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	t.logger.Info("Translation received",
		zap.String("model", t.model),
		zap.Int("chars", len(translated)))

	return translated, nil
}
