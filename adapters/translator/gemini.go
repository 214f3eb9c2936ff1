package translator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/voicebridge/server/domain/repositories"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator implements Translator using Google's Gemini API.
type GeminiTranslator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

var _ repositories.Translator = (*GeminiTranslator)(nil)

// NewGeminiTranslator creates a Gemini-backed translator. The API key comes
// from GEMINI_API_KEY; GEMINI_TRANSLATION_MODEL overrides the model.
func NewGeminiTranslator(logger *zap.Logger) (*GeminiTranslator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_TRANSLATION_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiTranslator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Translate implements repositories.Translator
func (t *GeminiTranslator) Translate(ctx context.Context, text, sourceName, targetName string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.3)),
		MaxOutputTokens: int32(len(text) * defaultBudgetFactor),
		SystemInstruction: genai.NewContentFromText(
			fmt.Sprintf(translationSystemPrompt, sourceName, targetName), genai.RoleUser),
	}
	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini translation failed: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("gemini returned an empty translation")
	}

	t.logger.Info("Translation received",
		zap.String("model", t.model),
		zap.Int("chars", len(translated)))

	return translated, nil
}
