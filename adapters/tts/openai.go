// Package tts provides speech synthesis adapters.
package tts

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/repositories"
)

const (
	defaultSpeechModel = openai.TTSModel1
	defaultSpeechVoice = openai.VoiceAlloy
)

// OpenAITextToSpeech implements TextToSpeech using the OpenAI speech API.
type OpenAITextToSpeech struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
	logger *zap.Logger
}

var _ repositories.TextToSpeech = (*OpenAITextToSpeech)(nil)

// NewOpenAITextToSpeech creates an OpenAI synthesizer. The API key comes
// from OPENAI_API_KEY; OPENAI_TTS_MODEL and OPENAI_TTS_VOICE override the
// defaults (tts-1, alloy).
func NewOpenAITextToSpeech(logger *zap.Logger) (*OpenAITextToSpeech, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	model := openai.SpeechModel(os.Getenv("OPENAI_TTS_MODEL"))
	if model == "" {
		model = defaultSpeechModel
	}
	voice := openai.SpeechVoice(os.Getenv("OPENAI_TTS_VOICE"))
	if voice == "" {
		voice = defaultSpeechVoice
	}

	return &OpenAITextToSpeech{
		client: openai.NewClient(apiKey),
		model:  model,
		voice:  voice,
		logger: logger,
	}, nil
}

// Synthesize implements repositories.TextToSpeech
func (t *OpenAITextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	resp, err := t.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: t.model,
		Voice: t.voice,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}

	t.logger.Info("Speech synthesis complete",
		zap.String("voice", string(t.voice)),
		zap.Int("bytes", len(audio)))

	return audio, nil
}
