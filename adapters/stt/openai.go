package stt

import (
	"bytes"
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/entities"
	"github.com/voicebridge/server/domain/repositories"
)

const defaultWhisperModel = openai.Whisper1

// OpenAISpeechToText implements SpeechToText using the OpenAI Whisper API.
type OpenAISpeechToText struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Ensure OpenAISpeechToText implements the SpeechToText interface
var _ repositories.SpeechToText = (*OpenAISpeechToText)(nil)

// NewOpenAISpeechToText creates a Whisper-backed transcriber. The API key
// comes from OPENAI_API_KEY; OPENAI_WHISPER_MODEL overrides the model.
func NewOpenAISpeechToText(logger *zap.Logger) (*OpenAISpeechToText, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	model := os.Getenv("OPENAI_WHISPER_MODEL")
	if model == "" {
		model = defaultWhisperModel
	}

	return &OpenAISpeechToText{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}, nil
}

// Transcribe sends the buffered upload to Whisper. The verbose response
// format carries the detected-language label alongside the transcript.
func (o *OpenAISpeechToText) Transcribe(ctx context.Context, in *entities.AudioInput) (*repositories.Transcription, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: in.Filename,
		Reader:   bytes.NewReader(in.Data),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("whisper transcription failed: %w", err)
	}

	o.logger.Info("Whisper transcription received",
		zap.String("language", resp.Language),
		zap.Int("chars", len(resp.Text)))

	return &repositories.Transcription{
		Text:     resp.Text,
		Language: resp.Language,
	}, nil
}
