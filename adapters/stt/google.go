package stt

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/entities"
	"github.com/voicebridge/server/domain/repositories"
)

// GoogleSpeechToText implements SpeechToText using Google Cloud synchronous
// recognition. The primary language is English with the rest of the
// supported set offered as alternatives, so the service reports which one
// it actually heard.
type GoogleSpeechToText struct {
	primaryLanguage      string
	alternativeLanguages []string
	logger               *zap.Logger
}

var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a Google Cloud transcriber. Credentials are
// resolved by the client library (GOOGLE_APPLICATION_CREDENTIALS).
func NewGoogleSpeechToText(logger *zap.Logger) *GoogleSpeechToText {
	return &GoogleSpeechToText{
		primaryLanguage:      "en-US",
		alternativeLanguages: []string{"it-IT", "es-ES", "fr-FR", "de-DE"},
		logger:               logger,
	}
}

// Transcribe runs a one-shot recognition over the buffered upload and
// returns the transcript with the detected language, region tag stripped.
func (g *GoogleSpeechToText) Transcribe(ctx context.Context, in *entities.AudioInput) (*repositories.Transcription, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	defer client.Close()

	encoding, err := audioEncoding(in.ContentType)
	if err != nil {
		return nil, err
	}

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                 encoding,
			LanguageCode:             g.primaryLanguage,
			AlternativeLanguageCodes: g.alternativeLanguages,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: in.Data},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google recognition failed: %w", err)
	}

	var transcript strings.Builder
	language := ""
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if transcript.Len() > 0 {
			transcript.WriteByte(' ')
		}
		transcript.WriteString(result.Alternatives[0].Transcript)
		if language == "" {
			language = result.LanguageCode
		}
	}
	if transcript.Len() == 0 {
		return nil, fmt.Errorf("no speech detected in audio")
	}

	// "en-US" -> "en"; the registry only knows bare ISO codes.
	if i := strings.IndexByte(language, '-'); i > 0 {
		language = language[:i]
	}

	g.logger.Info("Google transcription received",
		zap.String("language", language),
		zap.Int("results", len(resp.Results)))

	return &repositories.Transcription{
		Text:     transcript.String(),
		Language: language,
	}, nil
}

// audioEncoding maps a declared content type to the recognition encoding.
// Formats the sync API cannot take are rejected up front.
func audioEncoding(contentType string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch strings.ToLower(contentType) {
	case "audio/wav", "audio/x-wav", "audio/l16":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "audio/flac", "audio/x-flac":
		return speechpb.RecognitionConfig_FLAC, nil
	case "audio/ogg":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED,
			fmt.Errorf("content type not supported by the google transcriber: %s", contentType)
	}
}
