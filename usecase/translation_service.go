package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voicebridge/server/domain/entities"
	"github.com/voicebridge/server/domain/repositories"
	"github.com/voicebridge/server/internal/retry"
	"github.com/voicebridge/server/internal/validation"
)

// genericFailureMessage is returned for anything the pipeline cannot
// classify. Internal detail must not leak to the caller.
const genericFailureMessage = "Unexpected error. Please try again."

// TranslationService orchestrates one speech translation: validate the
// upload, transcribe, gate the transcript, resolve the language pair,
// translate, run the hallucination gate, synthesize. Stages are strictly
// linear; each remote call is wrapped in the uniform retry policy, and a
// retried-and-recovered call is indistinguishable from a first-try success
// here. Invocations share no mutable state, so a single service instance
// serves concurrent callers without locking.
type TranslationService struct {
	speechToText repositories.SpeechToText
	translator   repositories.Translator
	textToSpeech repositories.TextToSpeech
	outcomes     repositories.OutcomeRepository // optional, best-effort trace
	logger       *zap.Logger
}

// NewTranslationService creates a new translation pipeline. outcomes may be
// nil to disable invocation tracing.
func NewTranslationService(
	stt repositories.SpeechToText,
	translator repositories.Translator,
	tts repositories.TextToSpeech,
	outcomes repositories.OutcomeRepository,
	logger *zap.Logger,
) *TranslationService {
	return &TranslationService{
		speechToText: stt,
		translator:   translator,
		textToSpeech: tts,
		outcomes:     outcomes,
		logger:       logger,
	}
}

// Translate runs one end-to-end pipeline invocation. It never returns an
// error: every failure is folded into the outcome so the caller always gets
// a single diagnosable result. Panics are caught at this boundary and
// converted to an opaque failure.
func (s *TranslationService) Translate(ctx context.Context, in *entities.AudioInput, cfg entities.PipelineConfig) (out *entities.TranslationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Pipeline panic recovered", zap.Any("panic", r))
			out = &entities.TranslationOutcome{ErrorMessage: genericFailureMessage}
		}
		s.record(in, out)
	}()

	s.logger.Info("Processing translation request",
		zap.String("filename", filenameOf(in)),
		zap.Int("bytes", in.Size()))

	// Stage 1: validate the upload.
	if err := validation.NewAudioValidator(cfg).Validate(in); err != nil {
		s.logger.Error("Audio validation failed", zap.Error(err))
		return &entities.TranslationOutcome{ErrorMessage: err.Error()}
	}

	policy := retry.Policy{
		MaxAttempts:    cfg.MaxAttempts,
		BackoffFloor:   cfg.BackoffFloor,
		BackoffCeiling: cfg.BackoffCeiling,
		IsRetryable:    retry.Transient,
	}

	// Stage 2: transcription.
	transcription, err := retry.Do(ctx, s.logger, "transcribe", policy,
		func(ctx context.Context) (*repositories.Transcription, error) {
			return s.speechToText.Transcribe(ctx, in)
		})
	if err != nil {
		return s.failRemote("transcription", err)
	}

	originalText := strings.TrimSpace(transcription.Text)

	// Normalize the raw provider label. Unresolved labels default to
	// English by policy and the pipeline proceeds; this is not a failure.
	detected := entities.English.Code
	if lang, ok := entities.ParseLanguage(transcription.Language); ok {
		detected = lang.Code
	} else {
		s.logger.Warn("Unknown detected language, defaulting to English",
			zap.String("label", transcription.Language))
	}

	s.logger.Info("Transcription completed",
		zap.String("detectedLanguage", detected),
		zap.Int("length", len(originalText)))

	// Stage 3: transcript length gate. The user should speak again.
	if err := validation.ValidateTextLength(originalText, cfg); err != nil {
		return &entities.TranslationOutcome{
			ErrorMessage:     fmt.Sprintf("%s. Please speak clearly.", err),
			DetectedLanguage: detected,
			OriginalText:     originalText,
			RequiresRetry:    true,
		}
	}

	// Stage 4: supported-language gate. Unreachable while the
	// default-to-English policy stands; kept as a guard should that
	// policy change.
	if err := validation.ValidateLanguage(detected, nil, cfg); err != nil {
		return &entities.TranslationOutcome{
			ErrorMessage:     fmt.Sprintf("%s. Supported: English, Italian.", err),
			DetectedLanguage: detected,
			OriginalText:     originalText,
			RequiresRetry:    true,
		}
	}

	// Stage 5: resolve the language pair.
	source, _ := entities.ParseLanguage(detected)
	target, paired := entities.TargetFor(detected)
	if !paired {
		s.logger.Warn("No language pair configured, using default target",
			zap.String("source", detected),
			zap.String("target", target.Name))
	}

	s.logger.Info("Translating",
		zap.String("source", source.Code),
		zap.String("target", target.Code))

	// Stage 6: translation.
	translatedText, err := retry.Do(ctx, s.logger, "translate", policy,
		func(ctx context.Context) (string, error) {
			return s.translator.Translate(ctx, originalText, source.Name, target.Name)
		})
	if err != nil {
		return s.failRemote("translation", err)
	}

	s.logger.Info("Translation complete", zap.Int("chars", len(translatedText)))

	// Stage 7: hallucination gate.
	if suspect, reason := validation.CheckHallucination(originalText, translatedText, detected, cfg); suspect {
		s.logger.Warn("Hallucination detected", zap.String("reason", reason))
		return &entities.TranslationOutcome{
			ErrorMessage:          fmt.Sprintf("Quality issue: %s. Try again.", reason),
			OriginalText:          originalText,
			TranslatedText:        translatedText,
			DetectedLanguage:      detected,
			TargetLanguage:        target.Name,
			RequiresRetry:         true,
			HallucinationDetected: true,
		}
	}

	// Stage 8: speech synthesis.
	audioBytes, err := retry.Do(ctx, s.logger, "synthesize", policy,
		func(ctx context.Context) ([]byte, error) {
			return s.textToSpeech.Synthesize(ctx, translatedText)
		})
	if err != nil {
		return s.failRemote("speech synthesis", err)
	}

	s.logger.Info("Translation pipeline complete", zap.Int("audioBytes", len(audioBytes)))

	return &entities.TranslationOutcome{
		Success:          true,
		AudioBytes:       audioBytes,
		OriginalText:     originalText,
		TranslatedText:   translatedText,
		DetectedLanguage: detected,
		TargetLanguage:   target.Name,
	}
}

// failRemote maps a remote-call error to an outcome. Exhausted retries and
// anything unclassified both hide internal detail; neither is resubmittable
// by the end user.
func (s *TranslationService) failRemote(stage string, err error) *entities.TranslationOutcome {
	var svcErr *retry.ServiceError
	if errors.As(err, &svcErr) {
		s.logger.Error("Remote service exhausted retries",
			zap.String("stage", stage),
			zap.Error(err))
		return &entities.TranslationOutcome{
			ErrorMessage: fmt.Sprintf("Service error: %s is temporarily unavailable", stage),
		}
	}

	s.logger.Error("Unclassified pipeline error",
		zap.String("stage", stage),
		zap.Error(err))
	return &entities.TranslationOutcome{ErrorMessage: genericFailureMessage}
}

// record writes a best-effort invocation trace. It runs after Done and
// never influences the outcome.
func (s *TranslationService) record(in *entities.AudioInput, out *entities.TranslationOutcome) {
	if s.outcomes == nil || out == nil {
		return
	}

	rec := &entities.OutcomeRecord{
		RequestID:             uuid.NewString(),
		Success:               out.Success,
		OriginalText:          out.OriginalText,
		TranslatedText:        out.TranslatedText,
		DetectedLanguage:      out.DetectedLanguage,
		TargetLanguage:        out.TargetLanguage,
		ErrorMessage:          out.ErrorMessage,
		RequiresRetry:         out.RequiresRetry,
		HallucinationDetected: out.HallucinationDetected,
		CreatedAt:             time.Now(),
	}
	if in != nil {
		rec.ContentHash = validation.ContentHash(in.Data)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.outcomes.Record(ctx, rec); err != nil {
			s.logger.Warn("Failed to record translation outcome", zap.Error(err))
		}
	}()
}

func filenameOf(in *entities.AudioInput) string {
	if in == nil {
		return ""
	}
	return in.Filename
}
