package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestValidateElevenLabsConfig(t *testing.T) {
	if err := ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key"}); err != nil {
		t.Errorf("Expected minimal config to validate, got %v", err)
	}

	if err := ValidateElevenLabsConfig(ElevenLabsConfig{}); err == nil {
		t.Error("Expected error for missing API key")
	}

	if err := ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key", Stability: 1.5}); err == nil {
		t.Error("Expected error for stability out of range")
	}

	if err := ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key", Clarity: -0.1}); err == nil {
		t.Error("Expected error for clarity out of range")
	}
}

func TestNewElevenLabsTTSDefaults(t *testing.T) {
	e, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "key"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if e.voiceID != defaultVoiceID {
		t.Errorf("Expected default voice, got %q", e.voiceID)
	}
	if e.modelID != defaultModelID {
		t.Errorf("Expected default model, got %q", e.modelID)
	}
	if e.outputFormat != defaultOutputFormat {
		t.Errorf("Expected default output format, got %q", e.outputFormat)
	}
	if e.stability != defaultStability || e.clarity != defaultClarity {
		t.Errorf("Expected default voice settings, got stability=%f clarity=%f",
			e.stability, e.clarity)
	}
}

func TestNewElevenLabsConfigFromEnv(t *testing.T) {
	t.Setenv("ELEVEN_LABS_API_KEY", "env-key")
	t.Setenv("ELEVEN_LABS_VOICE_ID", "voice-123")
	t.Setenv("ELEVEN_LABS_STABILITY", "0.8")
	t.Setenv("ELEVEN_LABS_CLARITY", "not-a-number")

	cfg := NewElevenLabsConfigFromEnv()
	if cfg.APIKey != "env-key" || cfg.VoiceID != "voice-123" {
		t.Errorf("Env values not picked up: %+v", cfg)
	}
	if cfg.Stability != 0.8 {
		t.Errorf("Expected stability 0.8, got %f", cfg.Stability)
	}
	// Malformed floats are ignored, leaving the zero value.
	if cfg.Clarity != 0 {
		t.Errorf("Expected malformed clarity to be ignored, got %f", cfg.Clarity)
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	e, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "key"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, text := range []string{"", "   "} {
		if _, err := e.Synthesize(context.Background(), text); err == nil {
			t.Errorf("Synthesize(%q): expected error for empty text", text)
		}
	}
}

func TestSynthesizeRequest(t *testing.T) {
	audio := []byte("fake-mp3-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if !strings.HasPrefix(r.URL.Path, "/text-to-speech/") {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("output_format") != defaultOutputFormat {
			t.Errorf("Unexpected output_format %q", r.URL.Query().Get("output_format"))
		}
		if r.Header.Get("xi-api-key") != "key" {
			t.Error("Expected API key header")
		}

		var req elevenLabsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		if req.Text != "Ciao, come stai?" {
			t.Errorf("Unexpected text %q", req.Text)
		}
		if req.ModelID != defaultModelID {
			t.Errorf("Unexpected model %q", req.ModelID)
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	defer server.Close()

	e, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "key", APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := e.Synthesize(context.Background(), "Ciao, come stai?")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(got) != string(audio) {
		t.Errorf("Expected audio payload back, got %d bytes", len(got))
	}
}

func TestSynthesizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer server.Close()

	e, err := NewElevenLabsTTS(ElevenLabsConfig{APIKey: "bad", APIBaseURL: server.URL}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, err = e.Synthesize(context.Background(), "some text")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("Expected API error with status code, got %v", err)
	}
}
