package validation

import (
	"strings"
	"testing"

	"github.com/voicebridge/server/domain/entities"
)

func testInput() *entities.AudioInput {
	return &entities.AudioInput{
		Data:        []byte("fake audio content"),
		Filename:    "test.mp3",
		ContentType: "audio/mpeg",
	}
}

func TestValidateValidUpload(t *testing.T) {
	v := NewAudioValidator(entities.DefaultPipelineConfig())

	if err := v.Validate(testInput()); err != nil {
		t.Errorf("Expected valid mp3 upload, got error: %v", err)
	}

	wav := testInput()
	wav.Filename = "test.wav"
	wav.ContentType = "audio/wav"
	if err := v.Validate(wav); err != nil {
		t.Errorf("Expected valid wav upload, got error: %v", err)
	}
}

func TestValidateMissingFile(t *testing.T) {
	v := NewAudioValidator(entities.DefaultPipelineConfig())

	if err := v.Validate(nil); err == nil || !strings.Contains(err.Error(), "no audio file") {
		t.Errorf("Expected missing-file error, got %v", err)
	}

	in := testInput()
	in.Filename = ""
	if err := v.Validate(in); err == nil {
		t.Error("Expected error for empty filename")
	}
}

func TestValidateUnsupportedContentType(t *testing.T) {
	v := NewAudioValidator(entities.DefaultPipelineConfig())

	in := testInput()
	in.ContentType = "video/mp4"
	err := v.Validate(in)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Expected unsupported-format error, got %v", err)
	}
}

func TestValidateEmptyFile(t *testing.T) {
	v := NewAudioValidator(entities.DefaultPipelineConfig())

	in := testInput()
	in.Data = nil
	err := v.Validate(in)
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("Expected empty-file error, got %v", err)
	}
}

func TestValidateFileTooLarge(t *testing.T) {
	cfg := entities.DefaultPipelineConfig()
	cfg.MaxFileSizeMB = 1
	v := NewAudioValidator(cfg)

	in := testInput()
	in.Data = make([]byte, 2*1024*1024)
	err := v.Validate(in)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("Expected too-large error, got %v", err)
	}
}

func TestValidateInvalidExtension(t *testing.T) {
	v := NewAudioValidator(entities.DefaultPipelineConfig())

	// A spoofed content type does not get past the extension check.
	in := testInput()
	in.Filename = "test.txt"
	err := v.Validate(in)
	if err == nil || !strings.Contains(err.Error(), "extension") {
		t.Errorf("Expected extension error, got %v", err)
	}
}

func TestValidateCheckOrder(t *testing.T) {
	v := NewAudioValidator(entities.DefaultPipelineConfig())

	// Content type is checked before size, so an empty payload with a bad
	// type reports the type problem.
	in := testInput()
	in.ContentType = "video/mp4"
	in.Data = nil
	err := v.Validate(in)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("Expected unsupported-format error first, got %v", err)
	}
}

func TestContentHash(t *testing.T) {
	content := []byte("test audio content")

	hash1 := ContentHash(content)
	hash2 := ContentHash(content)
	if hash1 != hash2 {
		t.Errorf("Same content produced different hashes: %s vs %s", hash1, hash2)
	}
	if len(hash1) != 32 {
		t.Errorf("Expected 32-char hex digest, got %d chars", len(hash1))
	}

	if ContentHash([]byte("other content")) == hash1 {
		t.Error("Different content produced the same hash")
	}
}
