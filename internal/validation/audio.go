// Package validation holds the pipeline's input gatekeepers and the
// post-translation quality gate.
package validation

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/voicebridge/server/domain/entities"
)

// AudioValidator rejects malformed, oversized, or empty uploads before any
// provider call is made.
type AudioValidator struct {
	cfg entities.PipelineConfig
}

// NewAudioValidator creates an AudioValidator with the given tuning.
func NewAudioValidator(cfg entities.PipelineConfig) *AudioValidator {
	return &AudioValidator{cfg: cfg}
}

// Validate runs the fixed check sequence, short-circuiting on the first
// failure: file present, declared content type allowed, byte length in
// (0, max], filename extension allowed. The extension check guards against
// a spoofed content type.
func (v *AudioValidator) Validate(in *entities.AudioInput) error {
	if in == nil || in.Filename == "" {
		return fmt.Errorf("no audio file provided")
	}

	if _, ok := v.cfg.AllowedContentTypes[strings.ToLower(in.ContentType)]; !ok {
		return fmt.Errorf("unsupported format: %s", in.ContentType)
	}

	size := int64(len(in.Data))
	maxBytes := int64(v.cfg.MaxFileSizeMB) * 1024 * 1024
	if size > maxBytes {
		return fmt.Errorf("file too large: %.2fMB", float64(size)/1024/1024)
	}
	if size == 0 {
		return fmt.Errorf("audio file is empty")
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	if _, ok := v.cfg.AllowedExtensions[ext]; !ok {
		return fmt.Errorf("invalid extension: %s", ext)
	}

	return nil
}

// ContentHash returns the hex digest of the payload. It serves as a dedup
// key for the outcome log and a seam for a future caching layer; no
// pipeline decision consults it.
func ContentHash(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
