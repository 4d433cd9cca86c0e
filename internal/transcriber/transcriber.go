// Package transcriber converts audio files to text via hosted speech APIs.
package transcriber

import (
	"context"
	"fmt"

	"briefkit/internal/provider"
)

// Adapter is implemented by each transcription backend
type Adapter interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Config holds transcription adapter configuration
type Config struct {
	Provider string
	APIKey   string
	Model    string
	Language string
}

// NewAdapter creates a transcription adapter for the configured provider.
func NewAdapter(cfg Config) (Adapter, error) {
	p, ok := provider.Get(cfg.Provider)
	if !ok || !p.SupportsTranscription {
		return nil, fmt.Errorf("unsupported transcription provider: %s", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key required", cfg.Provider)
	}
	if cfg.Model == "" {
		cfg.Model = p.DefaultTranscriptionModel
	}
	return newWhisperAdapter(cfg, p), nil
}
