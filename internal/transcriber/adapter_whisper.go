package transcriber

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sashabaranov/go-openai"

	"briefkit/internal/provider"
)

// WhisperAdapter implements Adapter against any OpenAI-compatible audio
// transcription endpoint (OpenAI itself, Groq's Whisper hosting).
type WhisperAdapter struct {
	client *openai.Client
	config Config
	name   string
}

func newWhisperAdapter(config Config, p provider.Provider) *WhisperAdapter {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if p.BaseURL != "" {
		clientConfig.BaseURL = p.BaseURL
	}

	return &WhisperAdapter{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
		name:   p.Name,
	}
}

func (a *WhisperAdapter) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if audioPath == "" {
		return "", fmt.Errorf("%s transcription: empty audio path", a.name)
	}

	req := openai.AudioRequest{
		Model:    a.config.Model,
		FilePath: audioPath,
		Language: a.config.Language,
	}

	start := time.Now()
	resp, err := a.client.CreateTranscription(ctx, req)
	duration := time.Since(start)

	if err != nil {
		log.Printf("%s-adapter: API call failed after %v: %v", a.name, duration, err)
		return "", fmt.Errorf("%s transcription: %w", a.name, err)
	}

	log.Printf("%s-adapter: transcribed %s in %v (%d chars)", a.name, audioPath, duration, len(resp.Text))
	return resp.Text, nil
}
