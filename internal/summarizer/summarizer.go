// Package summarizer condenses transcripts via chat-completion APIs.
package summarizer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"briefkit/internal/provider"
)

// EmptySummary is returned for blank transcripts without calling the API.
const EmptySummary = "No content to summarize."

// Config holds summarizer configuration
type Config struct {
	Provider     string
	APIKey       string
	Model        string
	MaxTokens    int
	Temperature  float64
	CustomPrompt string
}

// Summarizer generates summaries through an OpenAI-compatible chat API
type Summarizer struct {
	client *openai.Client
	config Config
	name   string
}

func New(cfg Config) (*Summarizer, error) {
	p, ok := provider.Get(cfg.Provider)
	if !ok || !p.SupportsLLM {
		return nil, fmt.Errorf("unsupported summary provider: %s", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key required", cfg.Provider)
	}
	if cfg.Model == "" {
		cfg.Model = p.DefaultLLMModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if p.BaseURL != "" {
		clientConfig.BaseURL = p.BaseURL
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		name:   p.Name,
	}, nil
}

// Summarize returns a concise summary of the given transcript.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return EmptySummary, nil
	}

	req := openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: BuildSystemPrompt(s.config.CustomPrompt)},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(transcript)},
		},
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
	}

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		log.Printf("%s-summarizer: API call failed after %v: %v", s.name, duration, err)
		return "", fmt.Errorf("%s chat completion: %w", s.name, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s chat completion: empty response", s.name)
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Printf("%s-summarizer: summarized %d chars into %d chars in %v", s.name, len(transcript), len(result), duration)
	return result, nil
}
