// Package pipeline chains download, transcription, and summarization into
// the single operation the web form and CLI expose.
package pipeline

import (
	"context"
	"log"
	"time"

	"briefkit/internal/config"
	"briefkit/internal/media"
	"briefkit/internal/summarizer"
	"briefkit/internal/transcriber"
)

type Stage string

const (
	Downloading  Stage = "downloading"
	Transcribing Stage = "transcribing"
	Summarizing  Stage = "summarizing"
)

// Pipeline runs videoURL -> audio -> transcript -> summary
type Pipeline struct {
	downloader  *media.Downloader
	transcriber transcriber.Adapter
	summarizer  *summarizer.Summarizer
}

// FromConfig builds a pipeline from the current configuration. Construction
// is cheap; the web server rebuilds one per request so config reloads take
// effect immediately.
func FromConfig(cfg *config.Config) (*Pipeline, error) {
	downloader := media.New(media.Config{
		TempDir:     cfg.Media.TempDir,
		YtdlpPath:   cfg.Media.YtdlpPath,
		MaxDuration: cfg.Media.MaxDuration,
		Timeout:     cfg.Media.Timeout,
	})

	transcriptionAdapter, err := transcriber.NewAdapter(transcriber.Config{
		Provider: cfg.Transcription.Provider,
		APIKey:   cfg.APIKeyForProvider(cfg.Transcription.Provider),
		Model:    cfg.Transcription.Model,
		Language: cfg.Transcription.Language,
	})
	if err != nil {
		return nil, err
	}

	summaryClient, err := summarizer.New(summarizer.Config{
		Provider:     cfg.Summary.Provider,
		APIKey:       cfg.APIKeyForProvider(cfg.Summary.Provider),
		Model:        cfg.Summary.Model,
		MaxTokens:    cfg.Summary.MaxTokens,
		Temperature:  cfg.Summary.Temperature,
		CustomPrompt: cfg.Summary.CustomPrompt,
	})
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		downloader:  downloader,
		transcriber: transcriptionAdapter,
		summarizer:  summaryClient,
	}, nil
}

// SummarizeURL runs the full pipeline for one video URL. The downloaded
// audio is removed before returning, whether or not the run succeeded.
func (p *Pipeline) SummarizeURL(ctx context.Context, videoURL string) (string, error) {
	start := time.Now()

	log.Printf("pipeline: %s: %s", Downloading, videoURL)
	audioPath, cleanup, err := p.downloader.DownloadAudio(ctx, videoURL)
	defer cleanup()
	if err != nil {
		return "", err
	}

	log.Printf("pipeline: %s: %s", Transcribing, audioPath)
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}

	log.Printf("pipeline: %s: %d chars of transcript", Summarizing, len(transcript))
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return "", err
	}

	log.Printf("pipeline: completed in %v", time.Since(start))
	return summary, nil
}
