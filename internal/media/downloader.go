// Package media downloads audio tracks from video URLs via yt-dlp.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"time"
)

var (
	// ErrInvalidURL means the input did not look like a YouTube URL.
	ErrInvalidURL = errors.New("invalid YouTube URL")
	// ErrDownload means yt-dlp ran but produced no usable audio.
	ErrDownload = errors.New("error downloading video")
)

// Matches watch/embed/short-link forms with an 11-character video ID.
var youtubeRegex = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?(?:youtube|youtu|youtube-nocookie)\.(?:com|be)/(?:watch\?v=|embed/|v/|.+/|\w+\?v=)?([^&=%?\s/]{11})`)

// ValidateURL checks that the input is a plausible YouTube video URL.
func ValidateURL(raw string) error {
	if !youtubeRegex.MatchString(raw) {
		return ErrInvalidURL
	}
	return nil
}

// Config holds downloader settings
type Config struct {
	TempDir     string // parent for per-request temp dirs, empty = os.TempDir()
	YtdlpPath   string
	MaxDuration time.Duration
	Timeout     time.Duration
}

// Downloader fetches best-audio tracks into per-request temp directories
type Downloader struct {
	config Config
}

func New(config Config) *Downloader {
	if config.YtdlpPath == "" {
		config.YtdlpPath = "yt-dlp"
	}
	if config.MaxDuration <= 0 {
		config.MaxDuration = time.Hour
	}
	return &Downloader{config: config}
}

// DownloadAudio downloads the audio track of videoURL and returns the file
// path plus a cleanup func that removes the temp directory. cleanup is safe
// to call even when err is non-nil.
func (d *Downloader) DownloadAudio(ctx context.Context, videoURL string) (string, func(), error) {
	cleanup := func() {}

	if err := ValidateURL(videoURL); err != nil {
		return "", cleanup, err
	}

	tempDir, err := os.MkdirTemp(d.config.TempDir, "briefkit-audio-")
	if err != nil {
		return "", cleanup, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup = func() {
		if err := os.RemoveAll(tempDir); err != nil {
			log.Printf("media: failed to remove %s: %v", tempDir, err)
		}
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	args := []string{
		"-f", "bestaudio[ext=m4a]/bestaudio[ext=mp3]/bestaudio",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--match-filter", fmt.Sprintf("duration <= %d", int(d.config.MaxDuration.Seconds())),
		"-o", filepath.Join(tempDir, "audio.%(ext)s"),
		videoURL,
	}

	cmd := exec.CommandContext(ctx, d.config.YtdlpPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		log.Printf("media: yt-dlp failed after %v: %v: %s", time.Since(start), err, stderr.String())
		return "", cleanup, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	audioPath, err := findAudioFile(tempDir)
	if err != nil {
		return "", cleanup, err
	}

	log.Printf("media: downloaded %s in %v", audioPath, time.Since(start))
	return audioPath, cleanup, nil
}

// findAudioFile locates the downloaded track and rejects empty files.
func findAudioFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "audio.*"))
	if err != nil {
		return "", fmt.Errorf("glob temp dir: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no audio file produced", ErrDownload)
	}

	path := matches[0]
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return "", fmt.Errorf("%w: audio file missing or empty", ErrDownload)
	}
	return path, nil
}
