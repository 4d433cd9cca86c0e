package config

import (
	"fmt"

	"briefkit/internal/language"
)

// ValidateReporting checks the sections used by the threat report utility.
func (c *Config) ValidateReporting() error {
	if c.Feed.BaseURL == "" {
		return fmt.Errorf("invalid feed.base_url: empty")
	}
	if c.Feed.MaxPages <= 0 {
		return fmt.Errorf("invalid feed.max_pages: %d", c.Feed.MaxPages)
	}
	if c.Feed.Lookback <= 0 {
		return fmt.Errorf("invalid feed.lookback: %v", c.Feed.Lookback)
	}
	if c.APIKeyForProvider("otx") == "" {
		return fmt.Errorf("OTX API key required: not found in config (providers.otx.api_key) or environment variable (OTX_API_KEY)")
	}

	if c.Mail.Host == "" {
		return fmt.Errorf("invalid mail.host: empty")
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("invalid mail.port: %d", c.Mail.Port)
	}
	if c.Mail.From == "" {
		return fmt.Errorf("invalid mail.from: empty")
	}
	if len(c.Mail.To) == 0 {
		return fmt.Errorf("invalid mail.to: empty")
	}
	switch c.Mail.TLS {
	case "starttls", "tls", "none":
	default:
		return fmt.Errorf("invalid mail.tls: %s (must be starttls, tls, or none)", c.Mail.TLS)
	}

	if c.Schedule.Cron == "" {
		return fmt.Errorf("invalid schedule.cron: empty")
	}

	return nil
}

// ValidateSummarizer checks the sections used by the video summary utility.
func (c *Config) ValidateSummarizer() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Server.RatePerMinute <= 0 {
		return fmt.Errorf("invalid server.rate_per_minute: %d", c.Server.RatePerMinute)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid server.max_body_bytes: %d", c.Server.MaxBodyBytes)
	}

	if c.Media.MaxDuration <= 0 {
		return fmt.Errorf("invalid media.max_duration: %v", c.Media.MaxDuration)
	}
	if c.Media.YtdlpPath == "" {
		return fmt.Errorf("invalid media.ytdlp_path: empty")
	}

	if err := c.validateProviderSection("transcription", c.Transcription.Provider); err != nil {
		return err
	}
	if c.Transcription.Model == "" {
		return fmt.Errorf("invalid transcription.model: empty")
	}
	if !language.IsValidCode(c.Transcription.Language) {
		return fmt.Errorf("invalid transcription.language: %s (use empty string for auto-detect or ISO-639-1 codes like 'en', 'es', 'fr')", c.Transcription.Language)
	}

	if err := c.validateProviderSection("summary", c.Summary.Provider); err != nil {
		return err
	}
	if c.Summary.Model == "" {
		return fmt.Errorf("invalid summary.model: empty")
	}
	if c.Summary.MaxTokens <= 0 {
		return fmt.Errorf("invalid summary.max_tokens: %d", c.Summary.MaxTokens)
	}

	return nil
}

func (c *Config) validateProviderSection(section, provider string) error {
	switch provider {
	case "openai", "groq":
	case "":
		return fmt.Errorf("invalid %s.provider: empty", section)
	default:
		return fmt.Errorf("invalid %s.provider: %s (must be openai or groq)", section, provider)
	}

	if c.APIKeyForProvider(provider) == "" {
		return fmt.Errorf("%s API key required: not found in config (providers.%s.api_key) or environment variable (%s)",
			provider, provider, EnvVarForProvider(provider))
	}
	return nil
}
