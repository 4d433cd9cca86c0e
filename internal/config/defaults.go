package config

import "time"

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			BaseURL:  "https://otx.alienvault.com",
			MaxPages: 5,
			Lookback: 7 * 24 * time.Hour,
			Timeout:  30 * time.Second,
		},
		Report: ReportConfig{
			Title:          "Weekly Threat Intelligence Report",
			OutputDir:      "",
			TopTypes:       8,
			TopAdversaries: 6,
			TopCountries:   10,
		},
		Mail: MailConfig{
			Port:          587,
			SubjectPrefix: "[threat-report]",
			TLS:           "starttls",
		},
		Schedule: ScheduleConfig{
			Cron: "0 7 * * 1", // Monday 07:00
		},
		Server: ServerConfig{
			Host:          "0.0.0.0",
			Port:          5000,
			Dev:           true,
			RatePerMinute: 5,
			RateBurst:     5,
			MaxBodyBytes:  16 << 20,
		},
		Media: MediaConfig{
			TempDir:     "",
			YtdlpPath:   "yt-dlp",
			MaxDuration: time.Hour,
			Timeout:     10 * time.Minute,
		},
		Transcription: TranscriptionConfig{
			Provider: "openai",
			Model:    "whisper-1",
			Language: "",
		},
		Summary: SummaryConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			MaxTokens:   300,
			Temperature: 0.5,
		},
		Providers: make(map[string]ProviderConfig),
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = def.Feed.BaseURL
	}
	if c.Feed.MaxPages <= 0 {
		c.Feed.MaxPages = def.Feed.MaxPages
	}
	if c.Feed.Lookback <= 0 {
		c.Feed.Lookback = def.Feed.Lookback
	}
	if c.Feed.Timeout <= 0 {
		c.Feed.Timeout = def.Feed.Timeout
	}

	if c.Report.Title == "" {
		c.Report.Title = def.Report.Title
	}
	if c.Report.TopTypes <= 0 {
		c.Report.TopTypes = def.Report.TopTypes
	}
	if c.Report.TopAdversaries <= 0 {
		c.Report.TopAdversaries = def.Report.TopAdversaries
	}
	if c.Report.TopCountries <= 0 {
		c.Report.TopCountries = def.Report.TopCountries
	}

	if c.Mail.Port <= 0 {
		c.Mail.Port = def.Mail.Port
	}
	if c.Mail.TLS == "" {
		c.Mail.TLS = def.Mail.TLS
	}

	if c.Schedule.Cron == "" {
		c.Schedule.Cron = def.Schedule.Cron
	}

	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port <= 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.RatePerMinute <= 0 {
		c.Server.RatePerMinute = def.Server.RatePerMinute
	}
	if c.Server.RateBurst <= 0 {
		c.Server.RateBurst = c.Server.RatePerMinute
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}

	if c.Media.YtdlpPath == "" {
		c.Media.YtdlpPath = def.Media.YtdlpPath
	}
	if c.Media.MaxDuration <= 0 {
		c.Media.MaxDuration = def.Media.MaxDuration
	}
	if c.Media.Timeout <= 0 {
		c.Media.Timeout = def.Media.Timeout
	}

	if c.Transcription.Provider == "" {
		c.Transcription.Provider = def.Transcription.Provider
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = def.Transcription.Model
	}

	if c.Summary.Provider == "" {
		c.Summary.Provider = def.Summary.Provider
	}
	if c.Summary.Model == "" {
		c.Summary.Model = def.Summary.Model
	}
	if c.Summary.MaxTokens <= 0 {
		c.Summary.MaxTokens = def.Summary.MaxTokens
	}
	if c.Summary.Temperature <= 0 {
		c.Summary.Temperature = def.Summary.Temperature
	}

	if c.Providers == nil {
		c.Providers = make(map[string]ProviderConfig)
	}
}
