package config

import "time"

type Config struct {
	Feed          FeedConfig                `toml:"feed"`
	Report        ReportConfig              `toml:"report"`
	Mail          MailConfig                `toml:"mail"`
	Schedule      ScheduleConfig            `toml:"schedule"`
	Server        ServerConfig              `toml:"server"`
	Media         MediaConfig               `toml:"media"`
	Transcription TranscriptionConfig       `toml:"transcription"`
	Summary       SummaryConfig             `toml:"summary"`
	Providers     map[string]ProviderConfig `toml:"providers"`
}

// ProviderConfig holds the API key for an external service
type ProviderConfig struct {
	APIKey string `toml:"api_key"`
}

// FeedConfig configures the threat-intelligence feed client
type FeedConfig struct {
	BaseURL  string        `toml:"base_url"`
	MaxPages int           `toml:"max_pages"`
	Lookback time.Duration `toml:"lookback"` // only pulses modified within this window
	Timeout  time.Duration `toml:"timeout"`
}

// ReportConfig controls report content and where PDFs are written
type ReportConfig struct {
	Title          string `toml:"title"`
	OutputDir      string `toml:"output_dir"`
	TopTypes       int    `toml:"top_types"`
	TopAdversaries int    `toml:"top_adversaries"`
	TopCountries   int    `toml:"top_countries"`
}

// MailConfig configures SMTP delivery of the report
type MailConfig struct {
	Host          string   `toml:"host"`
	Port          int      `toml:"port"`
	Username      string   `toml:"username"`
	Password      string   `toml:"password"` // or SMTP_PASSWORD environment variable
	From          string   `toml:"from"`
	To            []string `toml:"to"`
	SubjectPrefix string   `toml:"subject_prefix"`
	TLS           string   `toml:"tls"` // "starttls", "tls", "none"
}

// ScheduleConfig holds the cron expression for automated report runs
type ScheduleConfig struct {
	Cron string `toml:"cron"`
}

// ServerConfig configures the video summary web server
type ServerConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Dev           bool   `toml:"dev"` // disables HSTS, enables verbose errors
	RatePerMinute int    `toml:"rate_per_minute"`
	RateBurst     int    `toml:"rate_burst"`
	MaxBodyBytes  int64  `toml:"max_body_bytes"`
}

// MediaConfig configures audio download from video URLs
type MediaConfig struct {
	TempDir     string        `toml:"temp_dir"` // empty = os.TempDir()
	YtdlpPath   string        `toml:"ytdlp_path"`
	MaxDuration time.Duration `toml:"max_duration"`
	Timeout     time.Duration `toml:"timeout"`
}

type TranscriptionConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	Language string `toml:"language"`
}

// SummaryConfig configures the chat-completion summarization step
type SummaryConfig struct {
	Provider     string  `toml:"provider"`
	Model        string  `toml:"model"`
	MaxTokens    int     `toml:"max_tokens"`
	Temperature  float64 `toml:"temperature"`
	CustomPrompt string  `toml:"custom_prompt"` // replaces the default system prompt when set
}
