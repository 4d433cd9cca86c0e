// Package tui implements the interactive configuration wizard.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"briefkit/internal/config"
	"briefkit/internal/language"
	"briefkit/internal/provider"
)

// ConfigureResult holds the configuration result from the wizard
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

var providerDisplayNames = map[string]string{
	"openai": "OpenAI",
	"groq":   "Groq",
	"otx":    "AlienVault OTX",
}

// section labels for the main menu
const (
	sectionProviders = "providers"
	sectionMail      = "mail"
	sectionSchedule  = "schedule"
	sectionSummary   = "summary"
	sectionSaveExit  = "save_exit"
	sectionDiscard   = "discard_exit"
)

// Run starts the configuration wizard on top of the existing config.
func Run(cfg *config.Config) (*ConfigureResult, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	for {
		section := ""
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("briefkit configuration").
					Description("Select a section to edit").
					Options(
						huh.NewOption("API keys (OpenAI, Groq, OTX)", sectionProviders),
						huh.NewOption("Report email (SMTP)", sectionMail),
						huh.NewOption("Report schedule", sectionSchedule),
						huh.NewOption("Summarization", sectionSummary),
						huh.NewOption("Save and exit", sectionSaveExit),
						huh.NewOption("Discard and exit", sectionDiscard),
					).
					Value(&section),
			),
		).WithTheme(getTheme())

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return &ConfigureResult{Cancelled: true}, nil
			}
			return nil, err
		}

		var err error
		switch section {
		case sectionProviders:
			err = editProviders(cfg)
		case sectionMail:
			err = editMail(cfg)
		case sectionSchedule:
			err = editSchedule(cfg)
		case sectionSummary:
			err = editSummary(cfg)
		case sectionSaveExit:
			return &ConfigureResult{Config: cfg}, nil
		case sectionDiscard:
			return &ConfigureResult{Cancelled: true}, nil
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return nil, err
		}
	}
}

// maskAPIKey returns a display-safe version of an API key
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:7] + "..." + key[len(key)-4:]
}

func formatProviderOption(cfg *config.Config, name string) string {
	display := providerDisplayNames[name]
	if display == "" {
		display = name
	}
	if pc, ok := cfg.Providers[name]; ok && pc.APIKey != "" {
		return fmt.Sprintf("%s (%s)", display, maskAPIKey(pc.APIKey))
	}
	return fmt.Sprintf("%s (not set)", display)
}

func editProviders(cfg *config.Config) error {
	for {
		var options []huh.Option[string]
		for _, name := range []string{"openai", "groq", "otx"} {
			options = append(options, huh.NewOption(formatProviderOption(cfg, name), name))
		}
		options = append(options, huh.NewOption("Done", "back"))

		selected := ""
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Provider Settings").
					Description("Select a provider to configure its API key").
					Options(options...).
					Value(&selected),
			),
		).WithTheme(getTheme())

		if err := form.Run(); err != nil {
			return err
		}
		if selected == "back" {
			return nil
		}

		if err := editProviderKey(cfg, selected); err != nil {
			return err
		}
	}
}

func editProviderKey(cfg *config.Config, name string) error {
	p, _ := provider.Get(name)
	key := cfg.Providers[name].APIKey

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s API key", providerDisplayNames[name])).
				Description(fmt.Sprintf("Leave empty to use the %s environment variable", p.EnvVar)).
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s != "" && !p.ValidateAPIKey(s) {
						return fmt.Errorf("key should start with %q", p.KeyPrefix)
					}
					return nil
				}).
				Value(&key),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if cfg.Providers == nil {
		cfg.Providers = make(map[string]config.ProviderConfig)
	}
	cfg.Providers[name] = config.ProviderConfig{APIKey: key}
	return nil
}

func editMail(cfg *config.Config) error {
	port := strconv.Itoa(cfg.Mail.Port)
	to := strings.Join(cfg.Mail.To, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("SMTP host").Value(&cfg.Mail.Host),
			huh.NewInput().Title("SMTP port").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 || n > 65535 {
						return fmt.Errorf("invalid port")
					}
					return nil
				}).
				Value(&port),
			huh.NewInput().Title("SMTP username").Value(&cfg.Mail.Username),
			huh.NewInput().Title("SMTP password").
				Description("Leave empty to use the SMTP_PASSWORD environment variable").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Mail.Password),
		),
		huh.NewGroup(
			huh.NewInput().Title("From address").Value(&cfg.Mail.From),
			huh.NewInput().Title("Recipients").
				Description("Comma-separated email addresses").
				Value(&to),
			huh.NewSelect[string]().
				Title("TLS mode").
				Options(
					huh.NewOption("STARTTLS (port 587)", "starttls"),
					huh.NewOption("Implicit TLS (port 465)", "tls"),
					huh.NewOption("None", "none"),
				).
				Value(&cfg.Mail.TLS),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Mail.Port, _ = strconv.Atoi(port)
	cfg.Mail.To = splitRecipients(to)
	return nil
}

func splitRecipients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func editSchedule(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cron expression").
				Description("Standard 5-field cron, e.g. \"0 7 * * 1\" for Monday 07:00").
				Value(&cfg.Schedule.Cron),
		),
	).WithTheme(getTheme())
	return form.Run()
}

func editSummary(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Summary provider").
				Options(
					huh.NewOption("OpenAI", "openai"),
					huh.NewOption("Groq", "groq"),
				).
				Value(&cfg.Summary.Provider),
			huh.NewInput().
				Title("Model").
				Description("e.g. gpt-4o-mini").
				Value(&cfg.Summary.Model),
			huh.NewInput().
				Title("Custom system prompt").
				Description("Leave empty for the default summarization prompt").
				Value(&cfg.Summary.CustomPrompt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transcription provider").
				Options(
					huh.NewOption("OpenAI", "openai"),
					huh.NewOption("Groq", "groq"),
				).
				Value(&cfg.Transcription.Provider),
			huh.NewInput().
				Title("Transcription model").
				Description("e.g. whisper-1").
				Value(&cfg.Transcription.Model),
			huh.NewSelect[string]().
				Title("Transcription language").
				Options(buildLanguageOptions()...).
				Value(&cfg.Transcription.Language),
		),
	).WithTheme(getTheme())
	return form.Run()
}

func buildLanguageOptions() []huh.Option[string] {
	options := []huh.Option[string]{
		huh.NewOption(language.Auto.Name, language.Auto.Code),
	}
	for _, lang := range language.List() {
		options = append(options, huh.NewOption(lang.Name, lang.Code))
	}
	return options
}
