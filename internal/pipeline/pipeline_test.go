package pipeline

import (
	"strings"
	"testing"

	"briefkit/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	cfg := config.DefaultConfig()
	cfg.Providers["openai"] = config.ProviderConfig{APIKey: "sk-test"}
	return cfg
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "bad transcription provider",
			mutate:  func(c *config.Config) { c.Transcription.Provider = "acme" },
			wantErr: "unsupported transcription provider",
		},
		{
			name:    "summary key missing",
			mutate:  func(c *config.Config) { c.Summary.Provider = "groq" },
			wantErr: "groq API key required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			p, err := FromConfig(cfg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("FromConfig() = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromConfig() error: %v", err)
			}
			if p == nil {
				t.Fatal("FromConfig() returned nil pipeline")
			}
		})
	}
}

func TestSummarizeURLRejectsBadURL(t *testing.T) {
	p, err := FromConfig(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.SummarizeURL(t.Context(), "https://example.com/clip"); err == nil {
		t.Fatal("expected validation error before any network call")
	}
}
