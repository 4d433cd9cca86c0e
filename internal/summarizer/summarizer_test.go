package summarizer

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("default prompt", func(t *testing.T) {
		got := BuildSystemPrompt("")
		if !strings.Contains(got, "summarizes text") {
			t.Errorf("default prompt missing summarization instruction: %q", got)
		}
	})

	t.Run("custom prompt wins", func(t *testing.T) {
		got := BuildSystemPrompt("Summarize in bullet points only.")
		if got != "Summarize in bullet points only." {
			t.Errorf("BuildSystemPrompt() = %q, want custom prompt verbatim", got)
		}
	})
}

func TestBuildUserPrompt(t *testing.T) {
	got := BuildUserPrompt("the transcript")
	if !strings.Contains(got, "the transcript") {
		t.Errorf("user prompt missing transcript: %q", got)
	}
	if !strings.Contains(got, "Summarize the following text concisely") {
		t.Errorf("user prompt missing instruction: %q", got)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "openai",
			config: Config{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini"},
		},
		{
			name:   "groq",
			config: Config{Provider: "groq", APIKey: "gsk_test"},
		},
		{
			name:    "unknown provider",
			config:  Config{Provider: "acme", APIKey: "key"},
			wantErr: true,
		},
		{
			name:    "missing key",
			config:  Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "otx is not an LLM provider",
			config:  Config{Provider: "otx", APIKey: "key"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	s, err := New(Config{Provider: "openai", APIKey: "sk-test"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Summarize(t.Context(), "   \n\t ")
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if got != EmptySummary {
		t.Errorf("Summarize() = %q, want %q without an API call", got, EmptySummary)
	}
}
