package transcriber

import (
	"strings"
	"testing"
)

func TestNewAdapter(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "openai",
			config: Config{Provider: "openai", APIKey: "sk-test", Model: "whisper-1"},
		},
		{
			name:   "groq with default model",
			config: Config{Provider: "groq", APIKey: "gsk_test"},
		},
		{
			name:    "unknown provider",
			config:  Config{Provider: "acme", APIKey: "key"},
			wantErr: "unsupported transcription provider",
		},
		{
			name:    "otx cannot transcribe",
			config:  Config{Provider: "otx", APIKey: "key"},
			wantErr: "unsupported transcription provider",
		},
		{
			name:    "missing API key",
			config:  Config{Provider: "openai"},
			wantErr: "API key required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewAdapter(tt.config)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("NewAdapter() = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAdapter() error: %v", err)
			}
			if adapter == nil {
				t.Fatal("NewAdapter() returned nil adapter")
			}
		})
	}
}

func TestTranscribeEmptyPath(t *testing.T) {
	adapter, err := NewAdapter(Config{Provider: "openai", APIKey: "sk-test", Model: "whisper-1"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := adapter.Transcribe(t.Context(), ""); err == nil {
		t.Error("expected error for empty audio path")
	}
}
