// Package provider describes the external API services briefkit talks to.
package provider

import "strings"

// Provider describes one external API service
type Provider struct {
	Name      string
	BaseURL   string // OpenAI-compatible API root; empty means the client default
	EnvVar    string // environment variable consulted for the API key
	KeyPrefix string // expected API key prefix, empty = no check

	SupportsTranscription bool
	SupportsLLM           bool

	DefaultTranscriptionModel string
	DefaultLLMModel           string
}

var registry = map[string]Provider{
	"openai": {
		Name:                      "openai",
		BaseURL:                   "",
		EnvVar:                    "OPENAI_API_KEY",
		KeyPrefix:                 "sk-",
		SupportsTranscription:     true,
		SupportsLLM:               true,
		DefaultTranscriptionModel: "whisper-1",
		DefaultLLMModel:           "gpt-4o-mini",
	},
	"groq": {
		Name:                      "groq",
		BaseURL:                   "https://api.groq.com/openai/v1",
		EnvVar:                    "GROQ_API_KEY",
		KeyPrefix:                 "gsk_",
		SupportsTranscription:     true,
		SupportsLLM:               true,
		DefaultTranscriptionModel: "whisper-large-v3-turbo",
		DefaultLLMModel:           "llama-3.3-70b-versatile",
	},
	"otx": {
		Name:   "otx",
		EnvVar: "OTX_API_KEY",
	},
}

// Get returns a provider by name. The second return is false for unknown
// names.
func Get(name string) (Provider, bool) {
	p, ok := registry[name]
	return p, ok
}

// List returns all registered provider names.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// ListWithTranscription returns providers that can transcribe audio.
func ListWithTranscription() []string {
	var names []string
	for name, p := range registry {
		if p.SupportsTranscription {
			names = append(names, name)
		}
	}
	return names
}

// ValidateAPIKey checks a key against the provider's expected shape.
func (p Provider) ValidateAPIKey(key string) bool {
	if key == "" {
		return false
	}
	if p.KeyPrefix == "" {
		return true
	}
	return strings.HasPrefix(key, p.KeyPrefix)
}
