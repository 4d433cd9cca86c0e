package summarizer

import "fmt"

const defaultSystemPrompt = "You are a helpful assistant that summarizes text. " +
	"Provide a clear, concise summary with key points. " +
	"Focus on main ideas and important details."

// BuildSystemPrompt returns the system prompt, preferring a configured
// custom prompt over the default.
func BuildSystemPrompt(customPrompt string) string {
	if customPrompt != "" {
		return customPrompt
	}
	return defaultSystemPrompt
}

// BuildUserPrompt wraps the transcript in the summarization instruction.
func BuildUserPrompt(transcript string) string {
	return fmt.Sprintf("Summarize the following text concisely:\n\n%s", transcript)
}
