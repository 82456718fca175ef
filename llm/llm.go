package llm

import "errors"

// ErrMissingAPIKey is returned by provider constructors when no API key is
// configured. Callers can tell this configuration failure apart from a
// transport failure with errors.Is.
var ErrMissingAPIKey = errors.New("api key is not configured")

// GenerationConfig carries the per-call sampling knobs forwarded to the
// remote model.
type GenerationConfig struct {
	Temperature     float64
	MaxOutputTokens int
}

// Client abstracts a hosted vision model used by the analysis service.
// Implementations must be concurrency-safe if used across goroutines.
type Client interface {
	// AnalyzeImage sends one image together with an instruction prompt and
	// returns the model's free-text response verbatim. Exactly one attempt
	// is made; the caller decides what to do with failures.
	AnalyzeImage(imageData []byte, mimeType, prompt string, gen GenerationConfig) (string, error)
	// ModelName returns the configured model identifier (e.g. "gemini-1.5-pro").
	ModelName() string
	// SourceName returns a short provider label (e.g. "Gemini", "ChatGPT").
	SourceName() string
}
