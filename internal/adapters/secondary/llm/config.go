package llm

import "time"

// Config for an OpenAI-compatible chat completions endpoint (Groq by default).
// APIKey is not checked at startup; a missing key fails the first completion.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.groq.com/openai/v1"`
	APIKey  string        `envconfig:"API_KEY"`
	Model   string        `envconfig:"MODEL" default:"llama-3.3-70b-versatile"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"60s"`
}
