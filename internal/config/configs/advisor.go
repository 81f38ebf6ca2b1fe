package configs

import "time"

// Advisor configures the OpenAI-compatible completion gateway used by the
// media planner. An empty APIKey disables the advisor and every plan falls
// back to the built-in recommendation.
type Advisor struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://ai.gateway.lovable.dev/v1"`
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"google/gemini-3-flash-preview"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// MaxRetries bounds retries of 5xx and network failures.
	MaxRetries uint64 `env:"MAX_RETRIES" envDefault:"2"`
}
