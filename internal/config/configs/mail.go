package configs

import "time"

// Mail configures the Resend transactional email API. Sending is skipped when
// APIKey is empty, and the lead notice is skipped when AdminEmail is empty.
type Mail struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://api.resend.com"`
	APIKey     string        `env:"API_KEY"`
	From       string        `env:"FROM" envDefault:"РТО Медиаплан <onboarding@resend.dev>"`
	AdminEmail string        `env:"ADMIN_EMAIL"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
