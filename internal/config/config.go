package config

import (
	"github.com/caarlos0/env/v11"

	"radio-mediaplan/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Catalog configs.Catalog  `envPrefix:"CATALOG_"`
	Pricing configs.Pricing  `envPrefix:"PRICING_"`
	Advisor configs.Advisor  `envPrefix:"ADVISOR_"`
	Mail    configs.Mail     `envPrefix:"MAIL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
