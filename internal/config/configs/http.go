package configs

import "time"

// HTTP defines configuration for the HTTP server and its per-client limits.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// PlanRateLimit and SendRateLimit cap requests per client IP and minute
	// on the planner and send endpoints. Zero disables the limit.
	PlanRateLimit int `env:"PLAN_RATE_LIMIT" envDefault:"10"`
	SendRateLimit int `env:"SEND_RATE_LIMIT" envDefault:"5"`
}
