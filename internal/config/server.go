package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds process settings read from the environment.
type Server struct {
	Port       string        `env:"PORT"                envDefault:"8080"`
	SiteFile   string        `env:"WEDDING_SITE_CONFIG" envDefault:"site.yaml"`
	TickPeriod time.Duration `env:"WEDDING_TICK_PERIOD" envDefault:"1s"`
	SessionTTL time.Duration `env:"WEDDING_SESSION_TTL" envDefault:"2h"`
}

// LoadServer parses Server from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = time.Second
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}
	return cfg, nil
}

// Addr is the listen address for Port.
func (s Server) Addr() string {
	return ":" + s.Port
}
