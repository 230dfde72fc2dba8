package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	CatalogFile       string `env:"CATALOG_FILE" envDefault:"data/catalog.json"`
	DatabaseURL       string `env:"DATABASE_URL"`
	StyleRulesFile    string `env:"STYLE_RULES_FILE"`
	SessionBackend    string `env:"SESSION_BACKEND" envDefault:"memory"`
	SessionMaxEntries int    `env:"SESSION_MAX_ENTRIES" envDefault:"10000"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"240"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	DiscoverLimit     int    `env:"DISCOVER_LIMIT" envDefault:"30"`
	RecommendLimit    int    `env:"RECOMMEND_LIMIT" envDefault:"12"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SessionTTL devuelve el TTL de inactividad de las sesiones. Cero desactiva la expiracion.
func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}
