package config

import (
	"os"

	"github.com/akiram/casting-agency/pkg/config"
)

type Config struct {
	ServiceName string
	ServerPort  int

	DatabaseURL string
	AutoMigrate bool

	Auth0Domain   string
	Auth0Audience string

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() Config {
	cfg := Config{
		ServiceName: config.EnvDefault("SERVICE_NAME", "casting-agency"),
		ServerPort:  config.EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		AutoMigrate: config.EnvBoolDefault("DB_AUTO_MIGRATE", false),

		Auth0Domain:   os.Getenv("AUTH0_DOMAIN"),
		Auth0Audience: os.Getenv("AUTH0_AUDIENCE"),

		KafkaBrokers: config.CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   config.EnvDefault("KAFKA_TOPIC", "casting_events"),
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmpty(cfg.Auth0Domain, "AUTH0_DOMAIN")
	config.MustNonEmpty(cfg.Auth0Audience, "AUTH0_AUDIENCE")

	return cfg
}
