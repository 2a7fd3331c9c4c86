package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	BindAddr string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
}

// Load binds the process environment into an explicit Config. godotenv is
// expected to have populated the environment already (shared.LoadConfig).
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("BIND_ADDR", ":8080")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.AutomaticEnv()

	cfg := Config{
		BindAddr:         v.GetString("BIND_ADDR"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetString("POSTGRES_PORT"),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresDB == "" {
		return cfg, fmt.Errorf("POSTGRES_USER and POSTGRES_DB must be set")
	}

	return cfg, nil
}
