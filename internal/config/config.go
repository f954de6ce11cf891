package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	SessionTTL  time.Duration
}

// Load reads configuration from the environment with local-run defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_SECRET", "super-secret-key")
	v.SetDefault("SESSION_TTL_MINUTES", 720)

	return Config{
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		SessionTTL:  time.Duration(v.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
	}
}
