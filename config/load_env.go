package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}

// AppEnv is the value of APP_ENV, "dev" when unset.
func AppEnv() string {
	return GetEnv("APP_ENV", "dev")
}

func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

type HaikuConfig struct {
	WordNetDir  string
	CMUDictPath string
	// Seed is nil unless HAIKU_SEED holds an unsigned integer.
	Seed     *uint64
	LogLevel string
}

func GetHaikuConfig() HaikuConfig {
	cfg := HaikuConfig{
		WordNetDir:  GetEnv("WORDNET_DIR", "data/wordnet"),
		CMUDictPath: GetEnv("CMUDICT_PATH", "data/cmudict.dict"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}

	if raw := GetEnv("HAIKU_SEED", ""); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			slog.Warn("Ignoring invalid HAIKU_SEED",
				slog.String("value", raw),
				slog.String("error", err.Error()))
		} else {
			cfg.Seed = &seed
		}
	}

	return cfg
}
