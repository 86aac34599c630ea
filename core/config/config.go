package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sarigr/uni-schedule/core/constants"
	"github.com/sarigr/uni-schedule/core/logger"
)

// Config holds all runtime settings, resolved from the environment.
type Config struct {
	AppEnv     string
	ServerPort int

	StorageDriver string // redis | postgres | memory

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDBName   string

	CollationLocale string
}

// Load reads configuration from the environment, with .env as a local
// convenience. Missing keys fall back to defaults; nothing here is fatal.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment only")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", constants.DefaultAppEnv)
	v.SetDefault("SERVER_PORT", constants.DefaultServerPort)
	v.SetDefault("STORAGE_DRIVER", constants.StorageDriverMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "uni_schedule")
	v.SetDefault("COLLATION_LOCALE", constants.DefaultCollationLocale)

	return &Config{
		AppEnv:           v.GetString("APP_ENV"),
		ServerPort:       v.GetInt("SERVER_PORT"),
		StorageDriver:    v.GetString("STORAGE_DRIVER"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetInt("POSTGRES_PORT"),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		PostgresDBName:   v.GetString("POSTGRES_DB"),
		CollationLocale:  v.GetString("COLLATION_LOCALE"),
	}
}
