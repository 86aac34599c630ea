package constants

// Server defaults
const (
	DefaultServerPort = 7070
	DefaultAppEnv     = "dev"
)

// Storage drivers
const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Postgres pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// DefaultCollationLocale orders course titles in exports and listings.
const DefaultCollationLocale = "el"
