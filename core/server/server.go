package server

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sarigr/uni-schedule/core/config"
	"github.com/sarigr/uni-schedule/core/constants"
	"github.com/sarigr/uni-schedule/core/logger"
	"github.com/sarigr/uni-schedule/core/middleware"
	"github.com/sarigr/uni-schedule/core/storage"
	"github.com/sarigr/uni-schedule/modules/export"
	"github.com/sarigr/uni-schedule/modules/schedule"
)

// Run wires storage, modules and routes, then serves until the process stops.
func Run() error {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store := newStore(cfg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(mw.RequestLogger())

	scheduleSvc := schedule.Init(e, store, cfg.CollationLocale, mw)
	export.Init(e, scheduleSvc, mw)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("Server starting", "addr", addr, "storage", cfg.StorageDriver)
	return e.Start(addr)
}

// newStore builds the configured backing store. An unreachable store is not
// fatal: the schedule degrades to in-memory so the session stays usable, it
// just will not survive a restart.
func newStore(cfg *config.Config) storage.Store {
	switch cfg.StorageDriver {
	case constants.StorageDriverRedis:
		store, err := storage.NewRedisStore(storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err == nil {
			return store
		}
		logger.Error("Redis unavailable, falling back to in-memory storage; check REDIS_ADDR", "error", err)
	case constants.StorageDriverPostgres:
		store, err := storage.NewPostgresStore(storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPassword,
			DBName:   cfg.PostgresDBName,
		})
		if err == nil {
			return store
		}
		logger.Error("Postgres unavailable, falling back to in-memory storage; check POSTGRES_* settings", "error", err)
	}
	return storage.NewMemoryStore()
}
