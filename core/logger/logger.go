package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.RWMutex
	sugar = newSugar("dev")
)

// Init rebuilds the package logger for the given mode ("dev" or "prod").
func Init(mode string) {
	mu.Lock()
	defer mu.Unlock()
	sugar = newSugar(mode)
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = sugar.Sync()
}

func newSugar(mode string) *zap.SugaredLogger {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return zapLogger.Sugar()
}

func Debug(msg string, keysAndValues ...any) {
	current().Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	current().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	current().Errorw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	current().Fatalw(msg, normalize(keysAndValues)...)
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// normalize lets call sites pass a bare error instead of a key/value pair.
func normalize(kv []any) []any {
	if len(kv) == 1 {
		if err, ok := kv[0].(error); ok {
			return []any{"error", err}
		}
	}
	return kv
}
