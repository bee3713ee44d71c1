package logger

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.SugaredLogger]

func init() {
	current.Store(zap.NewNop().Sugar())
}

// Init replaces the package logger. Production environments get JSON output
// at info level, everything else the development console encoder at debug.
func Init(env string) {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewExample()
	}
	current.Store(z.Sugar())
}

// Set installs an already built logger, mostly for tests.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

func Sync() {
	_ = current.Load().Sync()
}

func Debug(msg string, keysAndValues ...any) {
	current.Load().Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	current.Load().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	current.Load().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	current.Load().Errorw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	current.Load().Fatalw(msg, normalize(keysAndValues)...)
}

// normalize turns stray values into proper pairs so calls like
// Error("query failed", err) never trip zap's odd-argument DPanic.
func normalize(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}

	out := make([]any, 0, len(kv)+2)
	for i := 0; i < len(kv); i++ {
		key, ok := kv[i].(string)
		if ok && i+1 < len(kv) {
			out = append(out, key, kv[i+1])
			i++
			continue
		}
		if err, isErr := kv[i].(error); isErr {
			out = append(out, "error", err)
			continue
		}
		out = append(out, "arg", kv[i])
	}
	return out
}
