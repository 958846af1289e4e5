package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spacesedan/haikuflow/config"
)

func InitLogger() {
	InitLoggerTo(os.Stdout)
}

// InitLoggerTo installs the default logger writing to w. Interactive binaries
// pass os.Stderr so logs stay out of the poem output.
func InitLoggerTo(w io.Writer) {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(config.GetHaikuConfig().LogLevel),
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})

	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps LOG_LEVEL values to slog levels. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
