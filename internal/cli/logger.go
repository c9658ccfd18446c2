package cli

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rs/zerolog"

	"llmtools/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLevel maps the configured level name to zerolog; unknown names mean info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "off", "disabled", "none":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// newLogger builds the process logger. Console format writes human-readable
// lines to stderr; json writes one object per line. When a file is set the
// output is also written there, rotated daily and pruned after MaxAgeDays.
func newLogger(cfg config.LogConfig, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	var out io.Writer = stderr
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}
	}
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		abs, err := filepath.Abs(cfg.File)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		rl, err := rotatelogs.New(
			abs+".%Y%m%d",
			rotatelogs.WithLinkName(abs),
			rotatelogs.WithMaxAge(time.Duration(cfg.MaxAgeDays)*24*time.Hour),
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		out = zerolog.MultiLevelWriter(out, rl)
		closer = rl
	}
	l := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return l, closer, nil
}
