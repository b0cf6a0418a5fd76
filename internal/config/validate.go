package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.DialTimeout <= 0 {
		return nil, fmt.Errorf("dial_timeout must be > 0")
	}
	if cfg.DialTimeout > time.Minute {
		warnings = append(warnings, Warning{Key: "dial_timeout", Message: fmt.Sprintf("dial_timeout %s is unusually long", cfg.DialTimeout)})
	}
	if cfg.SocketPath != "" && !filepath.IsAbs(cfg.SocketPath) {
		warnings = append(warnings, Warning{Key: "socket_path", Message: fmt.Sprintf("socket_path %q is relative to the working directory", cfg.SocketPath)})
	}
	if strings.ContainsAny(cfg.AdvisoryName, "\r\n") {
		return nil, fmt.Errorf("advisory_name must be a single line")
	}

	return warnings, nil
}

// ParseLogLevel maps a log_level value onto a slog level.
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	name := strings.ToLower(strings.TrimSpace(value))
	switch name {
	case "debug", "info", "warn", "error":
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return 0, fmt.Errorf("log_level: %w", err)
		}
		return level, nil
	default:
		return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
