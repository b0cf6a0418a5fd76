package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	SocketPath     string `toml:"socket_path"`
	AdvisoryName   string `toml:"advisory_name"`
	DefaultProfile string `toml:"default_profile"`
	LogLevel       string `toml:"log_level"`
	DialTimeout    string `toml:"dial_timeout"`
}

// Parse decodes the TOML file at path over base. Keys absent from the file keep
// their base value; unknown keys produce warnings.
func Parse(path string, base Config) (Config, []Warning, error) {
	cfg := base

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, nil, err
	}

	if meta.IsDefined("socket_path") {
		socketPath, err := expandHome(strings.TrimSpace(raw.SocketPath))
		if err != nil {
			return Config{}, nil, fmt.Errorf("expand socket_path: %w", err)
		}
		cfg.SocketPath = socketPath
	}
	if meta.IsDefined("advisory_name") {
		cfg.AdvisoryName = strings.TrimSpace(raw.AdvisoryName)
	}
	if meta.IsDefined("default_profile") {
		cfg.DefaultProfile = strings.TrimSpace(raw.DefaultProfile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("dial_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.DialTimeout))
		if err != nil {
			return Config{}, nil, fmt.Errorf("parse dial_timeout: %w", err)
		}
		cfg.DialTimeout = d
	}

	var warnings []Warning
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, Warning{Key: key.String(), Message: fmt.Sprintf("unknown key %q ignored", key.String())})
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Key < warnings[j].Key })

	return cfg, warnings, nil
}
