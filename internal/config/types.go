// Package config resolves, parses, validates, and defaults itermctl configuration.
package config

import "time"

// Config is the fully materialized runtime configuration used by itermctl.
type Config struct {
	// SocketPath overrides the iTerm2 API socket. Empty selects the default location.
	SocketPath     string
	AdvisoryName   string
	DefaultProfile string
	LogLevel       string
	DialTimeout    time.Duration
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Key     string
	Message string
}
