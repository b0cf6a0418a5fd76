package config

import "time"

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		SocketPath:     "",
		AdvisoryName:   "itermctl",
		DefaultProfile: "",
		LogLevel:       "info",
		DialTimeout:    5 * time.Second,
	}
}
