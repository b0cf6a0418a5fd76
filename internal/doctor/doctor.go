// Package doctor runs readiness diagnostics for config, the iTerm2 socket, and API access.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dra11y/iterm2-api/internal/config"
	"github.com/dra11y/iterm2-api/internal/ipc"
	"github.com/dra11y/iterm2-api/pkg/iterm2"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes config, socket, credential and handshake checks for a loaded config.
// The handshake is only attempted when the socket is accepting connections.
func Run(ctx context.Context, cfg config.Loaded) Report {
	checks := []Check{}

	configMessage := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		configMessage = fmt.Sprintf("using defaults (%q not found)", cfg.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: configMessage})

	socketPath, socketCheck := resolveSocket(cfg.Config)
	if socketCheck.Name == "" {
		socketCheck = checkSocket(ctx, socketPath, cfg.Config.DialTimeout)
	}
	checks = append(checks, socketCheck)

	credential, credentialCheck := checkCredential(iterm2.CredentialFromEnv)
	checks = append(checks, credentialCheck)

	if socketCheck.Pass {
		checks = append(checks, checkHandshake(ctx, iterm2.Config{
			SocketPath:   socketPath,
			Credential:   credential,
			AdvisoryName: cfg.Config.AdvisoryName,
		}, cfg.Config.DialTimeout))
	}

	return Report{Checks: checks}
}

func resolveSocket(cfg config.Config) (string, Check) {
	if cfg.SocketPath != "" {
		return cfg.SocketPath, Check{}
	}
	path, err := iterm2.DefaultSocketPath()
	if err != nil {
		return "", Check{Name: "socket", Pass: false, Message: err.Error()}
	}
	return path, Check{}
}

// checkSocket probes the API socket without speaking the protocol.
func checkSocket(ctx context.Context, path string, timeout time.Duration) Check {
	listening, err := ipc.Probe(ctx, path, timeout)
	if err != nil {
		return Check{Name: "socket", Pass: false, Message: err.Error()}
	}
	if listening {
		return Check{Name: "socket", Pass: true, Message: fmt.Sprintf("listening at %s", path)}
	}
	return Check{
		Name:    "socket",
		Pass:    false,
		Message: fmt.Sprintf("nothing listening at %s; start iTerm2 and enable the Python API in Settings > General > Magic", path),
	}
}

// checkCredential reports which credential, if any, the handshake will carry.
// A missing credential is not a failure: iTerm2 may allow all apps to connect.
func checkCredential(resolve func() (iterm2.Credential, bool)) (*iterm2.Credential, Check) {
	cred, ok := resolve()
	if !ok {
		return nil, Check{
			Name:    "credential",
			Pass:    true,
			Message: fmt.Sprintf("%s and %s unset; iTerm2 must allow all apps to connect", iterm2.EnvCookie, iterm2.EnvKey),
		}
	}
	return &cred, Check{Name: "credential", Pass: true, Message: fmt.Sprintf("using %s from the environment", cred.Kind)}
}

// checkHandshake opens and closes one API connection.
func checkHandshake(ctx context.Context, cfg iterm2.Config, timeout time.Duration) Check {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := iterm2.Dial(ctx, cfg)
	if err != nil {
		message := err.Error()
		if errors.Is(err, iterm2.ErrHandshake) {
			message = strings.TrimPrefix(message, "iterm2: ")
		}
		return Check{Name: "api.handshake", Pass: false, Message: message}
	}
	_ = conn.Close()
	return Check{Name: "api.handshake", Pass: true, Message: fmt.Sprintf("negotiated %s", iterm2.Subprotocol)}
}
