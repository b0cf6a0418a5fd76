package doctor

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dra11y/iterm2-api/internal/config"
	"github.com/dra11y/iterm2-api/pkg/iterm2"
	"github.com/dra11y/iterm2-api/pkg/iterm2/iterm2test"
	"github.com/stretchr/testify/require"
)

func TestReportOKAndString(t *testing.T) {
	report := Report{Checks: []Check{
		{Name: "one", Pass: true, Message: "good"},
		{Name: "two", Pass: false, Message: "bad"},
	}}

	require.False(t, report.OK())
	text := report.String()
	require.Contains(t, text, "[OK] one: good")
	require.Contains(t, text, "[FAIL] two: bad")
}

func TestReportOKAllPassing(t *testing.T) {
	report := Report{Checks: []Check{{Name: "one", Pass: true}, {Name: "two", Pass: true}}}
	require.True(t, report.OK())
}

func TestCheckSocketMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socket")

	check := checkSocket(context.Background(), path, time.Second)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "nothing listening")
	require.Contains(t, check.Message, path)
}

func TestCheckSocketStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socket")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	check := checkSocket(context.Background(), path, time.Second)
	require.False(t, check.Pass)
}

func TestCheckCredential(t *testing.T) {
	cred, check := checkCredential(func() (iterm2.Credential, bool) { return iterm2.Credential{}, false })
	require.Nil(t, cred)
	require.True(t, check.Pass)
	require.Contains(t, check.Message, "allow all apps")

	cred, check = checkCredential(func() (iterm2.Credential, bool) {
		return iterm2.Credential{Kind: iterm2.CredentialCookie, Value: "c"}, true
	})
	require.NotNil(t, cred)
	require.Equal(t, "c", cred.Value)
	require.Contains(t, check.Message, "cookie")
}

func TestRunAgainstLiveServer(t *testing.T) {
	t.Setenv(iterm2.EnvCookie, "doctor-cookie")
	t.Setenv(iterm2.EnvKey, "")
	srv := iterm2test.NewServer(t, iterm2test.NewModel().Respond)

	cfg := config.Default()
	cfg.SocketPath = srv.SocketPath

	report := Run(context.Background(), config.Loaded{Path: "/tmp/config.toml", Config: cfg, Exists: true})
	require.True(t, report.OK(), report.String())
	require.Len(t, report.Checks, 4)
	require.Equal(t, "api.handshake", report.Checks[3].Name)
	require.Contains(t, report.Checks[3].Message, iterm2.Subprotocol)

	// The socket probe connects without speaking HTTP, so only the handshake is recorded.
	headers := srv.Headers()
	require.Len(t, headers, 1)
	require.Equal(t, "doctor-cookie", headers[0].Get("x-iterm2-cookie"))
	require.Equal(t, "itermctl", headers[0].Get("x-iterm2-advisory-name"))
}

func TestRunReportsRejectedHandshake(t *testing.T) {
	t.Setenv(iterm2.EnvCookie, "")
	t.Setenv(iterm2.EnvKey, "")
	srv := iterm2test.NewServer(t, nil, iterm2test.WithRejectStatus(http.StatusUnauthorized))

	cfg := config.Default()
	cfg.SocketPath = srv.SocketPath

	report := Run(context.Background(), config.Loaded{Path: "/tmp/config.toml", Config: cfg})
	require.False(t, report.OK())

	last := report.Checks[len(report.Checks)-1]
	require.Equal(t, "api.handshake", last.Name)
	require.False(t, last.Pass)
	require.Contains(t, last.Message, "401")
}

func TestRunSkipsHandshakeWhenSocketMissing(t *testing.T) {
	cfg := config.Default()
	cfg.SocketPath = filepath.Join(t.TempDir(), "socket")

	report := Run(context.Background(), config.Loaded{Path: "/tmp/config.toml", Config: cfg})
	require.False(t, report.OK())
	require.Contains(t, report.Checks[0].Message, "using defaults")
	for _, check := range report.Checks {
		require.NotEqual(t, "api.handshake", check.Name)
	}
}
