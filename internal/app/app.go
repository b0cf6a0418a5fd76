package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dra11y/iterm2-api/internal/cli"
	"github.com/dra11y/iterm2-api/internal/config"
	"github.com/dra11y/iterm2-api/internal/doctor"
	"github.com/dra11y/iterm2-api/internal/logging"
	"github.com/dra11y/iterm2-api/internal/version"
	"github.com/dra11y/iterm2-api/pkg/iterm2"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("itermctl"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, parsed.Help)
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	if level, err := config.ParseLogLevel(cfgLoaded.Config.LogLevel); err == nil {
		logRuntime.Level.Set(level)
	}
	for _, w := range cfgLoaded.Warnings {
		fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
		logger.Warn("config warning", "key", w.Key, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	if parsed.Command == cli.CommandDoctor {
		report := doctor.Run(ctx, cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	}

	cfg := cfgLoaded.Config
	profile := parsed.Profile
	if profile == "" {
		profile = cfg.DefaultProfile
	}

	conn, err := r.connect(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("connect failed", "error", err.Error())
		return 1
	}
	defer func() { _ = conn.Close() }()

	switch parsed.Command {
	case cli.CommandWindows:
		err = r.commandWindows(ctx, conn)
	case cli.CommandSessions:
		err = r.commandSessions(ctx, conn)
	case cli.CommandNewWindow:
		err = r.commandNewWindow(ctx, conn, profile)
	case cli.CommandNewTab:
		err = r.commandNewTab(ctx, conn, profile, parsed.WindowID)
	case cli.CommandSendText:
		err = r.commandSendText(ctx, conn, parsed.SessionID, parsed.Text, parsed.Enter)
	case cli.CommandLayout:
		err = r.commandLayout(ctx, conn, profile, parsed.Layout)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}

	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("command failed", "command", parsed.Command, "error", err.Error())
		return 1
	}
	logger.Info("command complete", "command", parsed.Command)
	return 0
}

// connect dials iTerm2 with the configured socket and the environment credential.
// DialTimeout bounds only the connect and handshake.
func (r Runner) connect(ctx context.Context, cfg config.Config, logger *slog.Logger) (*iterm2.Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	dialCfg := iterm2.Config{
		SocketPath:   cfg.SocketPath,
		AdvisoryName: cfg.AdvisoryName,
		Logger:       logger,
	}
	if cred, ok := iterm2.CredentialFromEnv(); ok {
		dialCfg.Credential = &cred
	}
	return iterm2.Dial(dialCtx, dialCfg)
}

func (r Runner) commandWindows(ctx context.Context, conn terminal) error {
	windows, err := conn.GetWindows(ctx)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		fmt.Fprintln(r.Stdout, "no windows")
		return nil
	}

	for _, w := range windows {
		fmt.Fprintf(r.Stdout, "window %s (number %d)\n", w.WindowID, w.Number)
		for _, tab := range w.Tabs {
			suffix := ""
			if tab.Minimized {
				suffix = " [minimized]"
			}
			fmt.Fprintf(r.Stdout, "  tab %s%s\n", tab.TabID, suffix)
			for _, s := range tab.Sessions() {
				fmt.Fprintf(r.Stdout, "    session %s%s\n", s.UniqueIdentifier, titleSuffix(s.Title))
			}
		}
	}
	return nil
}

func (r Runner) commandSessions(ctx context.Context, conn terminal) error {
	sessions, err := conn.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(r.Stdout, "no buried sessions")
		return nil
	}
	for _, s := range sessions {
		fmt.Fprintf(r.Stdout, "%s%s\n", s.UniqueIdentifier, titleSuffix(s.Title))
	}
	return nil
}

func (r Runner) commandNewWindow(ctx context.Context, conn terminal, profile string) error {
	session, err := conn.CreateWindow(ctx, profile)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Stdout, session.UniqueIdentifier)
	return nil
}

func (r Runner) commandNewTab(ctx context.Context, conn terminal, profile, windowID string) error {
	session, err := conn.CreateTab(ctx, profile, windowID)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Stdout, session.UniqueIdentifier)
	return nil
}

func (r Runner) commandSendText(ctx context.Context, conn terminal, sessionID, text string, enter bool) error {
	if enter {
		text += "\r"
	}
	return conn.SendText(ctx, sessionID, text)
}

func (r Runner) commandLayout(ctx context.Context, conn terminal, profile string, opts cli.Layout) error {
	result, err := buildLayout(ctx, conn, profile, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Stdout, "window %s\n", result.WindowID)
	for i, id := range result.Sessions {
		fmt.Fprintf(r.Stdout, "  tab %d: %s\n", i+1, id)
	}
	return nil
}

func titleSuffix(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return fmt.Sprintf(" %q", title)
}
