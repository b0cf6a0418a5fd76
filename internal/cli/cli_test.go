package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Equal(t, CommandHelp, parsed.Command)
	require.Contains(t, parsed.Help, "Usage:")
}

func TestParseCommandWithConfig(t *testing.T) {
	parsed, err := Parse([]string{"--config", "/tmp/itermctl.toml", "doctor"})
	require.NoError(t, err)
	require.Equal(t, CommandDoctor, parsed.Command)
	require.Equal(t, "/tmp/itermctl.toml", parsed.ConfigPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
		wantPath string
	}{
		{name: "help short flag", args: []string{"-h"}, wantCmd: CommandHelp, wantHelp: true},
		{name: "help long flag", args: []string{"--help"}, wantCmd: CommandHelp, wantHelp: true},
		{name: "help command", args: []string{"help", "layout"}, wantCmd: CommandHelp, wantHelp: true},
		{name: "subcommand help", args: []string{"send-text", "--help"}, wantCmd: CommandHelp, wantHelp: true},
		{name: "version flag", args: []string{"--version"}, wantCmd: CommandVersion},
		{name: "version command", args: []string{"version"}, wantCmd: CommandVersion},
		{name: "config after command", args: []string{"windows", "--config", "/tmp/cfg"}, wantCmd: CommandWindows, wantPath: "/tmp/cfg"},
		{name: "missing config path", args: []string{"--config"}, wantErr: "needs an argument"},
		{name: "unknown flag", args: []string{"--bogus"}, wantErr: "unknown flag"},
		{name: "unknown command", args: []string{"bogus"}, wantErr: "unknown command"},
		{name: "extra args after command", args: []string{"doctor", "extra"}, wantErr: "unknown command"},
		{name: "sessions", args: []string{"sessions"}, wantCmd: CommandSessions},
		{name: "new tab without window", args: []string{"new-tab"}, wantErr: `"window" not set`},
		{name: "send text missing text", args: []string{"send-text", "w0t0p0:ABC"}, wantErr: "accepts 2 arg(s)"},
		{name: "layout zero tabs", args: []string{"layout", "--tabs", "0"}, wantErr: "--tabs must be >= 1"},
		{name: "layout negative run count", args: []string{"layout", "--run-count", "-1"}, wantErr: "--run-count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
			require.Equal(t, tc.wantPath, parsed.ConfigPath)
		})
	}
}

func TestParseSubcommandHelpRendersSubcommandUsage(t *testing.T) {
	parsed, err := Parse([]string{"send-text", "-h"})
	require.NoError(t, err)
	require.Contains(t, parsed.Help, "send-text SESSION TEXT")
	require.Contains(t, parsed.Help, "--enter")
}

func TestParseCommandOptions(t *testing.T) {
	parsed, err := Parse([]string{"new-tab", "--window", "window-1", "--profile", "Dev"})
	require.NoError(t, err)
	require.Equal(t, CommandNewTab, parsed.Command)
	require.Equal(t, "window-1", parsed.WindowID)
	require.Equal(t, "Dev", parsed.Profile)

	parsed, err = Parse([]string{"send-text", "w0t0p0:ABC", "ls -la", "--enter"})
	require.NoError(t, err)
	require.Equal(t, CommandSendText, parsed.Command)
	require.Equal(t, "w0t0p0:ABC", parsed.SessionID)
	require.Equal(t, "ls -la", parsed.Text)
	require.True(t, parsed.Enter)

	parsed, err = Parse([]string{"layout"})
	require.NoError(t, err)
	require.Equal(t, Layout{Tabs: 4, RunCount: 2}, parsed.Layout)

	parsed, err = Parse([]string{"layout", "--tabs", "3", "--dir", "/tmp", "--run", "ls", "--run-count", "1"})
	require.NoError(t, err)
	require.Equal(t, Layout{Tabs: 3, Dir: "/tmp", Run: "ls", RunCount: 1}, parsed.Layout)
}

func TestHelpTextIncludesCoreCommands(t *testing.T) {
	text := HelpText("itermctl")
	require.Contains(t, text, "windows")
	require.Contains(t, text, "new-window")
	require.Contains(t, text, "send-text")
	require.Contains(t, text, "layout")
	require.Contains(t, text, "doctor")
	require.Contains(t, text, "--config")
}
