// Package cli parses itermctl arguments into a Parsed invocation.
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
)

type Command string

const (
	CommandWindows   Command = "windows"
	CommandSessions  Command = "sessions"
	CommandNewWindow Command = "new-window"
	CommandNewTab    Command = "new-tab"
	CommandSendText  Command = "send-text"
	CommandLayout    Command = "layout"
	CommandDoctor    Command = "doctor"
	CommandVersion   Command = "version"
	CommandHelp      Command = "help"
)

// Layout holds the options of the layout command.
type Layout struct {
	Tabs     int
	Dir      string
	Run      string
	RunCount int
}

// Parsed is one resolved invocation. Fields irrelevant to Command stay zero.
type Parsed struct {
	Command    Command
	ConfigPath string
	ShowHelp   bool
	// Help is the rendered help of the command the user asked about.
	Help string

	Profile   string
	WindowID  string
	SessionID string
	Text      string
	Enter     bool
	Layout    Layout
}

// Parse resolves args against the itermctl command tree. Errors are usage errors.
func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandHelp, ShowHelp: true}
	root := newRoot("itermctl", &parsed)

	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return Parsed{}, err
	}
	if parsed.ShowHelp && parsed.Help == "" {
		parsed.Help = root.UsageString()
	}
	return parsed, nil
}

// HelpText renders the top-level usage for binaryName.
func HelpText(binaryName string) string {
	var parsed Parsed
	return newRoot(binaryName, &parsed).UsageString()
}

func newRoot(binaryName string, parsed *Parsed) *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:   binaryName,
		Short: "Drive iTerm2 windows, tabs and sessions over its API socket",
		Long: `Drive iTerm2 through its WebSocket API on the local unix socket.

Authentication uses ITERM2_COOKIE or ITERM2_KEY when set; otherwise iTerm2
must allow all apps to connect (Settings > General > Magic).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				parsed.Command = CommandVersion
				parsed.ShowHelp = false
				return nil
			}
			parsed.Help = cmd.UsageString()
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		parsed.Command = CommandHelp
		parsed.ShowHelp = true
		parsed.Help = cmd.UsageString()
	})

	root.PersistentFlags().StringVar(&parsed.ConfigPath, "config", "", "Config file path (default: $XDG_CONFIG_HOME/itermctl/config.toml)")
	root.Flags().BoolVar(&showVersion, "version", false, "Show version")

	selectCommand := func(c Command) func(*cobra.Command, []string) error {
		return func(*cobra.Command, []string) error {
			parsed.Command = c
			parsed.ShowHelp = false
			return nil
		}
	}

	windows := &cobra.Command{
		Use:   "windows",
		Short: "List windows with their tabs and sessions",
		Args:  cobra.NoArgs,
		RunE:  selectCommand(CommandWindows),
	}

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "List buried sessions (sessions outside any window)",
		Args:  cobra.NoArgs,
		RunE:  selectCommand(CommandSessions),
	}

	newWindow := &cobra.Command{
		Use:   "new-window",
		Short: "Open a window and print its session id",
		Args:  cobra.NoArgs,
		RunE:  selectCommand(CommandNewWindow),
	}
	newWindow.Flags().StringVar(&parsed.Profile, "profile", "", "Profile name (default: config default_profile)")

	newTab := &cobra.Command{
		Use:   "new-tab",
		Short: "Open a tab in an existing window and print its session id",
		Args:  cobra.NoArgs,
		RunE:  selectCommand(CommandNewTab),
	}
	newTab.Flags().StringVar(&parsed.WindowID, "window", "", "Target window id")
	newTab.Flags().StringVar(&parsed.Profile, "profile", "", "Profile name (default: config default_profile)")
	_ = newTab.MarkFlagRequired("window")

	sendText := &cobra.Command{
		Use:   "send-text SESSION TEXT",
		Short: "Type TEXT into SESSION",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed.SessionID = args[0]
			parsed.Text = args[1]
			return selectCommand(CommandSendText)(cmd, args)
		},
	}
	sendText.Flags().BoolVar(&parsed.Enter, "enter", false, "Append a carriage return so the shell runs the text")

	layout := &cobra.Command{
		Use:   "layout",
		Short: "Open a window with several tabs in one directory",
		Long: `Open a window, add tabs until it holds --tabs of them, cd each into --dir,
and run --run in the first --run-count tabs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if parsed.Layout.Tabs < 1 {
				return errors.New("--tabs must be >= 1")
			}
			if parsed.Layout.RunCount < 0 {
				return errors.New("--run-count must be >= 0")
			}
			return selectCommand(CommandLayout)(cmd, args)
		},
	}
	layout.Flags().IntVar(&parsed.Layout.Tabs, "tabs", 4, "Number of tabs in the window")
	layout.Flags().StringVar(&parsed.Layout.Dir, "dir", "", "Working directory for every tab")
	layout.Flags().StringVar(&parsed.Layout.Run, "run", "", "Command line to run")
	layout.Flags().IntVar(&parsed.Layout.RunCount, "run-count", 2, "Number of leading tabs that run --run")
	layout.Flags().StringVar(&parsed.Profile, "profile", "", "Profile name (default: config default_profile)")

	doctor := &cobra.Command{
		Use:   "doctor",
		Short: "Run configuration and environment checks",
		Args:  cobra.NoArgs,
		RunE:  selectCommand(CommandDoctor),
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE:  selectCommand(CommandVersion),
	}

	root.AddCommand(windows, sessions, newWindow, newTab, sendText, layout, doctor, version)
	return root
}
