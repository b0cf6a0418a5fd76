package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dra11y/iterm2-api/internal/cli"
	"github.com/dra11y/iterm2-api/pkg/iterm2"
)

// terminal is the slice of *iterm2.Conn the commands drive.
type terminal interface {
	CreateWindow(ctx context.Context, profileName string) (iterm2.SessionSummary, error)
	CreateTab(ctx context.Context, profileName, windowID string) (iterm2.SessionSummary, error)
	SendText(ctx context.Context, sessionID, text string) error
	ListSessions(ctx context.Context) ([]iterm2.SessionSummary, error)
	GetWindows(ctx context.Context) ([]iterm2.Window, error)
}

type layoutResult struct {
	WindowID string
	Sessions []string
}

// buildLayout opens a window, grows it to opts.Tabs tabs, moves every tab into
// opts.Dir and runs opts.Run in the first opts.RunCount tabs.
func buildLayout(ctx context.Context, conn terminal, profile string, opts cli.Layout) (layoutResult, error) {
	first, err := conn.CreateWindow(ctx, profile)
	if err != nil {
		return layoutResult{}, fmt.Errorf("create window: %w", err)
	}

	windows, err := conn.GetWindows(ctx)
	if err != nil {
		return layoutResult{}, fmt.Errorf("get windows: %w", err)
	}
	windowID, err := windowOf(windows, first.UniqueIdentifier)
	if err != nil {
		return layoutResult{}, err
	}

	result := layoutResult{WindowID: windowID, Sessions: []string{first.UniqueIdentifier}}
	for len(result.Sessions) < opts.Tabs {
		session, err := conn.CreateTab(ctx, profile, windowID)
		if err != nil {
			return result, fmt.Errorf("create tab %d: %w", len(result.Sessions)+1, err)
		}
		result.Sessions = append(result.Sessions, session.UniqueIdentifier)
	}

	if opts.Dir != "" {
		cd := "cd " + shellQuote(opts.Dir) + "\r"
		for _, id := range result.Sessions {
			if err := conn.SendText(ctx, id, cd); err != nil {
				return result, fmt.Errorf("cd in %s: %w", id, err)
			}
		}
	}

	if opts.Run != "" {
		for i, id := range result.Sessions {
			if i >= opts.RunCount {
				break
			}
			if err := conn.SendText(ctx, id, opts.Run+"\r"); err != nil {
				return result, fmt.Errorf("run in %s: %w", id, err)
			}
		}
	}

	return result, nil
}

// windowOf finds the window holding sessionID, falling back to the last window.
func windowOf(windows []iterm2.Window, sessionID string) (string, error) {
	for _, w := range windows {
		for _, tab := range w.Tabs {
			for _, s := range tab.Sessions() {
				if s.UniqueIdentifier == sessionID {
					return w.WindowID, nil
				}
			}
		}
	}
	if len(windows) == 0 {
		return "", errors.New("no windows found")
	}
	return windows[len(windows)-1].WindowID, nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
