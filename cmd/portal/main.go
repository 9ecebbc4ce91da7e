package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/config"
	"github.com/vy-hr/portal-go/internal/pkg/tokenstore"
	"github.com/vy-hr/portal-go/internal/tui"
)

func main() {
	cfg, err := config.LoadPortal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	baseURL := pflag.String("base-url", cfg.BaseURL, "portal API base URL")
	tokenPath := pflag.String("token-path", cfg.TokenPath, "credential file location")
	pflag.Parse()

	// The terminal owns stdout; anything the client logs goes to a file so
	// it cannot corrupt the UI.
	if logFile, err := os.OpenFile("portal.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, nil)))
	}

	tokens, err := tokenstore.New(*tokenPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening credential store:", err)
		os.Exit(1)
	}

	client := api.NewClient(*baseURL, tokens.Load).
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout})

	program := tea.NewProgram(tui.NewApp(client, tokens), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running portal:", err)
		os.Exit(1)
	}
}
