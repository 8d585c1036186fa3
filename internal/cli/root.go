// Package cli implements the castdeck command tree. The root command runs
// the interactive browser; small utility subcommands sit beside it.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kpeters/castdeck/internal/adapter"
	"github.com/kpeters/castdeck/internal/catalog"
	"github.com/kpeters/castdeck/internal/service"
	"github.com/kpeters/castdeck/internal/source"
	"github.com/kpeters/castdeck/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// rootCmd runs the interactive catalog browser.
var rootCmd = &cobra.Command{
	Use:   "castdeck",
	Short: "castdeck — browse a podcast catalog from your terminal",
	Long: `castdeck is a terminal client for browsing a podcast catalog:
search, filter by genre, sort, and page through the show list, then drill
into a show's seasons and episodes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser()
	},
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runBrowser() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to a null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting castdeck", "version", Version)

	client := source.NewClient(cfg.Source.URL, cfg.Source.Timeout, logger)
	catalogSvc := service.NewCatalogService(client, logger)
	engine := catalog.NewEngine(logger)

	// Seed the responsive page size before the first resize event lands.
	initialWidth := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		initialWidth = w
	}

	model := tui.NewModel(catalogSvc, engine, cfg.UI.UnitsPerCell, initialWidth)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
