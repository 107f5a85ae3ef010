// Package cli provides the coralbay command-line interface: the full booking
// flow (search, book, pay, confirm) and later booking management (show,
// modify, cancel), all over the JSON-file booking store.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tvxk/coralbay/booking"
	"github.com/tvxk/coralbay/catalog"
	"github.com/tvxk/coralbay/pricing"
	"github.com/tvxk/coralbay/telemetry"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"}).Bold(true)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// openStore binds the booking store to the configured data file.
func (g *Globals) openStore() *booking.Store {
	return booking.NewStore(g.Data)
}

// openCatalog loads the room catalog, falling back to the built-in rooms
// when the configured file is absent or unreadable.
func (g *Globals) openCatalog() *catalog.Catalog {
	return catalog.Load(g.Rooms)
}

func (g *Globals) rates() pricing.Rates {
	return pricing.DefaultRates()
}

// withTelemetry wires a timing collector into the context when --telemetry
// is set. The returned report function prints the collected tree; it is safe
// to call on every exit path, it only reports once.
func (g *Globals) withTelemetry(ctx *kong.Context, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !g.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)

	rootTimer := collector.Start(fmt.Sprintf("%s %s", name, filepath.Base(g.Data)))
	runCtx = telemetry.WithRootTimer(runCtx, rootTimer)

	reported := false
	return runCtx, func() {
		if reported {
			return
		}
		reported = true
		rootTimer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr)
	}
}
