package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tclc/internal/config"
	"tclc/internal/driver"
	"tclc/internal/ui"
)

var runLint bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Batch-process the configured case range",
	Long: `run lowers every case file in the configured range (tclc.toml, or the
default ./cases 1..20 skipping 6, 8, 10) and writes generated C source to the
configured kernels directory. --lint runs a concurrent read-only dry run that
only collects diagnostics, writing nothing.`,
	RunE: runBatch,
}

func init() {
	runCmd.Flags().BoolVar(&runLint, "lint", false, "concurrent read-only dry run: parse every case, write nothing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	applyColor(cmd)
	cfg, err := config.Load("tclc.toml")
	if err != nil {
		return fmt.Errorf("tclc run: %w", err)
	}

	caseNames := caseNamesFor(cfg)
	maxDiag := maxDiagnostics(cmd)

	if !isTerminal(os.Stdout) || quiet(cmd) {
		sink := ui.PlainSink{W: os.Stderr}
		result := executeBatch(cmd.Context(), cfg, maxDiag, sink)
		printSummary(result)
		return nil
	}

	events := make(chan driver.Event, 64)
	sink := driver.ChannelSink{Ch: events}
	title := "tclc run"
	if runLint {
		title = "tclc run --lint"
	}
	model := ui.NewProgressModel(title, caseNames, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))

	resultCh := make(chan driver.BatchResult, 1)
	go func() {
		resultCh <- executeBatch(cmd.Context(), cfg, maxDiag, sink)
		close(events)
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tclc run: %w", err)
	}
	printSummary(<-resultCh)
	return nil
}

// caseNamesFor lists the non-skipped case names in cfg's configured
// range, in order, for the progress view's fixed item list.
func caseNamesFor(cfg config.Config) []string {
	names := make([]string, 0, cfg.LastCase-cfg.FirstCase+1)
	for n := cfg.FirstCase; n <= cfg.LastCase; n++ {
		if !cfg.Skips(int64(n)) {
			names = append(names, fmt.Sprintf("case_%d", n))
		}
	}
	return names
}

func executeBatch(ctx context.Context, cfg config.Config, maxDiag int, sink driver.ProgressSink) driver.BatchResult {
	if runLint {
		return driver.Lint(ctx, cfg, maxDiag, printToString, sink)
	}
	return driver.Run(cfg, maxDiag, printToString, sink)
}

func printSummary(result driver.BatchResult) {
	fmt.Printf("processed: %d, skipped: %d, failed: %d\n", result.Processed, result.Skipped, len(result.Failed))
	for _, name := range result.Failed {
		fmt.Printf("  failed: %s\n", name)
	}
}
