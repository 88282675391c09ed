package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether f is attached to an interactive terminal,
// used to decide between a live progress view and plain line logging.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color flag (auto|on|off) against
// whether stdout is a terminal.
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func applyColor(cmd *cobra.Command) {
	color.NoColor = !colorEnabled(cmd)
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if n <= 0 {
		return 100
	}
	return n
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
