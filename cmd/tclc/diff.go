package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tclc/internal/driver"
)

var diffOut string

var diffCmd = &cobra.Command{
	Use:   "diff <case.json>",
	Short: "Differentiate one case's kernel against its grad_to targets",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffOut, "output", "o", "", "write generated cases as a JSON array to this file instead of stdout")
}

func runDiff(cmd *cobra.Command, args []string) error {
	applyColor(cmd)
	c, err := driver.LoadCase(args[0])
	if err != nil {
		return fmt.Errorf("tclc diff: %w", err)
	}

	res, err := driver.Diff(c, maxDiagnostics(cmd))
	if err != nil {
		if !quiet(cmd) {
			color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}
	for _, d := range res.Diags.Items() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Code, d.Message)
	}

	data, err := json.MarshalIndent(res.Cases, "", "  ")
	if err != nil {
		return err
	}
	if diffOut != "" {
		return os.WriteFile(diffOut, data, 0o600)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
