package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tclc/internal/driver"
	"tclc/internal/ir"
	"tclc/internal/printer"
)

var lowerOut string

var lowerCmd = &cobra.Command{
	Use:   "lower <case.json>",
	Short: "Parse and lower one case file to C source",
	Args:  cobra.ExactArgs(1),
	RunE:  runLower,
}

func init() {
	lowerCmd.Flags().StringVarP(&lowerOut, "output", "o", "", "write generated C source to this file instead of stdout")
}

// printToString renders k via internal/printer into a string, the
// shape driver.Lower expects so the driver package stays decoupled
// from the concrete renderer.
func printToString(k *ir.Kernel) (string, error) {
	var buf bytes.Buffer
	if err := printer.Print(&buf, k); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func runLower(cmd *cobra.Command, args []string) error {
	applyColor(cmd)
	c, err := driver.LoadCase(args[0])
	if err != nil {
		return fmt.Errorf("tclc lower: %w", err)
	}

	res, err := driver.Lower(c, maxDiagnostics(cmd), printToString)
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

	if lowerOut != "" {
		return os.WriteFile(lowerOut, []byte(res.Code), 0o600)
	}
	fmt.Fprint(os.Stdout, res.Code)
	return nil
}
