// Command tclc parses, differentiates and lowers Tensor Compute
// Language kernels.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"tclc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tclc",
	Short: "Tensor Compute Language compiler",
	Long:  `tclc parses TCL kernels, differentiates them, and lowers them to C.`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect per case")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
