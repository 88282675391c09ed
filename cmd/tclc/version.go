package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tclc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tclc build information",
	Run: func(cmd *cobra.Command, args []string) {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Printf("tclc %s\n", v)
		if c := strings.TrimSpace(version.GitCommit); c != "" {
			fmt.Printf("commit: %s\n", c)
		}
		if d := strings.TrimSpace(version.BuildDate); d != "" {
			fmt.Printf("built:  %s\n", d)
		}
	},
}
