// Command daa-visual serves the shortest-path visualizer backend and runs
// traced Dijkstra / Bellman-Ford from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("daa-visual version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("daa-visual version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "daa-visual",
		Short:        "daa-visual: step-by-step shortest-path visualizer",
		Version:      versionString(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
