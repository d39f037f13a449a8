package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/halfedge"
	"github.com/philipparndt/gomesh/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "A headless CLI tool for inspecting and editing polygon meshes",
	Long: `gomesh is a command-line tool for working with polygon meshes in
Wavefront OBJ format. It reports topology and geometry statistics,
validates mesh integrity, triangulates polygon faces and generates
procedural primitives.`,
	Version: version.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			halfedge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log mesh operation diagnostics to stderr")
}

func main() {
	loadConfig()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
