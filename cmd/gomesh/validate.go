package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/halfedge"
	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/validate"
	"github.com/philipparndt/gomesh/pkg/watcher"
)

var (
	validateEpsilon float64
	validateWatch   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an OBJ mesh for structural and geometric defects",
	Long: `Validate mesh integrity: broken references, ring closure, twin
symmetry, duplicate vertices, degenerate faces, non-normalized normals
and winding consistency. Exits non-zero if structural errors are found.

With --watch, the file is re-validated every time it changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Float64Var(&validateEpsilon, "epsilon", validate.DefaultPositionTolerance, "Distance below which two vertices count as duplicates")
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "Re-validate whenever the file changes")
}

func runValidate(cmd *cobra.Command, args []string) {
	filename := args[0]

	if !cmd.Flags().Changed("epsilon") && config.Validate.Epsilon > 0 {
		validateEpsilon = config.Validate.Epsilon
	}

	if validateWatch {
		watchValidate(filename)
		return
	}
	if !validateFile(filename) {
		os.Exit(1)
	}
}

// validateFile prints a report and reports whether the mesh passed.
func validateFile(filename string) bool {
	model, err := obj.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading OBJ file: %v\n", err)
		return false
	}
	m := model.Mesh

	opts := validate.DefaultOptions()
	opts.PositionTolerance = validateEpsilon
	report := validate.CheckMesh(m, opts)

	fmt.Println("Validation Report")
	fmt.Println("=================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Vertices: %d, Faces: %d\n\n", m.NumVertices(), m.NumLiveFaces())

	if len(report.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(report.Errors))
		for _, e := range report.Errors {
			fmt.Printf("  - %s\n", e)
		}
		fmt.Println()
	}
	if len(report.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(report.Warnings))
		for _, w := range report.Warnings {
			fmt.Printf("  - %s\n", w)
		}
		fmt.Println()
	}

	switch {
	case report.Valid && len(report.Warnings) == 0:
		fmt.Println("Mesh is clean.")
	case report.Valid:
		fmt.Println("Mesh is structurally valid.")
	default:
		fmt.Println("Mesh has structural errors.")
	}
	return report.Valid
}

// watchValidate re-runs validation on every change until interrupted.
func watchValidate(filename string) {
	debounce := 300 * time.Millisecond
	if config.Watch.DebounceMS > 0 {
		debounce = time.Duration(config.Watch.DebounceMS) * time.Millisecond
	}

	w, err := watcher.New(debounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()
	w.SetLogger(halfedge.Logger())

	validateFile(filename)

	err = w.Watch([]string{filename}, func(path string) {
		fmt.Printf("\n--- %s changed at %s ---\n\n", path, time.Now().Format("15:04:05"))
		validateFile(path)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
		os.Exit(1)
	}
	w.Start()

	fmt.Printf("\nWatching %s for changes (Ctrl+C to stop)\n", filename)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
