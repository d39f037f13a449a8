package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/triangulate"
)

var (
	triOptimal bool
	triEarClip bool
)

var triangulateCmd = &cobra.Command{
	Use:   "triangulate [input] [output]",
	Short: "Triangulate all polygon faces of an OBJ mesh",
	Long: `Split every quad and n-gon face into triangles. By default quads
split along their first diagonal and n-gons fan from their first
corner; --optimal and --earclip select the better-conditioned
variants.

Texture coordinates and material assignments carry over to the new
triangles.`,
	Args: cobra.ExactArgs(2),
	Run:  runTriangulate,
}

func init() {
	rootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().BoolVar(&triOptimal, "optimal", false, "Split quads along their shorter diagonal")
	triangulateCmd.Flags().BoolVar(&triEarClip, "earclip", false, "Ear-clip n-gons instead of fanning (handles concave faces)")
}

func runTriangulate(cmd *cobra.Command, args []string) {
	input, output := args[0], args[1]

	if !cmd.Flags().Changed("optimal") {
		triOptimal = config.Triangulate.Optimal
	}
	if !cmd.Flags().Changed("earclip") {
		triEarClip = config.Triangulate.EarClip
	}

	model, err := obj.Load(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading OBJ file: %v\n", err)
		os.Exit(1)
	}
	m := model.Mesh
	before := m.NumLiveFaces()

	opts := triangulate.DefaultOptions()
	if triOptimal {
		opts.Quads = triangulate.QuadOptimal
	}
	if triEarClip {
		opts.NGons = triangulate.NGonEarClip
	}

	result, err := triangulate.All(m, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error triangulating: %v\n", err)
		os.Exit(1)
	}

	if err := obj.Save(output, model); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing OBJ file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Split %d faces into %d triangles (%d already triangles)\n",
		len(result.FaceMap), len(result.Faces), before-len(result.FaceMap))
	fmt.Printf("Wrote %s: %d vertices, %d faces\n", output, m.NumVertices(), m.NumLiveFaces())
}
