package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/validate"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display topology and geometry statistics for an OBJ mesh",
	Long: `Show mesh statistics including element counts, face arities, edge
classification, boundary loops, connected components, genus, bounding
box and surface area.`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := obj.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading OBJ file: %v\n", err)
		os.Exit(1)
	}
	m := model.Mesh

	triangles, quads, ngons := 0, 0, 0
	surfaceArea := 0.0
	for _, f := range m.LiveFaces() {
		sides, err := m.FaceSides(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading face %d: %v\n", f, err)
			os.Exit(1)
		}
		switch sides {
		case 3:
			triangles++
		case 4:
			quads++
		default:
			ngons++
		}

		area, err := m.FaceArea(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading face %d: %v\n", f, err)
			os.Exit(1)
		}
		surfaceArea += area
	}

	stats, err := validate.CountEdges(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}
	loops, err := m.BoundaryEdgeLoops(m.LiveFaces())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}
	components, err := validate.ConnectedComponents(m, validate.AdjacencyVertex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Elements:")
	fmt.Printf("  Vertices: %d\n", m.NumVertices())
	fmt.Printf("  Faces: %d (triangles: %d, quads: %d, n-gons: %d)\n", m.NumLiveFaces(), triangles, quads, ngons)
	fmt.Printf("  Edges: %d\n\n", stats.Total())

	fmt.Println("Topology:")
	fmt.Printf("  Boundary edges: %d\n", stats.Boundary)
	fmt.Printf("  Manifold edges: %d\n", stats.Manifold)
	fmt.Printf("  Non-manifold edges: %d\n", stats.NonManifold)
	fmt.Printf("  Boundary loops: %d\n", len(loops))
	fmt.Printf("  Connected components: %d\n", len(components))
	fmt.Printf("  Watertight: %v\n", stats.Boundary == 0)
	fmt.Printf("  Manifold: %v\n", stats.NonManifold == 0)

	genus, err := validate.Genus(m)
	switch {
	case err == nil:
		fmt.Printf("  Genus: %d\n\n", genus)
	case errors.Is(err, validate.ErrOpenSurface):
		fmt.Printf("  Genus: n/a (open surface)\n\n")
	case errors.Is(err, validate.ErrNonManifold):
		fmt.Printf("  Genus: n/a (non-manifold)\n\n")
	default:
		fmt.Fprintf(os.Stderr, "Error computing genus: %v\n", err)
		os.Exit(1)
	}

	bbox := geometry.BoundsOf(m.Positions())
	if !bbox.IsEmpty() {
		size := bbox.Size()
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", formatVector(bbox.Min))
		fmt.Printf("  Max: %s\n", formatVector(bbox.Max))
		fmt.Printf("  Center: %s\n", formatVector(bbox.Center()))
		fmt.Printf("  Size: %.6f x %.6f x %.6f units\n", size.X, size.Y, size.Z)
		fmt.Printf("  Diagonal: %.6f units\n\n", bbox.Diagonal())
	}

	fmt.Printf("Surface Area: %.6f square units\n", surfaceArea)
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
