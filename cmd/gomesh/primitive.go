package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/halfedge"
	"github.com/philipparndt/gomesh/pkg/obj"
	"github.com/philipparndt/gomesh/pkg/primitive"
)

var (
	primWidth       float64
	primDepth       float64
	primHeight      float64
	primRadius      float64
	primMinorRadius float64
	primSegments    int
	primRings       int
	primNoCaps      bool
)

var primitiveCmd = &cobra.Command{
	Use:   "primitive [type] [output]",
	Short: "Generate a procedural primitive mesh as OBJ",
	Long: `Generate a primitive mesh and write it as OBJ. Types: plane, box,
sphere, cylinder, torus.

Flags left at zero use the primitive's defaults. For the plane,
--segments and --rings set the X and Y subdivisions. For the torus,
--radius and --minor-radius set the two radii, and --segments and
--rings the major and minor segment counts.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"plane", "box", "sphere", "cylinder", "torus"},
	Run:       runPrimitive,
}

func init() {
	rootCmd.AddCommand(primitiveCmd)

	primitiveCmd.Flags().Float64Var(&primWidth, "width", 0, "Width (plane, box)")
	primitiveCmd.Flags().Float64Var(&primDepth, "depth", 0, "Depth (plane, box)")
	primitiveCmd.Flags().Float64Var(&primHeight, "height", 0, "Height (box, cylinder)")
	primitiveCmd.Flags().Float64Var(&primRadius, "radius", 0, "Radius (sphere, cylinder, torus major)")
	primitiveCmd.Flags().Float64Var(&primMinorRadius, "minor-radius", 0, "Minor radius (torus)")
	primitiveCmd.Flags().IntVar(&primSegments, "segments", 0, "Segments around (sphere, cylinder, torus major, plane X)")
	primitiveCmd.Flags().IntVar(&primRings, "rings", 0, "Rings (sphere, torus minor, plane Y)")
	primitiveCmd.Flags().BoolVar(&primNoCaps, "no-caps", false, "Leave cylinder ends open")
}

func runPrimitive(cmd *cobra.Command, args []string) {
	kind, output := args[0], args[1]

	var (
		m   *halfedge.Mesh
		err error
	)
	switch kind {
	case "plane":
		m, err = primitive.Plane(primitive.PlaneOptions{
			Width:     primWidth,
			Depth:     primDepth,
			SegmentsX: primSegments,
			SegmentsY: primRings,
		})
	case "box":
		m, err = primitive.Box(primitive.BoxOptions{
			Width:  primWidth,
			Depth:  primDepth,
			Height: primHeight,
		})
	case "sphere":
		m, err = primitive.Sphere(primitive.SphereOptions{
			Radius:   primRadius,
			Segments: primSegments,
			Rings:    primRings,
		})
	case "cylinder":
		m, err = primitive.Cylinder(primitive.CylinderOptions{
			Radius:   primRadius,
			Height:   primHeight,
			Segments: primSegments,
			NoCaps:   primNoCaps,
		})
	case "torus":
		m, err = primitive.Torus(primitive.TorusOptions{
			MajorRadius:   primRadius,
			MinorRadius:   primMinorRadius,
			MajorSegments: primSegments,
			MinorSegments: primRings,
		})
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown primitive type %q\n", kind)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", kind, err)
		os.Exit(1)
	}

	model := &obj.Model{Name: kind, Mesh: m}
	if err := obj.Save(output, model); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing OBJ file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s: %d vertices, %d faces\n", output, m.NumVertices(), m.NumLiveFaces())
}
