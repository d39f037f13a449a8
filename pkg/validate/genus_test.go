package validate

import (
	"errors"
	"testing"

	"github.com/philipparndt/gomesh/pkg/halfedge"
)

func TestEulerCharacteristic(t *testing.T) {
	cases := []struct {
		name string
		mesh *halfedge.Mesh
		chi  int
	}{
		{"quad", quadMesh(t), 1},
		{"box", boxMesh(t), 2},
		{"torus", torusMesh(t), 0},
	}
	for _, tc := range cases {
		chi, err := EulerCharacteristic(tc.mesh)
		if err != nil {
			t.Fatalf("%s: EulerCharacteristic failed: %v", tc.name, err)
		}
		if chi != tc.chi {
			t.Errorf("%s: chi = %d, want %d", tc.name, chi, tc.chi)
		}
	}
}

func TestGenusSphere(t *testing.T) {
	g, err := Genus(boxMesh(t))
	if err != nil {
		t.Fatalf("Genus failed: %v", err)
	}
	if g != 0 {
		t.Errorf("genus = %d, want 0", g)
	}
}

func TestGenusTorus(t *testing.T) {
	g, err := Genus(torusMesh(t))
	if err != nil {
		t.Fatalf("Genus failed: %v", err)
	}
	if g != 1 {
		t.Errorf("genus = %d, want 1", g)
	}
}

func TestGenusOpenSurface(t *testing.T) {
	if _, err := Genus(quadMesh(t)); !errors.Is(err, ErrOpenSurface) {
		t.Errorf("expected ErrOpenSurface, got %v", err)
	}
}

func TestGenusNonManifold(t *testing.T) {
	if _, err := Genus(fanMesh(t)); !errors.Is(err, ErrNonManifold) {
		t.Errorf("expected ErrNonManifold, got %v", err)
	}
}
