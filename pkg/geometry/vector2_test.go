package geometry

import (
	"math"
	"testing"
)

func TestVector2Cross(t *testing.T) {
	v1 := NewVector2(1, 0)
	v2 := NewVector2(0, 1)
	result := v1.Cross(v2)

	expected := 1.0
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Lerp(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(4, 8)
	result := v1.Lerp(v2, 0.25)

	expected := NewVector2(1, 2)
	if result != expected {
		t.Errorf("Lerp failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}
