package aperture

import (
	"errors"
	"math"
	"testing"
)

func TestNewJaws(t *testing.T) {
	tests := []struct {
		name           string
		x1, x2, y1, y2 float64
		want           Jaws
	}{
		{"ordered", -10, 10, -20, 20, Jaws{-10, 10, -20, 20}},
		{"reversed", 10, -10, 20, -20, Jaws{-10, 10, -20, 20}},
		{"degenerate", 5, 5, -20, 20, Jaws{5, 5, -20, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewJaws(tt.x1, tt.x2, tt.y1, tt.y2); got != tt.want {
				t.Errorf("NewJaws() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestJawsDimensions(t *testing.T) {
	j := Jaws{XMin: -78.1, XMax: 87.3, YMin: -90, YMax: 100}
	if w := j.Width(); math.Abs(w-165.4) > 1e-9 {
		t.Errorf("Width() = %v, want 165.4", w)
	}
	if h := j.Height(); h != 190 {
		t.Errorf("Height() = %v, want 190", h)
	}
}

func TestJawsRect(t *testing.T) {
	rect := Jaws{XMin: -10, XMax: 30, YMin: -20, YMax: 20}.Rect()
	if len(rect) != 1 {
		t.Fatalf("Rect() has %d rings, want 1", len(rect))
	}
	if len(rect[0]) != 4 {
		t.Fatalf("Rect() ring has %d points, want 4", len(rect[0]))
	}
	if a := rect.Area(); math.Abs(a-1600) > 1e-9 {
		t.Errorf("Rect().Area() = %v, want 1600", a)
	}
}

func TestBuildJawOnly(t *testing.T) {
	jaws := Jaws{XMin: -50, XMax: 50, YMin: -40, YMax: 40}

	shape, err := Build(jaws, Leaves{}, nil)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if a := Area(shape); math.Abs(a-8000) > 1e-9 {
		t.Errorf("Area() = %v, want 8000", a)
	}
	x, y := XYPathLengths(shape)
	if math.Abs(x-200) > 1e-9 || math.Abs(y-160) > 1e-9 {
		t.Errorf("XYPathLengths() = (%v, %v), want (200, 160)", x, y)
	}
}

func TestBuildLeafAperture(t *testing.T) {
	// Two leaf pairs forming a 40x20 opening.
	leaves := Leaves{
		Orientation: MLCX,
		A:           []float64{-20, -20},
		B:           []float64{20, 20},
	}
	boundaries := []float64{-10, 0, 10}

	tests := []struct {
		name     string
		jaws     Jaws
		wantArea float64
	}{
		{"open jaws", Jaws{-50, 50, -50, 50}, 800},
		{"jaws clip x", Jaws{-10, 50, -50, 50}, 600},
		{"jaws clip both", Jaws{-10, 10, -5, 5}, 200},
		{"jaws block opening", Jaws{30, 40, -50, 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := Build(tt.jaws, leaves, boundaries)
			if err != nil {
				t.Fatalf("Build() failed: %v", err)
			}
			if a := Area(shape); math.Abs(a-tt.wantArea) > 1e-6 {
				t.Errorf("Area() = %v, want %v", a, tt.wantArea)
			}
			if jawArea := tt.jaws.Rect().Area(); Area(shape) > jawArea+1e-6 {
				t.Errorf("Area() = %v exceeds jaw area %v", Area(shape), jawArea)
			}
		})
	}
}

func TestBuildLeafAperturePathLengths(t *testing.T) {
	leaves := Leaves{
		Orientation: MLCX,
		A:           []float64{-20, -20},
		B:           []float64{20, 20},
	}
	shape, err := Build(Jaws{-50, 50, -50, 50}, leaves, []float64{-10, 0, 10})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// A 40x20 rectangular opening decomposes to (80, 40).
	x, y := XYPathLengths(shape)
	if math.Abs(x-80) > 1e-6 || math.Abs(y-40) > 1e-6 {
		t.Errorf("XYPathLengths() = (%v, %v), want (80, 40)", x, y)
	}
}

func TestBuildMLCYOrientation(t *testing.T) {
	// Same opening rotated: leaves travel along y.
	leaves := Leaves{
		Orientation: MLCY,
		A:           []float64{-20, -20},
		B:           []float64{20, 20},
	}
	shape, err := Build(Jaws{-50, 50, -50, 50}, leaves, []float64{-10, 0, 10})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if a := Area(shape); math.Abs(a-800) > 1e-6 {
		t.Errorf("Area() = %v, want 800", a)
	}
	x, y := XYPathLengths(shape)
	if math.Abs(x-40) > 1e-6 || math.Abs(y-80) > 1e-6 {
		t.Errorf("XYPathLengths() = (%v, %v), want (40, 80)", x, y)
	}
}

func TestBuildCrossedLeaves(t *testing.T) {
	// The second pair crosses: bank A sits beyond bank B. The outline is
	// self-intersecting and must be regularized, not rejected, and the
	// inverted lobe between the crossed banks stays open: 40x10 for the
	// open pair plus 20x10 for the crossed one.
	leaves := Leaves{
		Orientation: MLCX,
		A:           []float64{-20, 10},
		B:           []float64{20, -10},
	}
	jaws := Jaws{-50, 50, -50, 50}

	shape, err := Build(jaws, leaves, []float64{-10, 0, 10})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if a := Area(shape); math.Abs(a-600) > 1e-6 {
		t.Errorf("Area() = %v, want 600", a)
	}
}

func TestBuildValidation(t *testing.T) {
	jaws := Jaws{-50, 50, -50, 50}

	tests := []struct {
		name       string
		leaves     Leaves
		boundaries []float64
		wantErr    error
	}{
		{
			"bank mismatch",
			Leaves{Orientation: MLCX, A: []float64{-20, -20}, B: []float64{20}},
			[]float64{-10, 0, 10},
			ErrBankMismatch,
		},
		{
			"boundary mismatch",
			Leaves{Orientation: MLCX, A: []float64{-20, -20}, B: []float64{20, 20}},
			[]float64{-10, 10},
			ErrBoundaryMismatch,
		},
		{
			"missing boundaries",
			Leaves{Orientation: MLCX, A: []float64{-20}, B: []float64{20}},
			nil,
			ErrBoundaryMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(jaws, tt.leaves, tt.boundaries)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{None, "none"},
		{MLCX, "mlcx"},
		{MLCY, "mlcy"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
