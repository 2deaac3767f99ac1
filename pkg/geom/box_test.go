package geom

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlaps(t *testing.T) {
	base := BoxAt(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 1, 1))

	tests := []struct {
		name  string
		other rl.BoundingBox
		want  bool
	}{
		{"identical", base, true},
		{"contained", BoxAt(rl.NewVector3(0, 0, 0), rl.NewVector3(0.2, 0.2, 0.2)), true},
		{"partial overlap", BoxAt(rl.NewVector3(1.5, 0, 0), rl.NewVector3(1, 1, 1)), true},
		{"touching faces", BoxAt(rl.NewVector3(2, 0, 0), rl.NewVector3(1, 1, 1)), true},
		{"separated on X", BoxAt(rl.NewVector3(2.001, 0, 0), rl.NewVector3(1, 1, 1)), false},
		{"separated on Y", BoxAt(rl.NewVector3(0, 3, 0), rl.NewVector3(1, 1, 1)), false},
		{"separated on Z", BoxAt(rl.NewVector3(0, 0, -5), rl.NewVector3(1, 1, 1)), false},
		{"overlap XY but not Z", BoxAt(rl.NewVector3(0.5, 0.5, 4), rl.NewVector3(1, 1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Пересечение симметрично.
			if got := Overlaps(tt.other, base); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubeAt(t *testing.T) {
	box := CubeAt(rl.NewVector3(1, 2, 3), 0.5)
	if box.Min != rl.NewVector3(0.5, 1.5, 2.5) {
		t.Errorf("Min = %v, want (0.5, 1.5, 2.5)", box.Min)
	}
	if box.Max != rl.NewVector3(1.5, 2.5, 3.5) {
		t.Errorf("Max = %v, want (1.5, 2.5, 3.5)", box.Max)
	}
}

func TestHorizontalDir(t *testing.T) {
	tests := []struct {
		name     string
		from, to rl.Vector3
		want     rl.Vector3
	}{
		{"along +X", rl.NewVector3(0, 0, 0), rl.NewVector3(5, 0, 0), rl.NewVector3(1, 0, 0)},
		{"along -Z", rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, -3), rl.NewVector3(0, 0, -1)},
		{"height ignored", rl.NewVector3(0, 10, 0), rl.NewVector3(4, -2, 0), rl.NewVector3(1, 0, 0)},
		{"same column", rl.NewVector3(1, 0, 1), rl.NewVector3(1, 7, 1), rl.Vector3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HorizontalDir(tt.from, tt.to)
			if absf(got.X-tt.want.X) > 1e-6 || got.Y != 0 || absf(got.Z-tt.want.Z) > 1e-6 {
				t.Errorf("HorizontalDir = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHorizontalDirIsUnit(t *testing.T) {
	got := HorizontalDir(rl.NewVector3(-2, 0, 5), rl.NewVector3(7, 3, -11))
	lenSq := got.X*got.X + got.Z*got.Z
	if absf(lenSq-1) > 1e-5 {
		t.Errorf("|dir|² = %f, want 1", lenSq)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
