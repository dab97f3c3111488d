package math

import (
	"math"
	"testing"
)

func TestAbs32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      float32
		expect float32
	}{
		{"positive", 3.5, 3.5},
		{"negative", -3.5, 3.5},
		{"zero", 0, 0},
		{"negative zero", float32(math.Copysign(0, -1)), 0},
		{"max float32", math.MaxFloat32, math.MaxFloat32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Abs32(tt.x)
			if got != tt.expect {
				t.Errorf("Abs32(%v) = %v, want %v", tt.x, got, tt.expect)
			}

			if math.Signbit(float64(got)) {
				t.Errorf("Abs32(%v) has the sign bit set", tt.x)
			}
		})
	}

	if got := Abs32(float32(math.Inf(-1))); !math.IsInf(float64(got), 1) {
		t.Errorf("Abs32(-Inf) = %v, want +Inf", got)
	}
}

func TestSqrt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      float32
		expect float32
	}{
		{"perfect square", 4, 2},
		{"zero", 0, 0},
		{"fraction", 0.25, 0.5},
		{"irrational", 2, float32(math.Sqrt2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sqrt32(tt.x); got != tt.expect {
				t.Errorf("Sqrt32(%v) = %v, want %v", tt.x, got, tt.expect)
			}
		})
	}

	if got := Sqrt32(-1); !math.IsNaN(float64(got)) {
		t.Errorf("Sqrt32(-1) = %v, want NaN", got)
	}
}

func TestExp32(t *testing.T) {
	t.Parallel()

	if got := Exp32(0); got != 1 {
		t.Errorf("Exp32(0) = %v, want 1", got)
	}

	if got, want := Exp32(1), float32(math.E); got != want {
		t.Errorf("Exp32(1) = %v, want %v", got, want)
	}

	// Beyond the float32 range the narrowed result saturates.
	if got := Exp32(89); !math.IsInf(float64(got), 1) {
		t.Errorf("Exp32(89) = %v, want +Inf", got)
	}

	if got := Exp32(-104); got != 0 {
		t.Errorf("Exp32(-104) = %v, want 0", got)
	}
}

func TestAbsC64(t *testing.T) {
	t.Parallel()

	if got := AbsC64(complex(3, 4)); got != 5 {
		t.Errorf("AbsC64(3+4i) = %v, want 5", got)
	}

	// The float64 hypot path stays finite where float32 squaring overflows.
	got := AbsC64(complex(1e20, 1e20))
	want := math.Sqrt2 * 1e20

	if math.IsInf(float64(got), 0) {
		t.Fatalf("AbsC64(1e20+1e20i) = %v, want a finite magnitude", got)
	}

	if math.Abs(float64(got)-want) > want*1e-6 {
		t.Errorf("AbsC64(1e20+1e20i) = %v, want %v within 1e-6 relative", got, want)
	}
}

func TestSqrtC64(t *testing.T) {
	t.Parallel()

	if got, want := SqrtC64(complex(-4, 0)), complex64(complex(0, 2)); got != want {
		t.Errorf("SqrtC64(-4+0i) = %v, want %v", got, want)
	}

	if got, want := SqrtC64(complex(4, 0)), complex64(complex(2, 0)); got != want {
		t.Errorf("SqrtC64(4+0i) = %v, want %v", got, want)
	}
}

func TestExpC64(t *testing.T) {
	t.Parallel()

	if got, want := ExpC64(0), complex64(complex(1, 0)); got != want {
		t.Errorf("ExpC64(0) = %v, want %v", got, want)
	}

	got := ExpC64(complex(0, float32(math.Pi)))
	if math.Abs(float64(real(got))+1) > 1e-6 {
		t.Errorf("ExpC64(iπ) = %v, want real part -1", got)
	}
}
