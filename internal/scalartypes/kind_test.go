package scalartypes

import "testing"

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   Kind
		expect string
	}{
		{"real", KindReal, "real"},
		{"complex", KindComplex, "complex"},
		{"out of range", Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.String(); got != tt.expect {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expect)
			}
		})
	}
}

func TestCarrierKinds(t *testing.T) {
	t.Parallel()

	if got := (Float32(0)).Kind(); got != KindReal {
		t.Errorf("Float32.Kind() = %v, want %v", got, KindReal)
	}

	if got := (Float64(0)).Kind(); got != KindReal {
		t.Errorf("Float64.Kind() = %v, want %v", got, KindReal)
	}

	if got := (Complex64(0)).Kind(); got != KindComplex {
		t.Errorf("Complex64.Kind() = %v, want %v", got, KindComplex)
	}

	if got := (Complex128(0)).Kind(); got != KindComplex {
		t.Errorf("Complex128.Kind() = %v, want %v", got, KindComplex)
	}
}

func TestCarrierBits(t *testing.T) {
	t.Parallel()

	// Component bit width: Complex64 has two 32-bit components.
	if got := (Float32(0)).Bits(); got != 32 {
		t.Errorf("Float32.Bits() = %d, want 32", got)
	}

	if got := (Float64(0)).Bits(); got != 64 {
		t.Errorf("Float64.Bits() = %d, want 64", got)
	}

	if got := (Complex64(0)).Bits(); got != 32 {
		t.Errorf("Complex64.Bits() = %d, want 32", got)
	}

	if got := (Complex128(0)).Bits(); got != 64 {
		t.Errorf("Complex128.Bits() = %d, want 64", got)
	}
}
