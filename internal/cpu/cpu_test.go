package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()

	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	// SSE2 is part of the amd64 baseline; its absence means detection broke.
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 host reports no SSE2")
	}
}

func TestFeaturesString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		f      Features
		expect string
	}{
		{
			"no features",
			Features{Architecture: "wasm"},
			"wasm",
		},
		{
			"x86 subset",
			Features{Architecture: "amd64", HasSSE2: true, HasAVX2: true, HasFMA: true},
			"amd64 sse2 avx2 fma",
		},
		{
			"arm",
			Features{Architecture: "arm64", HasNEON: true},
			"arm64 neon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.f.String(); got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestDetectFeaturesStringIsWellFormed(t *testing.T) {
	t.Parallel()

	s := DetectFeatures().String()

	if s == "" {
		t.Fatal("String() returned an empty summary")
	}

	if !strings.HasPrefix(s, runtime.GOARCH) {
		t.Errorf("String() = %q, want a %q prefix", s, runtime.GOARCH)
	}
}
