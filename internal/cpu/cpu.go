// Package cpu reports host CPU capabilities for diagnostic output.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the vector instruction sets available on the host.
// The scalar kernels themselves are portable Go; the benchmark tool records
// these alongside its timings so results from different hosts stay
// comparable.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
// Flags for foreign architectures are always false.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String returns a compact single-line summary, e.g. "amd64 sse2 avx2 fma".
func (f Features) String() string {
	parts := []string{f.Architecture}

	if f.HasSSE2 {
		parts = append(parts, "sse2")
	}

	if f.HasAVX {
		parts = append(parts, "avx")
	}

	if f.HasAVX2 {
		parts = append(parts, "avx2")
	}

	if f.HasAVX512 {
		parts = append(parts, "avx512")
	}

	if f.HasFMA {
		parts = append(parts, "fma")
	}

	if f.HasNEON {
		parts = append(parts, "neon")
	}

	return strings.Join(parts, " ")
}
