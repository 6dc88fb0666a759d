package core

import (
	"golang.org/x/sys/cpu"
)

// SIMDLevel names the widest vector extension the running CPU reports.
// The distance functions dispatch on their own; this is informational.
func SIMDLevel() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.X86.HasAVX:
		return "avx"
	case cpu.ARM64.HasASIMD:
		return "neon"
	default:
		return "generic"
	}
}
