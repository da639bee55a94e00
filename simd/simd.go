// Package simd provides the byte-scanning primitives used by attribute
// matching: single and dual byte search, byte-class search, and ASCII case
// folding.
//
// All routines work on borrowed slices and never allocate. Searches fall
// back to SWAR (SIMD Within A Register) code that processes 8 bytes per
// iteration; on x86-64 hosts with AVX2, long single-byte searches are routed
// to the runtime's vectorized byte search instead.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
	// cpu.X86 is zero-valued on non-x86 platforms, so this is false there.
	hasAVX2 = cpu.X86.HasAVX2
)

// vectorThreshold is the haystack length from which a vectorized search
// amortizes its setup cost. Below it, SWAR or byte loops win.
const vectorThreshold = 32

// SWAR constants shared by the generic implementations.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)
