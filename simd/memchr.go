package simd

import "bytes"

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to bytes.IndexByte. Inputs of at least 32 bytes on AVX2
// hosts use the runtime's vectorized search; everything else goes through
// the SWAR loop in memchrGeneric.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if hasAVX2 && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// Both needles are checked in the same pass, which makes this the primitive
// for case-insensitive anchor search: pass the upper and lower case forms of
// a byte and the first occurrence of either is returned.
//
// Example:
//
//	pos := simd.Memchr2([]byte("Hello"), 'l', 'L')
//	// pos == 2
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if needle1 == needle2 {
		return Memchr(haystack, needle1)
	}

	return memchr2Generic(haystack, needle1, needle2)
}

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
//
// Token splitting uses this with a separator table, e.g. the five HTML
// attribute whitespace bytes.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}

	return memchrInTableGeneric(haystack, table)
}
