package simd

import (
	"encoding/binary"
	"math/bits"
)

// memchrGeneric implements pure Go byte search using SWAR (SIMD Within A Register)
// technique. It processes 8 bytes at a time using uint64 bitwise operations.
//
// Algorithm:
//  1. Create a mask with needle replicated in every byte of uint64
//  2. Read 8 bytes from haystack as uint64
//  3. XOR with mask (matching bytes become 0x00)
//  4. Use zero-byte detection formula to find first zero
//  5. Extract position using trailing zero count
func memchrGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// Broadcast needle to all 8 bytes: 0x42 -> 0x4242424242424242
	needleMask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])

		// Matching bytes become 0x00
		if found := zeroBytes(chunk ^ needleMask); found != 0 {
			return idx + bits.TrailingZeros64(found)/8
		}

		idx += 8
	}

	// Remaining 0-7 bytes
	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// memchr2Generic implements pure Go search for two needles using SWAR technique.
// It processes 8 bytes at a time, checking both needles in parallel and
// returning the position of whichever appears first.
func memchr2Generic(haystack []byte, needle1, needle2 byte) int {
	haystackLen := len(haystack)

	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			currentByte := haystack[idx]
			if currentByte == needle1 || currentByte == needle2 {
				return idx
			}
		}
		return -1
	}

	needleMask1 := uint64(needle1) * lo8
	needleMask2 := uint64(needle2) * lo8

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])

		found := zeroBytes(chunk^needleMask1) | zeroBytes(chunk^needleMask2)
		if found != 0 {
			return idx + bits.TrailingZeros64(found)/8
		}

		idx += 8
	}

	for idx < haystackLen {
		currentByte := haystack[idx]
		if currentByte == needle1 || currentByte == needle2 {
			return idx
		}
		idx++
	}

	return -1
}

// memchrInTableGeneric is the scalar implementation of MemchrInTable.
func memchrInTableGeneric(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// zeroBytes returns a word with the high bit set in every byte position
// where v holds 0x00 (Hacker's Delight zero-byte detection).
//
// Formula: (v - 0x0101010101010101) & ^v & 0x8080808080808080
//
// Only the lowest flagged byte is exact: a borrow out of a zero byte can
// flag the byte above it when that byte is 0x01. Callers use only the
// lowest set bit, so this is sufficient.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}
