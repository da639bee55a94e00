package simd

import "encoding/binary"

// ToLowerASCII maps 'A'-'Z' to 'a'-'z' and returns every other byte unchanged.
// Bytes >= 0x80 are never folded.
//
//go:inline
func ToLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ToUpperASCII maps 'a'-'z' to 'A'-'Z' and returns every other byte unchanged.
//
//go:inline
func ToUpperASCII(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// EqualFoldASCII reports whether a and b are equal under ASCII case folding.
//
// Unlike bytes.EqualFold no Unicode folding is applied: non-ASCII bytes must
// match exactly, which is the comparison HTML uses for attribute names and
// case-insensitive attribute values.
//
// Inputs of 8 bytes or more are compared a word at a time after folding both
// words with lowerChunk.
func EqualFoldASCII(a, b []byte) bool {
	n := len(a)
	if n != len(b) {
		return false
	}

	idx := 0
	for idx+8 <= n {
		wa := binary.LittleEndian.Uint64(a[idx:])
		wb := binary.LittleEndian.Uint64(b[idx:])
		if wa != wb && lowerChunk(wa) != lowerChunk(wb) {
			return false
		}
		idx += 8
	}

	for idx < n {
		if ToLowerASCII(a[idx]) != ToLowerASCII(b[idx]) {
			return false
		}
		idx++
	}

	return true
}

// EqualLowerASCII reports whether folding s to lower case yields exactly
// lower. lower must already be lower case; only s is folded.
func EqualLowerASCII(s, lower []byte) bool {
	if len(s) != len(lower) {
		return false
	}
	for i, b := range s {
		if ToLowerASCII(b) != lower[i] {
			return false
		}
	}
	return true
}

// lowerChunk folds every ASCII upper case byte of an 8-byte word to lower case.
//
// Algorithm:
//  1. Clear the high bit of each byte so additions cannot carry across bytes
//  2. Add 0x80-'A' to each byte: the high bit is set iff byte >= 'A'
//  3. Add 0x80-'Z'-1 to each byte: the high bit is set iff byte > 'Z'
//  4. XOR of the two marks 'A' <= byte <= 'Z'; bytes >= 0x80 are excluded
//  5. Shift the 0x80 marks down to 0x20 and OR them in
func lowerChunk(x uint64) uint64 {
	heptets := x &^ hi8
	geA := heptets + (0x80-'A')*lo8
	gtZ := heptets + (0x80-'Z'-1)*lo8
	mask := (geA ^ gtZ) &^ x & hi8
	return x | mask>>2
}
