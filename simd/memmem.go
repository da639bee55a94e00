package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0, as with
// bytes.Index.
//
// Algorithm:
//  1. Pick the rarest byte of needle from a frequency table
//  2. Scan for that byte with Memchr, only over positions where the whole
//     needle still fits around it
//  3. Verify the full needle at each candidate
//
// Example:
//
//	pos := simd.Memmem([]byte("/img/logo.png"), []byte(".png"))
//	// pos == 9
func Memmem(haystack, needle []byte) int {
	return memmem(haystack, needle, false)
}

// MemmemFold is Memmem under ASCII case folding. The anchor byte is searched
// in both case forms at once with Memchr2; non-ASCII bytes must match
// exactly.
//
// Example:
//
//	pos := simd.MemmemFold([]byte("/Index.HTML"), []byte(".html"))
//	// pos == 6
func MemmemFold(haystack, needle []byte) int {
	return memmem(haystack, needle, true)
}

func memmem(haystack, needle []byte, fold bool) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	}

	idx := rareIndex(needle, fold)
	b1, b2 := needle[idx], needle[idx]
	if fold {
		b1, b2 = ToLowerASCII(b1), ToUpperASCII(b1)
	}

	// Anchor candidates lie in [idx, len(haystack)-n+idx].
	end := len(haystack) - n + idx + 1
	for at := idx; at < end; {
		pos := Memchr2(haystack[at:end], b1, b2)
		if pos < 0 {
			return -1
		}

		start := at + pos - idx
		window := haystack[start : start+n]
		if fold {
			if EqualFoldASCII(window, needle) {
				return start
			}
		} else if bytes.Equal(window, needle) {
			return start
		}

		at += pos + 1
	}

	return -1
}
