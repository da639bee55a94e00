package simd

// byteRank holds an empirical frequency rank per byte, tuned for markup
// attribute values (URLs, class lists, language tags) as well as prose.
// Lower rank means rarer, which makes a better anchor for substring search.
var byteRank = [256]byte{
	// 0x00-0x0F: control bytes; \t \n \r appear in whitespace-separated lists
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// ' ' ! " # $ % & ' ( ) * + , - . /
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	// 0-9 : ; < = > ?
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	// @ A-O
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	// P-Z [ \ ] ^ _
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	// ` a-o
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	// p-z { | } ~ DEL
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	// 0x80-0xFF: UTF-8 lead and continuation bytes
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// foldRank ranks b for a search that accepts both of its ASCII case forms.
// Both forms produce candidates, so their ranks add up.
func foldRank(b byte) int {
	lo, up := ToLowerASCII(b), ToUpperASCII(b)
	if lo == up {
		return int(byteRank[b])
	}
	return int(byteRank[lo]) + int(byteRank[up])
}

// rareIndex returns the position of the rarest byte in needle, the first
// one on ties. needle must not be empty.
func rareIndex(needle []byte, fold bool) int {
	best, bestRank := 0, 1<<16
	for i, b := range needle {
		rank := int(byteRank[b])
		if fold {
			rank = foldRank(b)
		}
		if rank < bestRank {
			best, bestRank = i, rank
		}
	}
	return best
}
