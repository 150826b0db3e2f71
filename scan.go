package moji

// jisEscape reports whether c1 c2 complete an ISO-2022-JP escape after ESC:
// $@ / $B switch to JIS X 0208, (B / (J back to ASCII/Roman, (I to kana.
func jisEscape(c1, c2 byte) bool {
	switch {
	case c1 == '$' && (c2 == '@' || c2 == 'B'):
		return true
	case c1 == '(' && (c2 == 'B' || c2 == 'J' || c2 == 'I'):
		return true
	}
	return false
}

// scanSignature is the first pass over the buffer. It spots BOM-less
// UTF-16 (a zero byte paired with an ASCII-range byte) and ISO-2022-JP
// (any escape sequence), and reports pure ASCII when the whole buffer is
// 7-bit with no escapes. Lookahead past the end reads as 0x00.
//
// The zero-byte signature cannot see byte order, so it yields UTF16LE,
// the platform-native order of the legacy files this targets. A BOM is
// required to distinguish big-endian.
//
// Undetected here only means "no signature": the caller falls through to
// the scorer passes, using hasHighBit to tell ASCII from candidate
// multi-byte text.
func scanSignature(b []byte) (enc Encoding, hasHighBit bool) {
	n := len(b)
	for i := 0; i < n; i++ {
		c0 := b[i]
		var c1, c2 byte
		if i+1 < n {
			c1 = b[i+1]
		}
		if i+2 < n {
			c2 = b[i+2]
		}

		if c0 == 0x00 && c1 <= 0x7f {
			return UTF16LE, hasHighBit
		}
		if c0 == 0x1b && jisEscape(c1, c2) {
			return JIS, hasHighBit
		}
		if c0 >= 0x80 {
			hasHighBit = true
		}
	}

	if n > 0 && !hasHighBit {
		return ASCII, false
	}
	// Empty input is not ASCII; it falls through to the scorer passes,
	// which find nothing, and comes out Undetected.
	return Undetected, hasHighBit
}
