package moji

import "bytes"

var (
	bomUTF8   = []byte{0xef, 0xbb, 0xbf}
	bomUTF16  = []byte{0xff, 0xfe}
	bomUTF16B = []byte{0xfe, 0xff}
	bomUTF32  = []byte{0x00, 0x00, 0xfe, 0xff}
)

// detectBOM matches the leading bytes against the known byte-order marks.
// A buffer shorter than a mark never matches it; there is no error case,
// Undetected just means "no BOM".
func detectBOM(b []byte) Encoding {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return UTF8
	case bytes.HasPrefix(b, bomUTF32):
		return UTF32
	case bytes.HasPrefix(b, bomUTF16):
		return UTF16LE
	case bytes.HasPrefix(b, bomUTF16B):
		return UTF16BE
	}
	return Undetected
}
