package moji

import "testing"

func TestDetectBOM(t *testing.T) {
	data := []struct {
		in   []byte
		want Encoding
	}{
		{[]byte{0xef, 0xbb, 0xbf}, UTF8},
		{[]byte{0xef, 0xbb, 0xbf, 'h', 'i'}, UTF8},
		{[]byte{0xff, 0xfe}, UTF16LE},
		{[]byte{0xff, 0xfe, 'a', 0x00}, UTF16LE},
		{[]byte{0xfe, 0xff}, UTF16BE},
		{[]byte{0xfe, 0xff, 0x00, 'a'}, UTF16BE},
		{[]byte{0x00, 0x00, 0xfe, 0xff}, UTF32},

		{nil, Undetected},
		{[]byte{}, Undetected},
		{[]byte{0xef, 0xbb}, Undetected},
		{[]byte{0x00, 0x00, 0xfe}, Undetected},
		{[]byte("plain text"), Undetected},
		{[]byte{0xbf, 0xbb, 0xef}, Undetected},
	}

	for i, d := range data {
		if got := detectBOM(d.in); got != d.want {
			t.Errorf("#%d: detectBOM(% x) = %v, want %v", i, d.in, got, d.want)
		}
	}
}
