package moji

import "testing"

func TestEncodingString(t *testing.T) {
	data := []struct {
		e    Encoding
		want string
	}{
		{ASCII, "US-ASCII"},
		{JIS, "ISO-2022-JP"},
		{ShiftJIS, "Shift_JIS"},
		{EUC, "EUC-JP"},
		{UTF8, "UTF-8"},
		{UTF16LE, "UTF-16LE"},
		{UTF16BE, "UTF-16BE"},
		{UTF32, "UTF-32"},
		{Undetected, "unknown"},
	}
	for _, d := range data {
		if got := d.e.String(); got != d.want {
			t.Errorf("%d.String() = %q, want %q", int(d.e), got, d.want)
		}
	}
}

func TestEncodingCodec(t *testing.T) {
	tags := []Encoding{ASCII, JIS, ShiftJIS, EUC, UTF8, UTF16LE, UTF16BE, UTF32}
	for _, e := range tags {
		if e.Codec() == nil {
			t.Errorf("%v has no codec", e)
		}
	}
	if Undetected.Codec() != nil {
		t.Error("Undetected has a codec")
	}
}

func TestEncodingDetected(t *testing.T) {
	if Undetected.Detected() {
		t.Error("Undetected.Detected() = true")
	}
	if !ShiftJIS.Detected() {
		t.Error("ShiftJIS.Detected() = false")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	// the returned codec must actually decode what Guess classified
	b := []byte{'a', 0x8c, 0xea, 'b'} // a 語 b in Shift_JIS

	e := Guess(b)
	if e != ShiftJIS {
		t.Fatalf("Guess(% x) = %v, want %v", b, e, ShiftJIS)
	}

	decoded, err := e.Codec().NewDecoder().Bytes(b)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if string(decoded) != "a語b" {
		t.Errorf("decoded %q, want %q", decoded, "a語b")
	}
}
