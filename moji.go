// Package moji guesses which Japanese-oriented text encoding produced a
// byte buffer.
//
// Guess inspects the leading bytes of a source (BOM, UTF-16 / ISO-2022-JP
// signatures, pure ASCII) and, when those are inconclusive, scores the
// buffer against the Shift_JIS, EUC-JP and UTF-8 grammars to pick the best
// fit. Undetected means no candidate fits within tolerance; callers should
// treat such input as binary.
package moji

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding identifies a detected text encoding.
type Encoding int

const (
	Undetected Encoding = iota
	ASCII
	JIS // ISO-2022-JP
	ShiftJIS
	EUC
	UTF8
	UTF16LE
	UTF16BE
	UTF32
)

// String returns the canonical (IANA-style) name of the encoding.
func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "US-ASCII"
	case JIS:
		return "ISO-2022-JP"
	case ShiftJIS:
		return "Shift_JIS"
	case EUC:
		return "EUC-JP"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32:
		return "UTF-32"
	}
	return "unknown"
}

// Detected reports whether e names an actual encoding.
func (e Encoding) Detected() bool {
	return e != Undetected
}

// Codec returns the golang.org/x/text codec for the encoding, for callers
// that go on to decode the source. ASCII bytes are valid as-is, so ASCII
// maps to encoding.Nop. Undetected has no codec and returns nil.
func (e Encoding) Codec() encoding.Encoding {
	switch e {
	case ASCII:
		return encoding.Nop
	case JIS:
		return japanese.ISO2022JP
	case ShiftJIS:
		return japanese.ShiftJIS
	case EUC:
		return japanese.EUCJP
	case UTF8:
		return unicode.UTF8
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case UTF32:
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM)
	}
	return nil
}
