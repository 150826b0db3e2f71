package moji

import "sync"

const (
	// DefaultMaxDecodingFailures is the malformed-sequence tolerance a
	// scorer pass may accumulate before its candidate is abandoned.
	DefaultMaxDecodingFailures = 3

	// DefaultCheckBytes is how many leading bytes of a source the reader
	// and file helpers inspect.
	DefaultCheckBytes = 64 * 1024
)

// Buffers at least this large run the three scorer passes concurrently.
const parallelThreshold = 1 << 20

// Config carries the tunables of one classification call. The zero value
// is usable but strict (tolerance 0); most callers want DefaultConfig.
type Config struct {
	// MaxDecodingFailures is the tolerance for malformed multi-byte
	// sequences per candidate encoding.
	MaxDecodingFailures int

	// CheckBytes limits how many leading bytes GuessReader and GuessFile
	// inspect. 0 means the whole source; if the source length is unknown,
	// DefaultCheckBytes is used instead.
	CheckBytes int
}

// DefaultConfig returns the standard tolerance and read-ahead settings.
func DefaultConfig() Config {
	return Config{
		MaxDecodingFailures: DefaultMaxDecodingFailures,
		CheckBytes:          DefaultCheckBytes,
	}
}

// Guess classifies b under DefaultConfig.
func Guess(b []byte) Encoding {
	return DefaultConfig().Guess(b)
}

// Guess reports which encoding produced b, or Undetected when no candidate
// grammar fits within the configured tolerance (binary data, typically).
// It never fails: empty and arbitrary input yield a defined result.
//
// A BOM wins outright. Otherwise one forward scan picks out BOM-less
// UTF-16, ISO-2022-JP escapes and pure ASCII. Only when that scan is
// inconclusive do the Shift_JIS, EUC-JP and UTF-8 scorers run and the
// counter comparison below decides.
func (c Config) Guess(b []byte) Encoding {
	if e := detectBOM(b); e != Undetected {
		return e
	}

	if e, _ := scanSignature(b); e != Undetected {
		return e
	}

	var sjSuc, sjFail, eucSuc, eucFail, u8Suc, u8Fail int
	if len(b) >= parallelThreshold {
		// Each pass reads the shared buffer and owns its counters.
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			sjSuc, sjFail = scoreShiftJIS(b, c.MaxDecodingFailures)
		}()
		go func() {
			defer wg.Done()
			eucSuc, eucFail = scoreEUCJP(b, c.MaxDecodingFailures)
		}()
		go func() {
			defer wg.Done()
			u8Suc, u8Fail = scoreUTF8(b, c.MaxDecodingFailures)
		}()
		wg.Wait()
	} else {
		sjSuc, sjFail = scoreShiftJIS(b, c.MaxDecodingFailures)
		eucSuc, eucFail = scoreEUCJP(b, c.MaxDecodingFailures)
		u8Suc, u8Fail = scoreUTF8(b, c.MaxDecodingFailures)
	}

	// Every candidate sitting exactly at the tolerance ceiling means none
	// of them is a plausible fit.
	if sjFail == c.MaxDecodingFailures &&
		eucFail == c.MaxDecodingFailures &&
		u8Fail == c.MaxDecodingFailures {
		return Undetected
	}

	// Fewer malformed sequences is the primary signal. Check order on
	// this branch is Shift_JIS, EUC-JP, UTF-8; only a strict minimum wins.
	switch {
	case sjFail < eucFail && sjFail < u8Fail:
		return ShiftJIS
	case eucFail < sjFail && eucFail < u8Fail:
		return EUC
	case u8Fail < sjFail && u8Fail < eucFail:
		return UTF8
	}

	// Failure counts tied: prefer the candidate that consumed more of the
	// buffer as valid text. Check order here is EUC-JP, Shift_JIS, UTF-8,
	// matching the legacy tie-break.
	switch {
	case eucSuc > sjSuc && eucSuc > u8Suc:
		return EUC
	case sjSuc > eucSuc && sjSuc > u8Suc:
		return ShiftJIS
	case u8Suc > sjSuc && u8Suc > eucSuc:
		return UTF8
	}

	return Undetected
}
