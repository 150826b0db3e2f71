package moji

import (
	"io"
	"io/ioutil"
	"os"
)

// GuessReader classifies r under DefaultConfig.
func GuessReader(r io.Reader) (Encoding, error) {
	return DefaultConfig().GuessReader(r)
}

// GuessFile classifies the named file under DefaultConfig.
func GuessFile(name string) (Encoding, error) {
	return DefaultConfig().GuessFile(name)
}

// GuessReader reads up to CheckBytes leading bytes from r and classifies
// them. A plain reader has no known length, so CheckBytes == 0 falls back
// to DefaultCheckBytes. Only read errors are returned; classification
// itself cannot fail.
func (c Config) GuessReader(r io.Reader) (Encoding, error) {
	limit := c.CheckBytes
	if limit <= 0 {
		limit = DefaultCheckBytes
	}

	b, err := ioutil.ReadAll(io.LimitReader(r, int64(limit)))
	if err != nil {
		return Undetected, err
	}
	return c.Guess(b), nil
}

// GuessFile reads up to CheckBytes leading bytes of the named file and
// classifies them. CheckBytes == 0 means the whole file.
func (c Config) GuessFile(name string) (Encoding, error) {
	f, err := os.Open(name)
	if err != nil {
		return Undetected, err
	}
	defer f.Close()

	limit := c.CheckBytes
	if limit <= 0 {
		if info, err := f.Stat(); err == nil {
			if size := info.Size(); size < int64(maxInt) {
				limit = int(size)
			} else {
				limit = maxInt
			}
		} else {
			limit = DefaultCheckBytes
		}
	}

	b, err := ioutil.ReadAll(io.LimitReader(f, int64(limit)))
	if err != nil {
		return Undetected, err
	}
	return c.Guess(b), nil
}

const maxInt = int(^uint(0) >> 1)
