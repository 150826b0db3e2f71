package main

import (
	"fmt"

	"github.com/shu-go/moji"
)

type codecsCmd struct{}

func (c codecsCmd) Run(g globalCmd) error {
	tags := []moji.Encoding{
		moji.ASCII,
		moji.JIS,
		moji.ShiftJIS,
		moji.EUC,
		moji.UTF8,
		moji.UTF16LE,
		moji.UTF16BE,
		moji.UTF32,
	}

	for _, e := range tags {
		fmt.Printf("%v\n", e)
	}

	return nil
}
