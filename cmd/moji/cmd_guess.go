package main

import (
	"fmt"
	"os"
)

type guessCmd struct {
	Quiet bool `cli:"quiet, q"  help:"print encodings only, without file names"`
}

func (c guessCmd) Run(g globalCmd, args []string) error {
	dc, err := g.detectConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		e, err := dc.GuessReader(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %v", err)
		}
		fmt.Printf("%v\n", e)
		return nil
	}

	failed := 0
	for _, name := range args {
		e, err := dc.GuessFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", name, err)
			failed++
			continue
		}

		if c.Quiet {
			fmt.Printf("%v\n", e)
		} else {
			fmt.Printf("%v\t%v\n", name, e)
		}
	}

	if failed == len(args) {
		return fmt.Errorf("no readable files")
	}
	return nil
}
