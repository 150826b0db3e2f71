package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shu-go/gli"
	"github.com/shu-go/moji"
)

type config struct {
	Detect struct {
		MaxDecodingFailures int
		CheckBytes          int
	}
}

type globalCmd struct {
	Guess  guessCmd  `cli:"guess, g"  help:"guess encodings of files (or stdin)"`
	Codecs codecsCmd `cli:"codecs, c"  help:"list detectable encodings"`

	Config   string `cli:"config=CONFIG_FILE, conf"  help:"path to a configuration file"`
	Failures int    `cli:"failures=N, f"  default:"3"  help:"tolerance for malformed sequences per candidate"`
	Bytes    int    `cli:"bytes=N, b"  default:"65536"  help:"leading bytes to inspect (0: whole file)"`
}

func main() {
	app := gli.NewWith(&globalCmd{})
	app.Name = "moji"
	app.Desc = "Japanese text encoding guesser"
	app.Version = "0.1.0"
	app.Usage = `1. moji guess memo.txt
2. moji --bytes 0 guess *.txt`

	err := app.Run(os.Args)
	if err != nil {
		os.Exit(1)
	}

	return
}

// detectConfig resolves the flags and the optional toml file into the
// library config. File values win over flag values when a file is given.
func (g globalCmd) detectConfig() (moji.Config, error) {
	dc := moji.Config{
		MaxDecodingFailures: g.Failures,
		CheckBytes:          g.Bytes,
	}

	if g.Config == "" {
		return dc, nil
	}

	c, err := loadConfig(g.Config)
	if err != nil {
		return dc, err
	}
	dc.MaxDecodingFailures = c.Detect.MaxDecodingFailures
	dc.CheckBytes = c.Detect.CheckBytes

	return dc, nil
}

func loadConfig(path string) (*config, error) {
	config := new(config)
	config.Detect.MaxDecodingFailures = moji.DefaultMaxDecodingFailures
	config.Detect.CheckBytes = moji.DefaultCheckBytes

	_, err := toml.DecodeFile(path, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "missing %v. -> creating with minimal contents...", path)
		if err = saveConfig(config, path); err != nil {
			return nil, fmt.Errorf("failed to access to config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "created.\n")
	}

	return config, nil
}

func saveConfig(config *config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(config)
}
