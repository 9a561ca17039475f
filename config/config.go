// Package config loads the generator settings from a TOML file.
package config

import (
	"errors"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	ErrUnknownKey = errors.New(f("unknown configuration key"))
)

// ErrKeys lists configuration keys that are not settings.
type ErrKeys []string

func (err ErrKeys) Error() string {
	return f("unknown configuration keys %v", []string(err))
}

func (err ErrKeys) Unwrap() error {
	return ErrUnknownKey
}

// Config is the generator configuration.
type Config struct {
	Input     string   `toml:"input"`     // Instruction description file.
	Output    string   `toml:"output"`    // Output directory.
	Emulation bool     `toml:"emulation"` // Emit the emulation dispatch.
	Manifest  bool     `toml:"manifest"`  // Emit the YAML manifest and opcode listing.
	Strict    bool     `toml:"strict"`    // Duplicate mnemonics are errors.
	Verbose   bool     `toml:"verbose"`   // Verbose logging.
	Semantics []string `toml:"semantics"` // Semantics providers, in order.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Input:     "6809.dat",
		Output:    ".",
		Semantics: []string{"builtin"},
	}
}

// Load reads a configuration file over the defaults.
func Load(path string) (config Config, err error) {
	config = Default()

	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return
	}

	err = checkKeys(meta)
	return
}

// Parse reads configuration text over the defaults.
func Parse(text string) (config Config, err error) {
	config = Default()

	meta, err := toml.Decode(text, &config)
	if err != nil {
		return
	}

	err = checkKeys(meta)
	return
}

func checkKeys(meta toml.MetaData) (err error) {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return
	}

	keys := make(ErrKeys, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	err = keys
	return
}
