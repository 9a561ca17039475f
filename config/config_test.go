package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	config, err := Parse(strings.Join([]string{
		`output = "gen"`,
		`emulation = true`,
		`semantics = ["custom.star", "builtin", "trace"]`,
	}, "\n"))
	assert.NoError(err)

	assert.Equal(Config{
		Input:     "6809.dat",
		Output:    "gen",
		Emulation: true,
		Semantics: []string{"custom.star", "builtin", "trace"},
	}, config)
}

func TestParseDefaults(t *testing.T) {
	assert := assert.New(t)

	config, err := Parse("")
	assert.NoError(err)
	assert.Equal(Default(), config)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("outptu = \"gen\"\n")
	assert.ErrorIs(err, ErrUnknownKey)
	assert.Equal(ErrKeys{"outptu"}, err)

	_, err = Parse("emulation = \"yes\"\n")
	assert.Error(err)

	_, err = Parse("output = \n")
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "isagen.toml")
	err := os.WriteFile(path, []byte("input = \"cpu.dat\"\nstrict = true\n"), 0644)
	assert.NoError(err)

	config, err := Load(path)
	assert.NoError(err)
	assert.Equal("cpu.dat", config.Input)
	assert.True(config.Strict)
	assert.Equal(".", config.Output)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)
}
