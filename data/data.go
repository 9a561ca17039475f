// Package data holds the bundled 6800 and 6809 instruction description.
package data

import (
	_ "embed"
)

// NAME is the file name of the bundled description.
const NAME = "6809.dat"

// Description is the text of the bundled description.
//
//go:embed 6809.dat
var Description []byte
