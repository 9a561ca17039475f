// Package catalog merges the expanded declarations of all architectures into
// the sorted mnemonic, token and pattern tables shared by the emitters.
package catalog
