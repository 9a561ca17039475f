// Package internal holds iterator helpers shared by the isagen packages.
package internal

import (
	"iter"
)

// Concat2 yields the pairs of each sequence in turn, stopping early when
// the consumer does.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Count returns the number of pairs in a sequence.
func Count[K any, V any](seq iter.Seq2[K, V]) (n int) {
	for range seq {
		n++
	}
	return
}
