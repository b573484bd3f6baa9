package internal

import (
	"iter"
)

// IterFlatten iterates every element of every slice in a sequence.
func IterFlatten[S ~[]E, E any](seq iter.Seq[S]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for chunk := range seq {
			for _, val := range chunk {
				if !yield(val) {
					return
				}
			}
		}
	}
}
