package dbg

import "iter"

// ChunksList yields consecutive sub-slices of list, each of the given size
// except possibly the last. The chunks alias the backing array of list.
// Each call returns a fresh sequence, so the result can be ranged over more
// than once; a size below 1 yields nothing.
func ChunksList[T any](list []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			return
		}
		for i := 0; i < len(list); i += size {
			end := min(i+size, len(list))
			if !yield(list[i:end:end]) {
				return
			}
		}
	}
}

// ChunksMap yields sub-maps of m, each holding size entries except possibly
// the last. Chunk membership follows Go's map iteration order and is not
// deterministic across runs; only the chunk sizes are. A size below 1
// yields nothing.
func ChunksMap[K comparable, V any](m map[K]V, size int) iter.Seq[map[K]V] {
	return func(yield func(map[K]V) bool) {
		if size < 1 {
			return
		}
		chunk := make(map[K]V, size)
		for k, v := range m {
			chunk[k] = v
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = make(map[K]V, size)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}
