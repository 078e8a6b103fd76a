package dbg

// Summarise counts the occurrences of each distinct value in m.
func Summarise[K comparable, V comparable](m map[K]V) map[V]int {
	counts := make(map[V]int, len(m))
	for _, v := range m {
		counts[v]++
	}
	return counts
}
