package lottery

// Shuffle returns a uniformly random permutation of xs using Fisher-Yates.
// xs is never modified.
func Shuffle[T any](src Source, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RandomSubset returns min(count, len(source)) distinct elements drawn
// uniformly without replacement. When count covers the whole source it
// returns a shuffled copy of it. Used for reveal frames only, never for
// deciding winners.
func RandomSubset[T any](src Source, source []T, count int) []T {
	if count <= 0 {
		return []T{}
	}
	if count >= len(source) {
		return Shuffle(src, source)
	}

	// Partial Fisher-Yates: the first count slots end up uniformly chosen.
	pool := make([]T, len(source))
	copy(pool, source)
	for i := 0; i < count; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count:count]
}

// Take returns the first count elements of pool and the rest, both as fresh
// slices. Winners of a prize are always the prefix of the pre-round pool.
func Take[T any](pool []T, count int) (taken, rest []T) {
	if count > len(pool) {
		count = len(pool)
	}
	if count < 0 {
		count = 0
	}
	taken = make([]T, count)
	copy(taken, pool[:count])
	rest = make([]T, len(pool)-count)
	copy(rest, pool[count:])
	return taken, rest
}
