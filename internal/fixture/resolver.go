package fixture

import "math/rand"

// WeightedRef resolves a foreign reference that is only sometimes a real
// row: with probability p it samples from the pool, otherwise it returns
// the sentinel constant. Stateless per call.
func WeightedRef(r *rand.Rand, p float64, pool Pool, sentinel string) string {
	if r.Float64() < p {
		return pool.Sample(r)
	}
	return sentinel
}
