package fixture

import (
	"math/rand"
	"time"
)

func pick(r *rand.Rand, options []string) string {
	return options[r.Intn(len(options))]
}

// randInt draws uniformly from the closed interval [min, max].
func randInt(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

func randFloat(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// randTime draws a second-granularity instant uniformly from [start, end].
func randTime(r *rand.Rand, start, end time.Time) time.Time {
	span := int64(end.Sub(start) / time.Second)
	return start.Add(time.Duration(r.Int63n(span+1)) * time.Second)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
