package scoring

import "math"

// percentileOf ranks a score within a historical distribution using the
// midrank convention: ties count half. Returns 0..100.
func percentileOf(score int, distribution []int) int {
	if len(distribution) == 0 {
		return 0
	}
	below, equal := 0, 0
	for _, s := range distribution {
		switch {
		case s < score:
			below++
		case s == score:
			equal++
		}
	}
	rank := (float64(below) + 0.5*float64(equal)) / float64(len(distribution)) * 100
	return int(math.Round(rank))
}
