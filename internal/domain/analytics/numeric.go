package analytics

import "math"

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(part, whole int) float64 {
	return 100 * ratio(float64(part), float64(whole))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
