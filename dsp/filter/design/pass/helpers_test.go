package pass

import "math"

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
