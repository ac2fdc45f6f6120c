// SPDX-License-Identifier: EPL-2.0

package audio

// NearestZeroCrossing returns the index of the zero crossing closest
// to target, scanning adjacent sample pairs within radius.
//
// A pair (i, i+1) qualifies when either sample is exactly zero or the
// two samples have strictly opposite signs. The scan runs left to
// right over [max(0, target-radius), min(len(samples)-2, target+radius)]
// and only replaces the current best on a strictly smaller distance,
// so an exact tie resolves to the lower index.
//
// When the window holds no crossing, or samples has fewer than two
// values, target is returned unchanged rather than failing: the cut
// degrades to the unadjusted position.
func NearestZeroCrossing(samples []float32, target, radius int) int {
	n := len(samples)
	if n < 2 {
		return target
	}

	lo := target - radius
	if lo < 0 {
		lo = 0
	}
	hi := target + radius
	if hi > n-2 {
		hi = n - 2
	}

	best := -1
	bestDist := 0

	for i := lo; i <= hi; i++ {
		a, b := samples[i], samples[i+1]
		crossing := a == 0 || b == 0 || (a > 0) != (b > 0)
		if !crossing {
			continue
		}

		dist := i - target
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best < 0 {
		return target
	}
	return best
}
