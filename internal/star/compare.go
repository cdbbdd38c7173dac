package star

import "math"

// DefaultSlack absorbs layout rounding and floating-point drift.
const DefaultSlack = 1.0

// AreClose reports whether a and b differ by at most slack.
func AreClose(a, b, slack float64) bool {
	return math.Abs(a-b) <= slack
}

// AreProportional reports whether sizes w1 and w2 are in the ratio of weights
// k1 and k2, allowing each size to be off by slack:
//
//	(w1+slack)/k1 >= (w2-slack)/k2  and  (w2+slack)/k2 >= (w1-slack)/k1
//
// Both weights are divided by the larger before cross-multiplying, so weights
// near MaxFloat64 cannot overflow. Two infinite weights compare as 1:1; an
// infinite weight against a finite one requires the finite size to be ~0.
// A zero weight requires its size to be ~0.
func AreProportional(w1, k1, w2, k2, slack float64) bool {
	inf1, inf2 := math.IsInf(k1, 1), math.IsInf(k2, 1)
	switch {
	case inf1 && inf2:
		k1, k2 = 1, 1
	case inf1:
		return AreClose(w2, 0, slack)
	case inf2:
		return AreClose(w1, 0, slack)
	}

	scale := math.Max(k1, k2)
	if scale <= 0 {
		return AreClose(w1, 0, slack) && AreClose(w2, 0, slack)
	}
	k1 /= scale
	k2 /= scale
	if k1 == 0 {
		return AreClose(w1, 0, slack)
	}
	if k2 == 0 {
		return AreClose(w2, 0, slack)
	}

	return (w1+slack)*k2 >= (w2-slack)*k1 && (w2+slack)*k1 >= (w1-slack)*k2
}
