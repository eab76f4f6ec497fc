package optimizer

import "math"

const (
	golden      = 0.6180339887498949 // (sqrt(5)-1)/2
	sigmoidClip = 60.0
	scanPoints  = 64
)

func sigmoid(x float64) float64 {
	if x > sigmoidClip {
		x = sigmoidClip
	} else if x < -sigmoidClip {
		x = -sigmoidClip
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

// maximize finds the maximum of f over the closed interval [lower, upper].
// A coarse scan locates the best bracket first, so the search stays global
// when the objective is not unimodal; golden-section then refines the bracket
// down to tol. Ties and flat regions resolve toward the lower end.
func maximize(f func(float64) float64, lower, upper, tol float64) (float64, float64) {
	if upper-lower <= tol {
		return lower, f(lower)
	}

	step := (upper - lower) / scanPoints
	bestX, bestF := lower, f(lower)
	for i := 1; i <= scanPoints; i++ {
		x := math.Min(lower+float64(i)*step, upper)
		if v := f(x); v > bestF {
			bestX, bestF = x, v
		}
	}

	a := math.Max(lower, bestX-step)
	b := math.Min(upper, bestX+step)

	x1 := b - golden*(b-a)
	x2 := a + golden*(b-a)
	f1, f2 := f(x1), f(x2)
	for b-a > tol {
		if f1 >= f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - golden*(b-a)
			f1 = f(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + golden*(b-a)
			f2 = f(x2)
		}
	}

	if fa := f(a); fa >= bestF {
		return a, fa
	}
	return bestX, bestF
}
