package analysis

import "math"

// ChiSquareCritical95 is the 95% critical value of chi-square with one
// degree of freedom.
const ChiSquareCritical95 = 3.841

// BernoulliChiSquare compares an observed success count over trials with
// the expected probability p. It returns 0 for degenerate inputs where no
// statistic exists (no trials, p at 0 or 1 with matching observations) and
// +Inf when p rules the observation out.
func BernoulliChiSquare(successes, trials int, p float64) float64 {
	if trials <= 0 {
		return 0
	}
	n := float64(trials)
	obs := [2]float64{float64(successes), n - float64(successes)}
	exp := [2]float64{n * p, n * (1 - p)}

	chi2 := 0.0
	for i := range obs {
		if exp[i] == 0 {
			if obs[i] != 0 {
				return math.Inf(1)
			}
			continue
		}
		d := obs[i] - exp[i]
		chi2 += d * d / exp[i]
	}
	return chi2
}

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev is the population standard deviation.
func StdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return math.Sqrt(ss / float64(len(xs)))
}
