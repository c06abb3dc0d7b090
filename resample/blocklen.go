// SPDX-License-Identifier: MIT
// Package: lvboot/resample
//
// blocklen.go — automatic block-length selection for the stationary
// bootstrap: Politis & White (2004) with the Patton, Politis & White (2009)
// correction.
//
// Steps (n = len(x)):
//  1. Autocovariances R(k) and autocorrelations ρ(k) = R(k)/R(0).
//  2. K_N = max(5, ⌈√log10 n⌉), m_max = ⌈√n⌉ + K_N (bounded by n-1).
//  3. m̂ = smallest m with |ρ(m+j)| < c·√(log10 n / n) for j = 1..K_N;
//     M = min(2·m̂, m_max).
//  4. With the flat-top window λ:
//     Ĝ = Σ_{|k|≤M} λ(k/M)·|k|·R(k),  ĝ = Σ_{|k|≤M} λ(k/M)·R(k),
//     D̂ = 2·ĝ².
//  5. b̂ = (2Ĝ²/D̂)^{1/3} · n^{1/3}, clamped to [1, ⌈min(3√n, n/3)⌉].
//
// Uncorrelated data gives M = 0 and b̂ = 1 (the i.i.d. bootstrap).
//
// Complexity: O(n·m_max) time, O(m_max) space.

package resample

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	pwThresholdC = 2.0 // c in the significance band c·√(log10 n / n)
	pwMinKN      = 5   // lower bound of K_N
)

// OptimalBlockLength estimates the expected block length for the
// stationary bootstrap of x. The result is in [1, max(1, len(x))].
// Series with fewer than three points, or with zero variance, yield 1.
func OptimalBlockLength(x []float64) float64 {
	n := len(x)
	if n < 3 {
		return 1
	}
	nf := float64(n)
	mean := stat.Mean(x, nil)

	r0 := autocovariance(x, mean, 0)
	if !(r0 > 0) || math.IsInf(r0, 0) {
		return 1
	}

	kn := int(math.Max(pwMinKN, math.Ceil(math.Sqrt(math.Log10(nf)))))
	maxLag := int(math.Ceil(math.Sqrt(nf))) + kn
	if maxLag > n-1 {
		maxLag = n - 1
	}

	acov := make([]float64, maxLag+1)
	acov[0] = r0
	for k := 1; k <= maxLag; k++ {
		acov[k] = autocovariance(x, mean, k)
	}

	band := pwThresholdC * math.Sqrt(math.Log10(nf)/nf)
	mHat := maxLag
	for m := 0; m <= maxLag; m++ {
		insignificant := true
		for j := 1; j <= kn && m+j <= maxLag; j++ {
			if math.Abs(acov[m+j]/r0) >= band {
				insignificant = false
				break
			}
		}
		if insignificant {
			mHat = m
			break
		}
	}

	bigM := 2 * mHat
	if bigM > maxLag {
		bigM = maxLag
	}
	if bigM == 0 {
		return 1
	}

	g0, bigG := acov[0], 0.0
	for k := 1; k <= bigM; k++ {
		w := flatTop(float64(k) / float64(bigM))
		g0 += 2 * w * acov[k]
		bigG += 2 * w * float64(k) * acov[k]
	}
	d := 2 * g0 * g0
	if d <= 0 || bigG == 0 {
		return 1
	}

	b := math.Cbrt(2*bigG*bigG/d) * math.Cbrt(nf)

	bMax := math.Ceil(math.Min(3*math.Sqrt(nf), nf/3))
	if bMax < 1 {
		bMax = 1
	}
	switch {
	case math.IsNaN(b) || b < 1:
		return 1
	case b > bMax:
		return bMax
	default:
		return b
	}
}

// autocovariance returns the biased (1/n) lag-k autocovariance around mean.
func autocovariance(x []float64, mean float64, k int) float64 {
	var s float64
	for t := 0; t+k < len(x); t++ {
		s += (x[t] - mean) * (x[t+k] - mean)
	}
	return s / float64(len(x))
}

// flatTop is the trapezoidal lag window of Politis & Romano (1995).
func flatTop(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t <= 0.5:
		return 1
	case t <= 1:
		return 2 * (1 - t)
	default:
		return 0
	}
}
