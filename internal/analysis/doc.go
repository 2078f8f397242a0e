// Package analysis provides post-run tools for sampled population series.
//
//   - [BernoulliChiSquare]: goodness of fit of an observed event frequency
//   - [Mean], [StdDev]: summary statistics of a series
//   - [PowerSpectrum]: magnitude spectrum of a series, zero padded to 2^k
//   - [NewPortrait]: 2D trajectory of two series, e.g. population against
//     temperature, rendered with [PortraitToASCII]
//
// # Decay checks
//
// A species with lifetime L sampled with tick length dt should decay with
// frequency dt/L:
//
//	chi2 := analysis.BernoulliChiSquare(decays, trials, dt/L)
//	if chi2 > analysis.ChiSquareCritical95 {
//	    // frequency is off
//	}
package analysis
