// Package ensemble computes spike-triggered statistics of a stimulus:
// the spike-triggered ensemble (the lazy sequence of stimulus windows
// preceding each spike), the spike-triggered average, and the
// spike-triggered covariance.
//
// Spikes with fewer than filterLength preceding stimulus samples are
// skipped, not zero-padded; the Iterator reports how many were skipped.
// When too few windows remain to define a statistic, STA and STC return
// NaN-filled results rather than an error, so an undefined average is
// distinguishable from a zero one.
package ensemble
