// Package revcorr estimates linear filters by reverse correlation and
// applies them as a forward model.
//
// Revcorr cross-correlates a continuous response against the stimulus in
// the Fourier domain, independently for each spatial location, recovering
// the generating filter up to scale when the response arose from linear
// convolution. Predict is the matching forward model: sliding-window dot
// products of a filter with the stimulus. The two form an estimate/verify
// pair: Revcorr(Predict(f, s), s, len) is proportional to f for white s.
package revcorr
