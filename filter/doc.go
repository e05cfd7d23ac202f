// Package filter analyzes estimated spatiotemporal filters: rank-1 and
// rank-k separation into temporal and spatial components, peak
// localization, spatial cropping, canonical sign normalization, Gaussian
// receptive-field sizing, and Gaussian smoothing.
//
// A decomposition is only defined up to a joint sign flip of its two
// factors. This package fixes the sign so the spatial component's
// largest-magnitude entry is positive; the spatial component has unit norm
// and the temporal component carries the leading singular value.
package filter
