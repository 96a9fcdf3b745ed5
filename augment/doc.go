// Package augment generates randomized variant copies of a source
// spectrogram for training-data augmentation.
//
// An [Augmenter] is constructed from one source spectrogram and a variant
// count; each transform method (volume adjustment, frequency/time band
// amplitude shifts, noise injection, time shifting, background blending)
// mutates all variants in place, so calls can be chained in any order.
// Randomness comes from an injectable math/rand/v2 generator, making whole
// variant sets reproducible under a fixed seed.
//
// Transforms perform no I/O; background blending receives a precomputed
// path listing and a [Decoder].
package augment
